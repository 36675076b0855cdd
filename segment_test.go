package md2deck

import (
	"errors"
	"testing"
)

func TestSplitSections(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []Section
		wantErr  error
	}{
		{
			name:     "three level-one headings",
			markdown: "# Intro\nHello.\n# Middle\nBody text.\nMore.\n# End\nBye.",
			want: []Section{
				{Heading: "Intro", Body: "Hello.\n"},
				{Heading: "Middle", Body: "Body text.\nMore.\n"},
				{Heading: "End", Body: "Bye."},
			},
		},
		{
			name:     "level-two headings also split",
			markdown: "# One\na\n## Two\nb",
			want: []Section{
				{Heading: "One", Body: "a\n"},
				{Heading: "Two", Body: "b"},
			},
		},
		{
			name:     "level-three heading stays in body",
			markdown: "# One\n### Sub\ntext",
			want: []Section{
				{Heading: "One", Body: "### Sub\ntext"},
			},
		},
		{
			name:     "content before first heading is discarded",
			markdown: "preamble\nmore preamble\n# Actual Start\nbody",
			want: []Section{
				{Heading: "Actual Start", Body: "body"},
			},
		},
		{
			name:     "heading with no body",
			markdown: "# Lonely",
			want: []Section{
				{Heading: "Lonely", Body: ""},
			},
		},
		{
			name:     "heading title is trimmed",
			markdown: "#   Padded Title  \nbody",
			want: []Section{
				{Heading: "Padded Title", Body: "body"},
			},
		},
		{
			name:     "hash without space is not a heading",
			markdown: "#NoSpace\ntext",
			wantErr:  ErrNoSections,
		},
		{
			name:     "no headings at all",
			markdown: "just a paragraph\nof plain text",
			wantErr:  ErrNoSections,
		},
		{
			name:     "empty document",
			markdown: "",
			wantErr:  ErrNoSections,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitSections(tt.markdown)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SplitSections() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitSections() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SplitSections() returned %d sections, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].Heading != tt.want[i].Heading {
					t.Errorf("section %d heading = %q, want %q", i, got[i].Heading, tt.want[i].Heading)
				}
				if got[i].Body != tt.want[i].Body {
					t.Errorf("section %d body = %q, want %q", i, got[i].Body, tt.want[i].Body)
				}
			}
		})
	}
}

func TestSplitSections_OrderPreserved(t *testing.T) {
	markdown := "# A\n1\n# B\n2\n# C\n3\n# D\n4"

	sections, err := SplitSections(markdown)
	if err != nil {
		t.Fatalf("SplitSections() unexpected error: %v", err)
	}

	wantOrder := []string{"A", "B", "C", "D"}
	for i, h := range wantOrder {
		if sections[i].Heading != h {
			t.Errorf("section %d heading = %q, want %q", i, sections[i].Heading, h)
		}
	}
}
