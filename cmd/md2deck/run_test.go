package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-md2deck/internal/config"
)

func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// mustParse parses flags for tests; bad args fail the test immediately.
func mustParse(t *testing.T, args ...string) *deckFlags {
	t.Helper()
	flags, _, err := parseFlags(append([]string{"md2deck"}, args...))
	if err != nil {
		t.Fatalf("parseFlags(%v): %v", args, err)
	}
	return flags
}

func TestRunGenerate_DegradedEndToEnd(t *testing.T) {
	// No API key: the pipeline runs on the fallback plan and placeholder
	// images, which exercises the whole CLI offline.
	dir := t.TempDir()
	input := writeMarkdown(t, dir, "notes.md", "# Title\nSome content.")

	flags := mustParse(t, "--quiet")
	env := &Environment{}
	var stdout, stderr bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := runGenerate(ctx, []string{input}, flags, env, &stdout, &stderr); err != nil {
		t.Fatalf("runGenerate() unexpected error: %v", err)
	}

	deckPath := filepath.Join(dir, "notes.html")
	if !strings.Contains(stdout.String(), "Created "+deckPath) {
		t.Errorf("stdout = %q, want creation message for %s", stdout.String(), deckPath)
	}
	if _, err := os.Stat(deckPath); err != nil {
		t.Errorf("deck not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "images", "slide_01.png")); err != nil {
		t.Errorf("placeholder image not written: %v", err)
	}
}

func TestRunGenerate_DegradedWarning(t *testing.T) {
	dir := t.TempDir()
	input := writeMarkdown(t, dir, "notes.md", "# Title\nContent.")

	flags := mustParse(t)
	var stdout, stderr bytes.Buffer

	if err := runGenerate(context.Background(), []string{input}, flags, &Environment{}, &stdout, &stderr); err != nil {
		t.Fatalf("runGenerate() unexpected error: %v", err)
	}
	if !strings.Contains(stderr.String(), "OPENAI_API_KEY") {
		t.Errorf("stderr = %q, want degraded-mode warning", stderr.String())
	}
}

func TestRunGenerate_ExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := writeMarkdown(t, dir, "notes.md", "# Title\nContent.")
	out := filepath.Join(dir, "deck", "custom.html")

	flags := mustParse(t, "--quiet")
	var stdout, stderr bytes.Buffer

	if err := runGenerate(context.Background(), []string{input, out}, flags, &Environment{}, &stdout, &stderr); err != nil {
		t.Fatalf("runGenerate() unexpected error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("deck not written at explicit path: %v", err)
	}
}

func TestRunGenerate_PlanJSON(t *testing.T) {
	dir := t.TempDir()
	input := writeMarkdown(t, dir, "notes.md", "# Title\nContent.")

	flags := mustParse(t, "--quiet", "--plan-json")
	var stdout, stderr bytes.Buffer

	if err := runGenerate(context.Background(), []string{input}, flags, &Environment{}, &stdout, &stderr); err != nil {
		t.Fatalf("runGenerate() unexpected error: %v", err)
	}

	planPath := filepath.Join(dir, "notes.plan.json")
	data, err := os.ReadFile(planPath)
	if err != nil {
		t.Fatalf("plan JSON not written: %v", err)
	}
	if !strings.Contains(string(data), `"slides"`) {
		t.Errorf("plan JSON missing slides key: %s", data)
	}
}

func TestRunGenerate_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "no arguments",
			args:    nil,
			wantErr: ErrNoInput,
		},
		{
			name:    "wrong extension",
			args:    []string{filepath.Join(dir, "notes.txt")},
			wantErr: ErrInvalidExtension,
		},
		{
			name:    "missing file",
			args:    []string{filepath.Join(dir, "absent.md")},
			wantErr: ErrReadMarkdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := mustParse(t, "--quiet")
			var stdout, stderr bytes.Buffer
			err := runGenerate(context.Background(), tt.args, flags, &Environment{}, &stdout, &stderr)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("runGenerate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMarkdownExtension(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"notes.md", false},
		{"notes.markdown", false},
		{"NOTES.MD", false},
		{"notes.txt", true},
		{"notes", true},
		{"notes.md.bak", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := validateMarkdownExtension(tt.path)
			if tt.wantErr && !errors.Is(err, ErrInvalidExtension) {
				t.Errorf("validateMarkdownExtension(%q) = %v, want ErrInvalidExtension", tt.path, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateMarkdownExtension(%q) unexpected error: %v", tt.path, err)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	flags := &deckFlags{}
	env := &Environment{}

	tests := []struct {
		name   string
		args   []string
		outDir string
		want   string
	}{
		{
			name: "explicit second argument",
			args: []string{"docs/notes.md", "out/deck.html"},
			want: "out/deck.html",
		},
		{
			name: "default next to input",
			args: []string{"docs/notes.md"},
			want: filepath.Join("docs", "notes.html"),
		},
		{
			name:   "output directory flag",
			args:   []string{"docs/notes.md"},
			outDir: "decks",
			want:   filepath.Join("decks", "notes.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags.outputDir = tt.outDir
			cfg := resolveMust(t)
			got := resolveOutputPath(tt.args, tt.args[0], flags, env, cfg)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func resolveMust(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := resolveConfig(&deckFlags{}, &Environment{})
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "x", "y"); got != "x" {
		t.Errorf("firstNonEmpty() = %q, want x", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Errorf("firstNonEmpty() = %q, want empty", got)
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		in, ext, want string
	}{
		{"notes.md", ".html", "notes.html"},
		{"dir/notes.markdown", ".pdf", "dir/notes.pdf"},
		{"noext", ".html", "noext.html"},
	}
	for _, tt := range tests {
		if got := replaceExt(tt.in, tt.ext); got != tt.want {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}
