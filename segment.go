package md2deck

import (
	"regexp"
	"strings"
)

// headingRe matches a top-level heading: one or two leading markers
// followed by whitespace and text.
var headingRe = regexp.MustCompile(`^(#{1,2})\s+(.+)$`)

// SplitSections splits raw Markdown into one Section per top-level
// heading. A heading line starts a new section whose body accumulates
// every following line until the next heading; content before the first
// heading is discarded. Bodies keep their raw trailing whitespace; it is
// trimmed at consumption time, not here.
//
// Returns ErrNoSections when the document contains no top-level
// headings. Callers must treat that as fatal rather than falling back to
// whole-document mode, since heading-split mode promises one slide per
// section.
func SplitSections(markdown string) ([]Section, error) {
	var sections []Section
	var body strings.Builder
	open := false

	flush := func() {
		if open {
			sections[len(sections)-1].Body = body.String()
			body.Reset()
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			sections = append(sections, Section{Heading: strings.TrimSpace(m[2])})
			open = true
			continue
		}
		if open {
			body.WriteString(line)
			body.WriteString("\n")
		}
	}
	flush()

	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	return sections, nil
}
