package md2deck

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// inlineRenderer renders the inline markdown of slide titles and bullets
// (emphasis, code spans, links) to HTML so literal markers from the model
// never leak into the deck.
type inlineRenderer struct {
	md goldmark.Markdown
}

// newInlineRenderer creates a renderer with GFM inline extensions.
func newInlineRenderer() *inlineRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Strikethrough,
			extension.Linkify,
		),
	)
	return &inlineRenderer{md: md}
}

// Render converts a single-line markdown string to inline HTML. Goldmark
// emits a paragraph block; the wrapping <p> tags are stripped since the
// surrounding deck template provides its own block elements.
func (r *inlineRenderer) Render(s string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out), nil // #nosec G203 -- goldmark escapes raw HTML in source text
}
