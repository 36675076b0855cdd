package md2deck

import (
	"context"
	"fmt"
	"strings"
)

// textGenerator abstracts the text-generation service so that backends
// can be swapped and tests can inject fakes.
type textGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// planSystemPrompt is the fixed instruction set for the text model.
// Bullets are requested as 3-5 even though validation accepts 1-7.
const planSystemPrompt = `You are a presentation designer. Respond with a single JSON object and nothing else: no prose, no markdown fences.

The object has exactly one key, "slides", an array. Each element has exactly these keys:
- "title": the slide title
- "bullets": an array of 3 to 5 strings, each under 20 words
- "image_prompt": an English-language description of a clean business-style illustration for the slide, written in English regardless of the document language

Create one slide per major topic of the document.`

// planGenerator turns document content into a validated SlidePlan.
type planGenerator struct {
	gen   textGenerator
	retry retryPolicy
	logf  func(format string, args ...any)
}

// FromDocument generates a plan from the whole document, leaving
// segmentation to the model's judgment.
func (g *planGenerator) FromDocument(ctx context.Context, markdown string) (*SlidePlan, error) {
	user := "Design a slide deck for the following document.\n\n" + markdown
	return g.generate(ctx, user, 0)
}

// FromSections generates a plan with exactly one slide per section, in
// section order. The required count is stated in the request but not
// enforced on the response; a mismatch is logged and accepted.
func (g *planGenerator) FromSections(ctx context.Context, sections []Section) (*SlidePlan, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create exactly %d slides, one per section below, in the same order.\n", len(sections))
	for i, sec := range sections {
		fmt.Fprintf(&sb, "\nSection %d: %s\n", i+1, sec.Heading)
		if body := strings.TrimSpace(sec.Body); body != "" {
			sb.WriteString(body)
			sb.WriteString("\n")
		}
	}
	return g.generate(ctx, sb.String(), len(sections))
}

// generate runs the request/decode/validate loop under the retry policy.
// Parse failures and schema violations are both retryable; exhaustion
// surfaces ErrPlanGeneration carrying the last cause.
func (g *planGenerator) generate(ctx context.Context, user string, wantSlides int) (*SlidePlan, error) {
	var plan *SlidePlan
	attempts := 0

	err := g.retry.do(ctx, func(n int) error {
		attempts = n
		raw, err := g.gen.GenerateText(ctx, planSystemPrompt, user)
		if err != nil {
			g.logf("plan: attempt %d: %v", n, err)
			return err
		}
		p, err := decodePlan(raw)
		if err != nil {
			g.logf("plan: attempt %d: %v", n, err)
			return err
		}
		plan = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrPlanGeneration, attempts, err)
	}

	if wantSlides > 0 && len(plan.Slides) != wantSlides {
		g.logf("plan: requested %d slides but model returned %d", wantSlides, len(plan.Slides))
	}
	return plan, nil
}
