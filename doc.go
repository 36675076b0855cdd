// Package md2deck turns a Markdown document into a slide deck by
// delegating content design to a text-generation model and per-slide
// illustrations to an image-generation model, then assembling a
// fixed-layout presentation.
//
// # Quick Start
//
// Create a service, generate a deck, and close when done:
//
//	svc := md2deck.New(md2deck.WithOpenAI(apiKey, ""))
//	defer svc.Close()
//
//	result, err := svc.Generate(ctx, md2deck.Input{
//	    Markdown:   content,
//	    OutputPath: "deck.html",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.DeckPath)
//
// # Generation Pipeline
//
// The pipeline runs four stages strictly in order:
//
//  1. Segmentation: the document is taken whole, or split into one
//     section per top-level heading (Input.SplitHeadings)
//  2. Plan generation: a text model returns a JSON slide plan which is
//     decoded and validated before anything else runs
//  3. Illustration: one image per slide, saved as slide_NN.png under an
//     images directory next to the deck; a failed slide degrades to a
//     text-only layout instead of aborting the run
//  4. Assembly: each slide is rendered into a fixed 1280x720 canvas
//     using one of two templates (with-image or text-only), with a
//     "position / total" page indicator
//
// Slides, image results, and rendered deck pages always share the same
// ordinal index; nothing in the pipeline reorders them.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2deck.New(
//	    md2deck.WithOpenAI(apiKey, ""),
//	    md2deck.WithTextModel("gpt-4o"),
//	    md2deck.WithMaxRetries(3),
//	)
//
// Without WithOpenAI the service runs in degraded mode: a fixed fallback
// plan and flat placeholder images, so a deck is still produced.
//
// # PDF Output
//
// Set Input.PDF to print the deck to a 16:9 PDF through headless Chrome.
// The go-rod library downloads a managed Chromium instance on first run.
// Use ROD_BROWSER_BIN to point at an existing Chrome binary in containers.
package md2deck
