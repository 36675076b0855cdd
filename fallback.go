package md2deck

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"
)

// Degraded mode: without credentials the service still produces a deck
// from a fixed plan and flat placeholder images instead of failing.

// fallbackPlanJSON is a minimal proposal-style plan used when no text
// model is configured. It passes decodePlan as-is.
const fallbackPlanJSON = `{
  "slides": [
    {
      "title": "Proposal Overview",
      "bullets": [
        "Summary of the current situation",
        "Goals for this initiative",
        "Key stakeholders and timeline"
      ],
      "image_prompt": "A clean flat illustration of a professional business presentation setting, minimal style, white background, no text"
    },
    {
      "title": "Current Challenges",
      "bullets": [
        "Manual, repetitive work dominates the process",
        "Knowledge is siloed with individual owners",
        "Errors surface late and are costly to fix"
      ],
      "image_prompt": "A flat illustration of an office worker surrounded by stacks of paper documents, minimal style, white background, no text, no watermark"
    },
    {
      "title": "Proposed Solution",
      "bullets": [
        "Automate document intake and data capture",
        "Standardize the workflow across the team",
        "Add automated checks before delivery"
      ],
      "image_prompt": "A flat illustration of a digital workflow with cloud icons and automation arrows, minimal style, white background, no text, no watermark"
    },
    {
      "title": "Expected Impact",
      "bullets": [
        "Fewer errors through automated checks",
        "Real-time visibility into progress",
        "Less peak-season overtime"
      ],
      "image_prompt": "A clean flat illustration of a rising bar chart with a clock and checkmark icons, minimal style, white background, no text, no watermark"
    }
  ]
}`

// staticTextGenerator returns the fallback plan without calling any
// external service.
type staticTextGenerator struct{}

func (staticTextGenerator) GenerateText(_ context.Context, _, _ string) (string, error) {
	return fallbackPlanJSON, nil
}

// placeholderImageGenerator produces a flat tinted PNG of the requested
// size with an accent strip along the bottom edge.
type placeholderImageGenerator struct{}

// Placeholder palette: a light background tint and the default accent.
var (
	placeholderFill   = color.RGBA{R: 245, G: 247, B: 252, A: 255}
	placeholderAccent = color.RGBA{R: 43, G: 87, B: 154, A: 255}
)

// accentStripHeight is the placeholder's bottom strip thickness in pixels.
const accentStripHeight = 12

func (placeholderImageGenerator) GenerateImage(_ context.Context, _ string, size string) ([]byte, error) {
	w, h, err := parseImageSize(size)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(placeholderFill), image.Point{}, draw.Src)
	strip := image.Rect(0, h-accentStripHeight, w, h)
	draw.Draw(img, strip, image.NewUniform(placeholderAccent), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding placeholder image: %w", err)
	}
	return buf.Bytes(), nil
}

// parseImageSize splits a "WxH" preset into pixel dimensions.
func parseImageSize(size string) (w, h int, err error) {
	parts := strings.SplitN(size, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidImageSize, size)
	}
	w, werr := strconv.Atoi(parts[0])
	h, herr := strconv.Atoi(parts[1])
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidImageSize, size)
	}
	return w, h, nil
}
