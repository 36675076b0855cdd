package md2deck

import (
	"context"
	"fmt"
	"path/filepath"
)

// Compile-time interface implementation checks.
var (
	_ textGenerator  = (*openAITextGenerator)(nil)
	_ textGenerator  = staticTextGenerator{}
	_ imageGenerator = (*openAIImageGenerator)(nil)
	_ imageGenerator = placeholderImageGenerator{}
)

// Service orchestrates the markdown-to-deck pipeline: segmentation, plan
// generation, illustration, and layout assembly, strictly in that order.
type Service struct {
	cfg      serviceConfig
	textGen  textGenerator
	imageGen imageGenerator
	printer  deckPrinter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithOpenAI, WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:    defaultTimeout,
			maxRetries: defaultMaxRetries,
			retryDelay: defaultRetryDelay,
			textModel:  DefaultTextModel,
			imageModel: DefaultImageModel,
			logf:       func(string, ...any) {},
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Wire generators after options so model overrides apply regardless
	// of option order. No credentials means degraded mode: a fixed plan
	// and placeholder images instead of a failing run.
	if s.textGen == nil {
		if s.cfg.apiKey != "" {
			gen, err := newOpenAITextGenerator(s.cfg.apiKey, s.cfg.baseURL, s.cfg.textModel)
			if err == nil {
				s.textGen = gen
			}
		}
		if s.textGen == nil {
			s.textGen = staticTextGenerator{}
		}
	}
	if s.imageGen == nil {
		if s.cfg.apiKey != "" {
			gen, err := newOpenAIImageGenerator(s.cfg.apiKey, s.cfg.baseURL, s.cfg.imageModel)
			if err == nil {
				s.imageGen = gen
			}
		}
		if s.imageGen == nil {
			s.imageGen = placeholderImageGenerator{}
		}
	}

	// Create PDF printer if not injected (e.g., by tests)
	if s.printer == nil {
		s.printer = newRodPrinter(s.cfg.timeout)
	}

	return s
}

// Degraded reports whether the service runs without a configured
// generation backend (fallback plan and placeholder images).
func (s *Service) Degraded() bool {
	_, static := s.textGen.(staticTextGenerator)
	return static
}

// Generate runs the full pipeline for one input and returns the plan,
// per-slide image results, and the deck location. A per-slide
// illustration failure degrades that slide to the text-only layout;
// segmentation, plan, and assembly failures abort the run with no deck
// written.
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	retry := retryPolicy{maxRetries: s.cfg.maxRetries, baseDelay: s.cfg.retryDelay}
	planner := &planGenerator{gen: s.textGen, retry: retry, logf: s.cfg.logf}

	var plan *SlidePlan
	var err error
	if input.SplitHeadings {
		sections, serr := SplitSections(input.Markdown)
		if serr != nil {
			return nil, serr
		}
		s.cfg.logf("segmented document into %d sections", len(sections))
		plan, err = planner.FromSections(ctx, sections)
	} else {
		plan, err = planner.FromDocument(ctx, input.Markdown)
	}
	if err != nil {
		return nil, err
	}
	s.cfg.logf("plan generated: %d slides", len(plan.Slides))

	imagesDir := s.cfg.imagesDir
	if imagesDir == "" {
		imagesDir = filepath.Join(filepath.Dir(input.OutputPath), "images")
	}
	size := input.ImageSize
	if size == "" {
		size = ImageSizeSquare
	}

	il := &illustrator{gen: s.imageGen, retry: retry, dir: imagesDir, size: size, logf: s.cfg.logf}
	images, err := il.GenerateAll(ctx, plan.Slides)
	if err != nil {
		return nil, err
	}

	assembler, err := newDeckAssembler()
	if err != nil {
		return nil, err
	}
	if err := assembler.BuildDeck(plan.Slides, images, input.OutputPath, input.AccentColor); err != nil {
		return nil, err
	}
	s.cfg.logf("deck written: %s", input.OutputPath)

	result := &Result{Plan: plan, Images: images, DeckPath: input.OutputPath}

	if input.PDF {
		pdf, err := s.printer.Print(ctx, input.OutputPath)
		if err != nil {
			return nil, err
		}
		result.PDF = pdf
	}

	return result, nil
}

// Close releases resources (headless Chrome browser, if one was used).
func (s *Service) Close() error {
	if s.printer != nil {
		return s.printer.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if input.OutputPath == "" {
		return ErrEmptyOutput
	}
	if input.ImageSize != "" && !isValidImageSize(input.ImageSize) {
		return fmt.Errorf("%w: %q", ErrInvalidImageSize, input.ImageSize)
	}
	if input.AccentColor != "" && !isValidAccentColor(input.AccentColor) {
		return fmt.Errorf("%w: %q", ErrInvalidAccentColor, input.AccentColor)
	}
	return nil
}
