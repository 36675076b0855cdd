package md2deck

import (
	"fmt"
	"regexp"
	"time"

	"github.com/alnah/go-md2deck/internal/fileutil"
)

// Image size presets accepted by the image-generation service.
const (
	ImageSizeSquare    = "1024x1024"
	ImageSizeLandscape = "1792x1024"
	ImageSizePortrait  = "1024x1792"
)

// Default model identifiers, overridable via options.
const (
	DefaultTextModel  = "gpt-4o-mini"
	DefaultImageModel = "dall-e-3"
)

// DefaultAccentColor is the accent bar color used when Input.AccentColor is empty.
const DefaultAccentColor = "#2B579A"

// Bullet count bounds accepted at validation time. The instruction to the
// text model asks for 3-5 bullets; a plan is rejected only outside [1,7].
const (
	MinBullets = 1
	MaxBullets = 7
)

// Section is one heading-delimited slice of the source document.
// Produced only in heading-split mode and consumed immediately by
// prompt construction; never persisted.
type Section struct {
	Heading string
	Body    string
}

// Slide is one validated entry of a SlidePlan. Immutable once validated.
type Slide struct {
	Title       string   `json:"title"`
	Bullets     []string `json:"bullets"`
	ImagePrompt string   `json:"image_prompt"`
}

// SlidePlan is the validated structured description of all slides.
type SlidePlan struct {
	Slides []Slide `json:"slides"`
}

// Validate checks the plan against the slide schema: at least one slide,
// non-empty titles and image prompts, and 1-7 non-empty bullets per slide.
func (p *SlidePlan) Validate() error {
	if p == nil || len(p.Slides) == 0 {
		return fmt.Errorf("%w: plan has no slides", ErrPlanInvalid)
	}
	for i, s := range p.Slides {
		if s.Title == "" {
			return fmt.Errorf("%w: slide %d has an empty title", ErrPlanInvalid, i+1)
		}
		if len(s.Bullets) < MinBullets || len(s.Bullets) > MaxBullets {
			return fmt.Errorf("%w: slide %d has %d bullets (must be between %d and %d)",
				ErrPlanInvalid, i+1, len(s.Bullets), MinBullets, MaxBullets)
		}
		for j, b := range s.Bullets {
			if b == "" {
				return fmt.Errorf("%w: slide %d bullet %d is empty", ErrPlanInvalid, i+1, j+1)
			}
		}
		if s.ImagePrompt == "" {
			return fmt.Errorf("%w: slide %d has an empty image prompt", ErrPlanInvalid, i+1)
		}
	}
	return nil
}

// ImageResult records where a slide's illustration was saved.
// The zero value is the no-image sentinel recorded when generation was
// exhausted without success.
type ImageResult struct {
	Path string
}

// Exists reports whether the recorded file is present on disk right now.
// Deck assembly uses this live check, not Path != "", so a file removed
// after generation degrades to the text-only layout.
func (r ImageResult) Exists() bool {
	return r.Path != "" && fileutil.FileExists(r.Path)
}

// Input contains the parameters for one deck generation run.
type Input struct {
	Markdown      string // Markdown content (required)
	OutputPath    string // Deck file destination (required)
	SplitHeadings bool   // One slide per top-level heading instead of model judgment
	ImageSize     string // One of the ImageSize* presets (empty = ImageSizeSquare)
	AccentColor   string // Hex color for the accent bar (empty = DefaultAccentColor)
	PDF           bool   // Also print the deck to PDF via headless Chrome
}

// Result holds the artifacts of one generation run.
type Result struct {
	Plan     *SlidePlan
	Images   []ImageResult // Same length and order as Plan.Slides
	DeckPath string
	PDF      []byte // Only set when Input.PDF was requested
}

// isValidImageSize checks size against the closed preset enum.
func isValidImageSize(size string) bool {
	switch size {
	case ImageSizeSquare, ImageSizeLandscape, ImageSizePortrait:
		return true
	}
	return false
}

// hexColorRe matches #RGB or #RRGGBB accent colors.
var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// isValidAccentColor checks that color is a hex color literal.
func isValidAccentColor(color string) bool {
	return hexColorRe.MatchString(color)
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	textModel  string
	imageModel string
	imagesDir  string
	apiKey     string
	baseURL    string
	logf       func(format string, args ...any)
}

// Defaults used when no option overrides them.
const (
	defaultTimeout    = 2 * time.Minute
	defaultMaxRetries = 2
	defaultRetryDelay = 2 * time.Second
)

// WithTimeout sets the per-run timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("md2deck: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithMaxRetries sets how many additional attempts follow a failed plan or
// illustration request. Panics if n < 0.
func WithMaxRetries(n int) Option {
	if n < 0 {
		panic("md2deck: WithMaxRetries count must not be negative")
	}
	return func(s *Service) {
		s.cfg.maxRetries = n
	}
}

// WithRetryDelay sets the base delay between retry attempts; the actual
// delay grows linearly with the attempt index. Panics if d <= 0.
func WithRetryDelay(d time.Duration) Option {
	if d <= 0 {
		panic("md2deck: WithRetryDelay duration must be positive")
	}
	return func(s *Service) {
		s.cfg.retryDelay = d
	}
}

// WithTextModel overrides the text-generation model identifier.
func WithTextModel(model string) Option {
	return func(s *Service) {
		if model != "" {
			s.cfg.textModel = model
		}
	}
}

// WithImageModel overrides the image-generation model identifier.
func WithImageModel(model string) Option {
	return func(s *Service) {
		if model != "" {
			s.cfg.imageModel = model
		}
	}
}

// WithImagesDir overrides where per-slide illustrations are written.
// When empty, an "images" directory is created next to the deck file.
func WithImagesDir(dir string) Option {
	return func(s *Service) {
		s.cfg.imagesDir = dir
	}
}

// WithOpenAI wires both generation stages to the OpenAI API. baseURL may
// be empty for the default endpoint, or point at an OpenAI-compatible
// gateway. Without this option the service runs in degraded mode.
func WithOpenAI(apiKey, baseURL string) Option {
	return func(s *Service) {
		s.cfg.apiKey = apiKey
		s.cfg.baseURL = baseURL
	}
}

// WithLogger sets a printf-style progress logger. The default discards
// all output.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Service) {
		if logf != nil {
			s.cfg.logf = logf
		}
	}
}
