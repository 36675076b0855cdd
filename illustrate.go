package md2deck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// imageGenerator abstracts the image-generation service.
type imageGenerator interface {
	GenerateImage(ctx context.Context, prompt, size string) ([]byte, error)
}

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// illustrator generates one image per slide, sequentially in slide order.
type illustrator struct {
	gen   imageGenerator
	retry retryPolicy
	dir   string
	size  string
	logf  func(format string, args ...any)
}

// GenerateAll requests one illustration per slide and writes each to
// dir/slide_NN.png (1-based, zero-padded). The returned slice always has
// the same length and order as slides; a slide whose generation was
// exhausted gets the zero-value sentinel and the run continues. The only
// fatal error is failing to create the images directory.
func (il *illustrator) GenerateAll(ctx context.Context, slides []Slide) ([]ImageResult, error) {
	if err := os.MkdirAll(il.dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating images directory: %w", err)
	}

	results := make([]ImageResult, len(slides))
	for i, slide := range slides {
		path := filepath.Join(il.dir, fmt.Sprintf("slide_%02d.png", i+1))
		prompts := retryPrompts(slide.ImagePrompt)

		err := il.retry.do(ctx, func(n int) error {
			prompt := prompts[min(n-1, len(prompts)-1)]
			payload, err := il.gen.GenerateImage(ctx, prompt, il.size)
			if err != nil {
				return err
			}
			return os.WriteFile(path, payload, filePermissions)
		})
		if err != nil {
			il.logf("illustration: slide %d: giving up: %v", i+1, err)
			continue // sentinel stays; one slide's failure never aborts the run
		}
		results[i] = ImageResult{Path: path}
	}
	return results, nil
}

// heavyAdjectives are stripped from prompts on retry; image services
// reject elaborate prompts more often than plain ones.
var heavyAdjectives = []string{
	"highly detailed", "ultra-realistic", "hyper-realistic", "photorealistic",
	"intricate", "elaborate", "detailed", "complex", "sophisticated",
}

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// safeImagePrompt is the last-resort prompt used on the final retry.
const safeImagePrompt = "A clean flat illustration for a business presentation, " +
	"simple geometric shapes, professional color palette, minimal design, " +
	"white background, no text, no watermark"

// retryPrompts builds progressively simplified prompts: the original, a
// shortened variant with heavy adjectives removed and safety keywords
// appended, and a fixed minimal prompt.
func retryPrompts(original string) []string {
	shortened := original
	for _, adj := range heavyAdjectives {
		shortened = strings.ReplaceAll(shortened, adj, "")
		shortened = strings.ReplaceAll(shortened, capitalize(adj), "")
	}
	shortened = strings.TrimSpace(multiSpaceRe.ReplaceAllString(shortened, " "))
	if !strings.Contains(strings.ToLower(shortened), "minimal") {
		shortened += ", minimal style"
	}
	if !strings.Contains(strings.ToLower(shortened), "no text") {
		shortened += ", no text"
	}
	return []string{original, shortened, safeImagePrompt}
}

// capitalize upper-cases the first byte of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
