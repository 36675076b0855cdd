package md2deck

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
)

func TestStaticTextGenerator_PlanDecodes(t *testing.T) {
	out, err := staticTextGenerator{}.GenerateText(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("GenerateText() unexpected error: %v", err)
	}

	plan, err := decodePlan(out)
	if err != nil {
		t.Fatalf("fallback plan should pass validation: %v", err)
	}
	if len(plan.Slides) != 4 {
		t.Errorf("fallback plan has %d slides, want 4", len(plan.Slides))
	}
	for i, s := range plan.Slides {
		if len(s.Bullets) != 3 {
			t.Errorf("fallback slide %d has %d bullets, want 3", i+1, len(s.Bullets))
		}
	}
}

func TestPlaceholderImageGenerator_Dimensions(t *testing.T) {
	tests := []struct {
		size string
		w, h int
	}{
		{ImageSizeSquare, 1024, 1024},
		{ImageSizeLandscape, 1792, 1024},
		{ImageSizePortrait, 1024, 1792},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			data, err := placeholderImageGenerator{}.GenerateImage(context.Background(), "ignored", tt.size)
			if err != nil {
				t.Fatalf("GenerateImage() unexpected error: %v", err)
			}

			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("output is not a valid PNG: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != tt.w || bounds.Dy() != tt.h {
				t.Errorf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestPlaceholderImageGenerator_AccentStrip(t *testing.T) {
	data, err := placeholderImageGenerator{}.GenerateImage(context.Background(), "", ImageSizeSquare)
	if err != nil {
		t.Fatalf("GenerateImage() unexpected error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}

	r, g, b, _ := img.At(10, 10).RGBA()
	if uint8(r>>8) != placeholderFill.R || uint8(g>>8) != placeholderFill.G || uint8(b>>8) != placeholderFill.B {
		t.Errorf("body pixel = (%d,%d,%d), want fill color", r>>8, g>>8, b>>8)
	}

	r, g, b, _ = img.At(10, 1023).RGBA()
	if uint8(r>>8) != placeholderAccent.R || uint8(g>>8) != placeholderAccent.G || uint8(b>>8) != placeholderAccent.B {
		t.Errorf("bottom pixel = (%d,%d,%d), want accent color", r>>8, g>>8, b>>8)
	}
}

func TestPlaceholderImageGenerator_InvalidSize(t *testing.T) {
	tests := []string{"", "1024", "x", "1024x", "0x100", "-1x100", "axb"}

	for _, size := range tests {
		t.Run("size "+size, func(t *testing.T) {
			_, err := placeholderImageGenerator{}.GenerateImage(context.Background(), "", size)
			if !errors.Is(err, ErrInvalidImageSize) {
				t.Errorf("GenerateImage(%q) error = %v, want ErrInvalidImageSize", size, err)
			}
		})
	}
}

func TestParseImageSize(t *testing.T) {
	w, h, err := parseImageSize("1792x1024")
	if err != nil {
		t.Fatalf("parseImageSize() unexpected error: %v", err)
	}
	if w != 1792 || h != 1024 {
		t.Errorf("parseImageSize() = %dx%d, want 1792x1024", w, h)
	}
}
