package md2deck

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// deckTemplate lays slides out on a fixed 1280x720 canvas. All geometry
// is constant: there is no text-fit or overflow handling, overly long
// bullet text is a presentation concern outside this layer.
const deckTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
html, body { margin: 0; padding: 0; background: #e8eaf0; font-family: Arial, Helvetica, sans-serif; }
.slide { position: relative; width: 1280px; height: 720px; margin: 0 auto 24px; background: #ffffff; overflow: hidden; page-break-after: always; }
.accent { position: absolute; left: 0; top: 0; width: 1280px; height: 10px; background: {{.Accent}}; }
.pageno { position: absolute; right: 48px; bottom: 28px; width: 200px; text-align: right; font-size: 18px; color: #8a93a6; }
.title-left { position: absolute; left: 64px; top: 56px; width: 620px; margin: 0; font-size: 40px; font-weight: bold; color: #1f2430; }
.bullets-left { position: absolute; left: 64px; top: 170px; width: 620px; font-size: 24px; line-height: 1.6; color: #3c3c46; }
.image-right { position: absolute; left: 744px; top: 120px; width: 472px; height: 520px; margin: 0; }
.image-right img { width: 100%; height: 100%; object-fit: contain; }
.title-full { position: absolute; left: 64px; top: 56px; width: 1152px; margin: 0; font-size: 46px; font-weight: bold; color: #1f2430; }
.bullets-full { position: absolute; left: 64px; top: 184px; width: 1152px; font-size: 30px; line-height: 1.7; color: #3c3c46; }
ul { margin: 0; padding-left: 1.2em; }
li { margin-bottom: 0.5em; }
code { font-family: ui-monospace, monospace; font-size: 0.9em; background: #f2f4f8; padding: 0 4px; border-radius: 3px; }
@media print { body { background: #ffffff; } .slide { margin: 0; } @page { size: 1280px 720px; margin: 0; } }
</style>
</head>
<body>
{{range .Slides}}<section class="slide">
<div class="accent"></div>
{{if .WithImage}}<h1 class="title-left">{{.Title}}</h1>
<ul class="bullets-left">{{range .Bullets}}<li>{{.}}</li>
{{end}}</ul>
<figure class="image-right"><img src="{{.ImageSrc}}" alt=""/></figure>
{{else}}<h1 class="title-full">{{.Title}}</h1>
<ul class="bullets-full">{{range .Bullets}}<li>{{.}}</li>
{{end}}</ul>
{{end}}<div class="pageno">{{.Position}} / {{.Total}}</div>
</section>
{{end}}</body>
</html>
`

// deckSlide is one rendered slide handed to the template.
type deckSlide struct {
	Title     template.HTML
	Bullets   []template.HTML
	ImageSrc  string
	WithImage bool
	Position  int
	Total     int
}

// deckData is the template root.
type deckData struct {
	Title  string
	Accent string
	Slides []deckSlide
}

// deckAssembler renders validated slides and their image results into the
// final presentation file.
type deckAssembler struct {
	tmpl   *template.Template
	inline *inlineRenderer
}

// newDeckAssembler parses the deck template once.
func newDeckAssembler() (*deckAssembler, error) {
	tmpl, err := template.New("deck").Parse(deckTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	return &deckAssembler{tmpl: tmpl, inline: newInlineRenderer()}, nil
}

// BuildDeck writes the presentation to outputPath, choosing per slide
// between the with-image and text-only templates. The choice is a live
// file-system check of each recorded path, so an image removed after
// generation degrades to text-only instead of a broken reference. The
// file is written exactly once, after every slide has been rendered.
func (a *deckAssembler) BuildDeck(slides []Slide, results []ImageResult, outputPath, accent string) error {
	if len(results) != len(slides) {
		return fmt.Errorf("%w: %d slides, %d results", ErrResultMismatch, len(slides), len(results))
	}
	if accent == "" {
		accent = DefaultAccentColor
	}

	data := deckData{Title: "Presentation", Accent: accent}
	if len(slides) > 0 {
		data.Title = slides[0].Title
	}

	deckDir := filepath.Dir(outputPath)
	for i, slide := range slides {
		ds := deckSlide{Position: i + 1, Total: len(slides)}

		title, err := a.inline.Render(slide.Title)
		if err != nil {
			return err
		}
		ds.Title = title
		for _, b := range slide.Bullets {
			bullet, err := a.inline.Render(b)
			if err != nil {
				return err
			}
			ds.Bullets = append(ds.Bullets, bullet)
		}

		if results[i].Exists() {
			ds.WithImage = true
			ds.ImageSrc = relativeImageSrc(deckDir, results[i].Path)
		}
		data.Slides = append(data.Slides, ds)
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("%w: %v", ErrDeckRender, err)
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrDeckWrite, err)
	}
	return nil
}

// relativeImageSrc makes the image path relative to the deck file so the
// output directory stays relocatable; falls back to the absolute path
// when no relative form exists (e.g. different volumes).
func relativeImageSrc(deckDir, imagePath string) string {
	rel, err := filepath.Rel(deckDir, imagePath)
	if err != nil {
		abs, absErr := filepath.Abs(imagePath)
		if absErr != nil {
			return filepath.ToSlash(imagePath)
		}
		return "file://" + filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
