package main

import (
	"fmt"
	"io"
)

// printHelp writes usage information to w.
func printHelp(w io.Writer) {
	fmt.Fprint(w, `md2deck - Generate illustrated slide decks from Markdown

Usage:
  md2deck [flags] <input.md> [output.html]

Flags:
  -c, --config string       Config file name (searched in . and ~/.config/go-md2deck/)
  -s, --split-headings      One slide per top-level heading section
      --image-size string   Illustration size: 1024x1024, 1792x1024, or 1024x1792
      --images-dir string   Directory for generated images (default: <output dir>/images)
  -o, --output-dir string   Directory for the generated deck
      --pdf                 Also print the deck to PDF (requires Chrome/Chromium)
      --plan-json           Also write the slide plan as JSON
      --text-model string   Text model for slide planning (default gpt-4o-mini)
      --image-model string  Image model for illustrations (default dall-e-3)
      --accent string       Accent color as #RRGGBB (default #2B579A)
      --timeout duration    Overall generation timeout (default 2m)
      --max-retries int     Retries per model call (default 2)
      --retry-delay duration  Base delay between retries (default 2s)
  -q, --quiet               Suppress warnings
  -v, --verbose             Log pipeline progress to stderr
      --version             Print version and exit
  -h, --help                Show this help

Environment:
  OPENAI_API_KEY        API key; without it a fallback deck with placeholder
                        images is produced
  OPENAI_BASE_URL       Alternate API endpoint
  MD2DECK_CONFIG        Config file name
  MD2DECK_TEXT_MODEL    Text model override
  MD2DECK_IMAGE_MODEL   Image model override
  MD2DECK_IMAGE_SIZE    Image size override
  MD2DECK_OUTPUT_DIR    Output directory override
  MD2DECK_TIMEOUT       Timeout override (Go duration, e.g. 90s)

Examples:
  md2deck notes.md
  md2deck --split-headings --pdf proposal.md deck/proposal.html
  md2deck --image-size 1792x1024 --accent "#0B6E4F" talk.md

Exit codes:
  0  success
  1  unexpected error
  2  invalid arguments or configuration
  3  file read/write failure
  4  browser or PDF failure
  5  plan or deck generation failure
`)
}
