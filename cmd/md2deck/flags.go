package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// deckFlags holds all parsed CLI flags.
type deckFlags struct {
	config     string
	quiet      bool
	verbose    bool
	split      bool
	imageSize  string
	imagesDir  string
	outputDir  string
	pdf        bool
	textModel  string
	imageModel string
	accent     string
	planJSON   bool
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	version    bool
	help       bool
}

// retriesUnset marks --max-retries as not explicitly given; 0 is a valid
// value (no retries), so an out-of-range sentinel is used instead.
const retriesUnset = -1

// parseFlags parses command-line arguments into flags and positional args.
func parseFlags(args []string) (*deckFlags, []string, error) {
	flags := &deckFlags{}

	fs := flag.NewFlagSet("md2deck", flag.ContinueOnError)

	fs.StringVarP(&flags.config, "config", "c", "", "config file path or name")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVarP(&flags.split, "split-headings", "s", false, "one slide per top-level heading")
	fs.StringVar(&flags.imageSize, "image-size", "", "illustration size: 1024x1024, 1792x1024, 1024x1792")
	fs.StringVar(&flags.imagesDir, "images-dir", "", "directory for generated illustrations")
	fs.StringVarP(&flags.outputDir, "output-dir", "o", "", "default output directory")
	fs.BoolVar(&flags.pdf, "pdf", false, "also print the deck to PDF (requires Chrome)")
	fs.StringVar(&flags.textModel, "text-model", "", "text-generation model identifier")
	fs.StringVar(&flags.imageModel, "image-model", "", "image-generation model identifier")
	fs.StringVar(&flags.accent, "accent", "", "accent bar hex color (default #2B579A)")
	fs.BoolVar(&flags.planJSON, "plan-json", false, "write the validated slide plan next to the deck")
	fs.DurationVar(&flags.timeout, "timeout", 0, "per-run timeout (e.g. 90s, 3m)")
	fs.IntVar(&flags.maxRetries, "max-retries", retriesUnset, "extra attempts after a failed generation request")
	fs.DurationVar(&flags.retryDelay, "retry-delay", 0, "base delay between retry attempts")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")
	fs.BoolVarP(&flags.help, "help", "h", false, "print help and exit")

	fs.Usage = func() { printHelp(fs.Output()) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
