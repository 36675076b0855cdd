package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2deck "github.com/alnah/go-md2deck"
	"github.com/alnah/go-md2deck/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWritePDF         = errors.New("failed to write PDF file")
	ErrWritePlan        = errors.New("failed to write plan file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// runGenerate reads the input, merges configuration, and runs the
// pipeline. Precedence: flags > environment > config file > defaults.
func runGenerate(ctx context.Context, args []string, flags *deckFlags, env *Environment, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: usage: md2deck [flags] <input.md> [output.html]", ErrNoInput)
	}
	inputPath := args[0]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(args, inputPath, flags, env, cfg)
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	opts := buildServiceOptions(flags, env, cfg, stderr)
	svc := md2deck.New(opts...)
	defer func() { _ = svc.Close() }()

	if svc.Degraded() && !flags.quiet {
		fmt.Fprintln(stderr, "Warning: OPENAI_API_KEY not set; using fallback plan and placeholder images")
	}

	input := md2deck.Input{
		Markdown:      string(content),
		OutputPath:    outputPath,
		SplitHeadings: flags.split || cfg.Planner.SplitHeadings,
		ImageSize:     firstNonEmpty(flags.imageSize, env.ImageSize, cfg.Images.Size),
		AccentColor:   firstNonEmpty(flags.accent, cfg.Deck.AccentColor),
		PDF:           flags.pdf || cfg.Deck.PDF,
	}

	result, err := svc.Generate(ctx, input)
	if err != nil {
		return err
	}

	if input.PDF {
		pdfPath := replaceExt(outputPath, ".pdf")
		if err := os.WriteFile(pdfPath, result.PDF, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePDF, err)
		}
		fmt.Fprintf(stdout, "Created %s\n", pdfPath)
	}

	if flags.planJSON {
		planPath := replaceExt(outputPath, ".plan.json")
		data, err := json.MarshalIndent(result.Plan, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWritePlan, err)
		}
		if err := os.WriteFile(planPath, data, filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePlan, err)
		}
		fmt.Fprintf(stdout, "Created %s\n", planPath)
	}

	fmt.Fprintf(stdout, "Created %s\n", result.DeckPath)
	return nil
}

// resolveConfig loads the YAML config named by flag or environment, or
// returns defaults when neither is set.
func resolveConfig(flags *deckFlags, env *Environment) (*config.Config, error) {
	name := firstNonEmpty(flags.config, env.ConfigPath)
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// buildServiceOptions merges flag, environment, and config values into
// service options.
func buildServiceOptions(flags *deckFlags, env *Environment, cfg *config.Config, stderr io.Writer) []md2deck.Option {
	var opts []md2deck.Option

	if env.APIKey != "" {
		opts = append(opts, md2deck.WithOpenAI(env.APIKey, env.BaseURL))
	}
	if model := firstNonEmpty(flags.textModel, env.TextModel, cfg.Planner.Model); model != "" {
		opts = append(opts, md2deck.WithTextModel(model))
	}
	if model := firstNonEmpty(flags.imageModel, env.ImageModel, cfg.Images.Model); model != "" {
		opts = append(opts, md2deck.WithImageModel(model))
	}
	if dir := firstNonEmpty(flags.imagesDir, cfg.Images.Dir); dir != "" {
		opts = append(opts, md2deck.WithImagesDir(dir))
	}

	switch {
	case flags.timeout > 0:
		opts = append(opts, md2deck.WithTimeout(flags.timeout))
	case env.Timeout > 0:
		opts = append(opts, md2deck.WithTimeout(env.Timeout))
	}

	retries := cfg.Planner.MaxRetries
	if flags.maxRetries != retriesUnset {
		retries = flags.maxRetries
	}
	if retries >= 0 {
		opts = append(opts, md2deck.WithMaxRetries(retries))
	}

	delay := time.Duration(cfg.Planner.RetryDelaySeconds) * time.Second
	if flags.retryDelay > 0 {
		delay = flags.retryDelay
	}
	if delay > 0 {
		opts = append(opts, md2deck.WithRetryDelay(delay))
	}

	if flags.verbose && !flags.quiet {
		opts = append(opts, md2deck.WithLogger(func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}))
	}

	return opts
}

// resolveOutputPath picks the deck destination: explicit positional
// argument, or the input name with an .html extension placed in the
// first configured output directory.
func resolveOutputPath(args []string, inputPath string, flags *deckFlags, env *Environment, cfg *config.Config) string {
	if len(args) >= 2 {
		return args[1]
	}
	name := replaceExt(filepath.Base(inputPath), ".html")
	if dir := firstNonEmpty(flags.outputDir, env.OutputDir, cfg.Output.DefaultDir); dir != "" {
		return filepath.Join(dir, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// replaceExt swaps the file extension of path for newExt.
func replaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// firstNonEmpty returns the first non-empty string, or "".
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
