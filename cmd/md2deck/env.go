package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Environment holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
// Credentials live here exclusively; they are never read from config files.
type Environment struct {
	ConfigPath string        // MD2DECK_CONFIG: config file path or name
	TextModel  string        // MD2DECK_TEXT_MODEL: text model identifier
	ImageModel string        // MD2DECK_IMAGE_MODEL: image model identifier
	ImageSize  string        // MD2DECK_IMAGE_SIZE: illustration size preset
	OutputDir  string        // MD2DECK_OUTPUT_DIR: default output directory
	Timeout    time.Duration // MD2DECK_TIMEOUT: per-run timeout

	APIKey  string // OPENAI_API_KEY: generation credentials
	BaseURL string // OPENAI_BASE_URL: OpenAI-compatible endpoint override
}

// knownEnvVars lists valid MD2DECK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2DECK_CONFIG":      true,
	"MD2DECK_TEXT_MODEL":  true,
	"MD2DECK_IMAGE_MODEL": true,
	"MD2DECK_IMAGE_SIZE":  true,
	"MD2DECK_OUTPUT_DIR":  true,
	"MD2DECK_TIMEOUT":     true,
}

// loadEnvironment reads environment variables, warning on unknown
// MD2DECK_* names and on unparseable values.
func loadEnvironment(warn io.Writer) *Environment {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "MD2DECK_") && !knownEnvVars[name] {
			fmt.Fprintf(warn, "Warning: unknown environment variable %s (typo?)\n", name)
		}
	}

	env := &Environment{
		ConfigPath: os.Getenv("MD2DECK_CONFIG"),
		TextModel:  os.Getenv("MD2DECK_TEXT_MODEL"),
		ImageModel: os.Getenv("MD2DECK_IMAGE_MODEL"),
		ImageSize:  os.Getenv("MD2DECK_IMAGE_SIZE"),
		OutputDir:  os.Getenv("MD2DECK_OUTPUT_DIR"),
		APIKey:     os.Getenv("OPENAI_API_KEY"),
		BaseURL:    os.Getenv("OPENAI_BASE_URL"),
	}

	if raw := os.Getenv("MD2DECK_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			fmt.Fprintf(warn, "Warning: ignoring invalid MD2DECK_TIMEOUT %q\n", raw)
		} else {
			env.Timeout = d
		}
	}

	return env
}
