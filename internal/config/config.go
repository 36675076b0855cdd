// Package config loads YAML configuration for the md2deck CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2deck/internal/fileutil"
	"github.com/alnah/go-md2deck/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for deck generation.
// API credentials are never read from YAML; they come from the
// environment only.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Planner PlannerConfig `yaml:"planner"`
	Images  ImagesConfig  `yaml:"images"`
	Deck    DeckConfig    `yaml:"deck"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// PlannerConfig defines slide plan generation options.
type PlannerConfig struct {
	Model             string `yaml:"model"`             // Text model identifier
	MaxRetries        int    `yaml:"maxRetries"`        // Extra attempts after the first
	RetryDelaySeconds int    `yaml:"retryDelaySeconds"` // Base delay between attempts
	SplitHeadings     bool   `yaml:"splitHeadings"`     // One slide per top-level heading
}

// ImagesConfig defines illustration generation options.
type ImagesConfig struct {
	Model string `yaml:"model"` // Image model identifier
	Size  string `yaml:"size"`  // One of 1024x1024, 1792x1024, 1024x1792
	Dir   string `yaml:"dir"`   // Images directory (empty = next to the deck)
}

// DeckConfig defines deck assembly options.
type DeckConfig struct {
	AccentColor string `yaml:"accentColor"` // Hex accent bar color
	PDF         bool   `yaml:"pdf"`         // Also print the deck to PDF
}

// DefaultConfig returns the configuration used when no file is loaded.
// Model names are left empty so the library defaults apply.
func DefaultConfig() *Config {
	return &Config{
		Planner: PlannerConfig{MaxRetries: 2, RetryDelaySeconds: 2},
		Images:  ImagesConfig{Size: "1024x1024"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Unmarshal over the defaults so omitted fields keep their values.
	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-md2deck/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2deck", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
