package main

import (
	"errors"

	md2deck "github.com/alnah/go-md2deck"
	"github.com/alnah/go-md2deck/internal/config"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess    = 0 // Generation completed
	ExitGeneral    = 1 // Unexpected error
	ExitUsage      = 2 // Invalid arguments or configuration
	ExitIO         = 3 // File read/write failure
	ExitBrowser    = 4 // Browser launch or PDF print failure
	ExitGeneration = 5 // Plan or deck generation failure
)

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrNoInput),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, md2deck.ErrEmptyMarkdown),
		errors.Is(err, md2deck.ErrEmptyOutput),
		errors.Is(err, md2deck.ErrInvalidImageSize),
		errors.Is(err, md2deck.ErrInvalidAccentColor),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrConfigParse):
		return ExitUsage

	case errors.Is(err, ErrReadMarkdown),
		errors.Is(err, ErrWritePDF),
		errors.Is(err, ErrWritePlan),
		errors.Is(err, md2deck.ErrDeckWrite):
		return ExitIO

	case errors.Is(err, md2deck.ErrBrowserConnect),
		errors.Is(err, md2deck.ErrPageCreate),
		errors.Is(err, md2deck.ErrPageLoad),
		errors.Is(err, md2deck.ErrPDFGeneration):
		return ExitBrowser

	case errors.Is(err, md2deck.ErrNoSections),
		errors.Is(err, md2deck.ErrPlanGeneration),
		errors.Is(err, md2deck.ErrPlanInvalid),
		errors.Is(err, md2deck.ErrDeckRender),
		errors.Is(err, md2deck.ErrResultMismatch):
		return ExitGeneration

	default:
		return ExitGeneral
	}
}
