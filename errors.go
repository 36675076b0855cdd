package md2deck

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrEmptyOutput    = errors.New("output path cannot be empty")
	ErrNoSections     = errors.New("no top-level headings found")
	ErrPlanInvalid    = errors.New("slide plan failed validation")
	ErrPlanGeneration = errors.New("slide plan generation failed")
	ErrNoImagePayload = errors.New("image service returned no payload")
	ErrResultMismatch = errors.New("image results do not match slide count")
	ErrDeckRender     = errors.New("deck rendering failed")
	ErrDeckWrite      = errors.New("failed to write deck file")

	// Input validation errors.
	ErrInvalidImageSize   = errors.New("invalid image size")
	ErrInvalidAccentColor = errors.New("invalid accent color")

	// Browser errors for the PDF print backend.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
