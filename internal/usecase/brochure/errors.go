// Package brochure implements the brochure pipeline: fetch a company's landing
// page, ask a language model which of its links matter, and ask it again to
// write a brochure from the page text and those links.
//
// Every stage degrades instead of failing. The only error a run returns is a
// rejected base URL; everything else ends with some brochure text, possibly
// an error message, and the stage results record what went wrong.
package brochure

import "errors"

// Sentinel errors for brochure use case operations.
var (
	// ErrInvalidBaseURL indicates the base URL failed validation. It is
	// returned together with the *entity.ValidationError describing why.
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// ErrMalformedSelection indicates the link-selection reply was not the
	// expected JSON document.
	ErrMalformedSelection = errors.New("malformed link selection response")

	// ErrSelectionFailed indicates the link-selection model call failed.
	ErrSelectionFailed = errors.New("link selection failed")

	// ErrGenerationFailed indicates the brochure model call failed.
	ErrGenerationFailed = errors.New("brochure generation failed")
)
