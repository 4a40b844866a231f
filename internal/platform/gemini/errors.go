package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyAPIKey is returned when a transport is built without an API key.
	ErrEmptyAPIKey = errors.New("gemini API key cannot be empty")

	// ErrNoCandidates is returned when the API answers without any candidate.
	ErrNoCandidates = errors.New("gemini returned no candidates")

	// ErrContentBlocked is returned when safety filters stop the generation.
	ErrContentBlocked = errors.New("gemini blocked the content")
)
