package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the gateway exhausts its attempts
	// without a usable reply. Generators convert it into fallback content.
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrEmptyResponse is returned when the backend replies without any text
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrInvalidConfig is returned when the backend or gateway configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
