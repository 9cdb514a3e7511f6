package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a request fails validation.
	// It is usually wrapped by a ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrExtraction is returned when a product page cannot be fetched or
	// yields no usable content.
	ErrExtraction = errors.New("failed to extract metadata from URL")
)

// ValidationError reports a missing or malformed request field. It unwraps
// to ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error returns the client-facing message.
func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s is invalid", e.Field)
	}
	return e.Message
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
