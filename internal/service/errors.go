package service

import (
	"errors"
	"fmt"

	"github.com/prachinebangla/seogen/internal/domain"
)

// Client-facing messages for missing request fields.
const (
	MessageURLRequired         = "URL is required"
	MessageContentRequired     = "Content is required"
	MessageTextRequired        = "Text is required"
	MessageProductInfoRequired = "Product information is required"
)

// ContentServiceError wraps unexpected errors from the content service with
// the operation that failed.
type ContentServiceError struct {
	// Operation is the operation that failed (e.g., "analyze_url")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ContentServiceError.
func (e *ContentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("content service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ContentServiceError) Unwrap() error {
	return e.Err
}

// NewContentServiceError creates a new ContentServiceError.
// Validation and extraction errors are returned unchanged.
func NewContentServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrExtraction) {
		return err
	}
	return &ContentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
