package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prachinebangla/seogen/internal/api/shared"
	"github.com/prachinebangla/seogen/internal/domain"
)

// Client-facing messages that are not derived from a validation error.
const (
	MessageInvalidRequest   = "Invalid request format"
	MessageExtractionFailed = "Failed to extract metadata from URL"
	MessageUnexpected       = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrExtraction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MessageUnexpected
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, domain.ErrValidation):
		return "Validation error"
	case errors.Is(err, domain.ErrExtraction):
		return MessageExtractionFailed
	default:
		return MessageUnexpected
	}
}

// HandleAPIError writes the status and safe message for err and logs the
// redacted details. Extraction failures are logged at WARN.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var opts []shared.ResponseOption
	if errors.Is(err, domain.ErrExtraction) {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}

// SanitizeValidationError turns a validator failure into a short message
// naming the JSON field and the broken rule. Other errors yield a generic
// message.
func SanitizeValidationError(err error) string {
	field, tag := shared.FailedTag(err)
	if field == "" {
		return "Validation error"
	}
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min", "gte":
		return "too small"
	case "max", "lte":
		return "too long"
	case "url":
		return "invalid URL"
	default:
		return "validation failed"
	}
}
