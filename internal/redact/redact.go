// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. This package helps prevent the accidental leakage of
// backend API keys, credentials embedded in URLs, file paths, and other sensitive
// data that might be included in error messages from the generation backends or
// the page scraper.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier, more specific rules keep their
// surrounding text so later generic rules do not swallow it.
var rules = []rule{
	// user:password@ in URLs
	{
		pattern:     regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*)://[^/\s:@]+:[^/\s@]+@`),
		replacement: "${1}://" + RedactedCredentialPlaceholder + "@",
	},
	// API keys passed as query parameters, as the Gemini REST API does
	{
		pattern:     regexp.MustCompile(`(?i)([?&](?:key|api_key|apikey|token|access_token)=)[^&\s"']+`),
		replacement: "${1}" + RedactedKeyPlaceholder,
	},
	// Google API keys
	{pattern: regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), replacement: RedactedKeyPlaceholder},
	// OpenAI-style secret keys
	{pattern: regexp.MustCompile(`\bsk-[A-Za-z0-9_\-]{20,}`), replacement: RedactedKeyPlaceholder},
	// Authorization headers
	{
		pattern:     regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/]+=*`),
		replacement: "Bearer " + RedactedKeyPlaceholder,
	},
	// JWT token pattern - matches the standard three-part base64url-encoded JWT token format
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		replacement: "[REDACTED_JWT]",
	},
	// Credentials and tokens in key=value form
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		replacement: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		replacement: RedactedKeyPlaceholder,
	},
	// Email addresses
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: "[REDACTED_EMAIL]",
	},
	// File paths; URL paths are kept because the host precedes them
	{
		pattern:     regexp.MustCompile(`(^|[\s"'=(])(?:/[\w.-]+){2,}`),
		replacement: "${1}" + RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`),
		replacement: RedactedPathPlaceholder,
	},
	// Stack trace fragments
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: "[STACK_TRACE_REDACTED]",
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
