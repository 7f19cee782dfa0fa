// Package redact provides utilities for scrubbing sensitive information
// from strings before they are logged or surfaced in error messages.
// The one real secret in this application is the Gemini API key, which
// the genai transport can echo back inside error text.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

var (
	// Google API keys have a fixed, recognizable shape.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_-]{30,}`)

	// Generic api_key/token/secret assignments in error or query text,
	// including the ?key= parameter the Gemini endpoint uses.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|key|token|secret|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Authorization header values.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{googleKeyRegex, RedactedKeyPlaceholder},
		{apiKeyRegex, "${1}${2}" + RedactedKeyPlaceholder},
		{bearerRegex, RedactedCredentialPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patternPlaceholders {
		result = p.pattern.ReplaceAllString(result, p.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
