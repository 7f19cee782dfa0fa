package generation

import "errors"

// Common errors returned by PromptGenerator implementations.
var (
	// ErrEmptyPrompt is returned when the rendered prompt is empty.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrAuthentication is returned when the credential is absent or
	// rejected by the remote service.
	ErrAuthentication = errors.New("authentication with language model service failed")

	// ErrUpstream is returned for transport failures, rate-limit
	// rejections, and non-2xx remote statuses. The wrapped message
	// carries the remote status and diagnostic for display.
	ErrUpstream = errors.New("language model service request failed")

	// ErrInvalidResponse is returned when a successful remote call
	// carries a malformed or empty response body.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
