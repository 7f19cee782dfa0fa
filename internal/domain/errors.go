package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidPromptKind is returned when a prompt kind is not one of
	// the supported variants.
	ErrInvalidPromptKind = errors.New("invalid prompt kind")

	// ErrEmptyPromptText is returned when a generated prompt has no text.
	ErrEmptyPromptText = errors.New("prompt text cannot be empty")
)
