package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PromptKind identifies which of the two built-in prompt templates a
// submission targets.
type PromptKind string

// Supported prompt kinds.
const (
	// PromptKindText generates a prompt aimed at language models
	// (summaries, lecture outlines, exercises, and so on).
	PromptKindText PromptKind = "text"

	// PromptKindImage generates a prompt aimed at image generators
	// (diagrams, scientific illustrations, infographics).
	PromptKindImage PromptKind = "image"
)

// ParsePromptKind converts a string into a PromptKind.
// Returns ErrInvalidPromptKind for anything other than the two
// supported variants.
func ParsePromptKind(s string) (PromptKind, error) {
	switch PromptKind(s) {
	case PromptKindText:
		return PromptKindText, nil
	case PromptKindImage:
		return PromptKindImage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPromptKind, s)
	}
}

// IsValid reports whether the kind is one of the supported variants.
func (k PromptKind) IsValid() bool {
	return k == PromptKindText || k == PromptKindImage
}

// DownloadFilename returns the name used when the generated prompt is
// offered as a one-shot plain-text download.
func (k PromptKind) DownloadFilename() string {
	if k == PromptKindImage {
		return "prompt_imagem_gerado.txt"
	}
	return "prompt_texto_gerado.txt"
}

// FieldSet maps template placeholder names to user-supplied values.
// A FieldSet is created fresh per submission, consumed by the renderer,
// and discarded; it is never persisted or reused across submissions.
type FieldSet map[string]string

// GeneratedPrompt represents one completed prompt generation: the
// polished prompt text the language model returned for a submission.
type GeneratedPrompt struct {
	ID        uuid.UUID  `json:"id"`
	Kind      PromptKind `json:"kind"`
	Prompt    string     `json:"prompt"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewGeneratedPrompt creates a GeneratedPrompt for the given kind and
// prompt text. It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewGeneratedPrompt(kind PromptKind, prompt string) (*GeneratedPrompt, error) {
	gp := &GeneratedPrompt{
		ID:        uuid.New(),
		Kind:      kind,
		Prompt:    prompt,
		CreatedAt: time.Now().UTC(),
	}

	if err := gp.Validate(); err != nil {
		return nil, err
	}

	return gp, nil
}

// Validate checks that the GeneratedPrompt has a valid kind and
// non-empty prompt text.
func (g *GeneratedPrompt) Validate() error {
	if !g.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPromptKind, g.Kind)
	}
	if g.Prompt == "" {
		return ErrEmptyPromptText
	}
	return nil
}
