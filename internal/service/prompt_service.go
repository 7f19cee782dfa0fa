package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eduforge/promptgen-api/internal/domain"
	"github.com/eduforge/promptgen-api/internal/generation"
	"github.com/eduforge/promptgen-api/internal/template"
)

// OutcomeStatus identifies what happened to a submission.
type OutcomeStatus string

// Possible outcome statuses.
const (
	// StatusRendered means the submission produced a generated prompt.
	StatusRendered OutcomeStatus = "rendered"

	// StatusValidationFailed means the required field was empty; no
	// render and no remote call were performed.
	StatusValidationFailed OutcomeStatus = "validation_failed"

	// StatusFailed means rendering or the remote call failed; Err
	// carries the classified error with its message preserved.
	StatusFailed OutcomeStatus = "failed"
)

// Outcome is the result of one submission. Exactly one of Prompt,
// Field, or Err is meaningful, selected by Status.
type Outcome struct {
	Status OutcomeStatus
	Prompt *domain.GeneratedPrompt
	Field  string
	Err    error
}

// PromptService orchestrates a submission: required-field validation,
// default filling, template rendering, and the single call to the
// language model. It holds no per-submission state, so one instance is
// safe to share.
type PromptService struct {
	generator generation.PromptGenerator
	logger    *slog.Logger
}

// NewPromptService creates a PromptService with the given generator and
// logger. Both are required.
func NewPromptService(generator generation.PromptGenerator, logger *slog.Logger) (*PromptService, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &PromptService{
		generator: generator,
		logger:    logger,
	}, nil
}

// Submit processes one form submission for the given prompt kind.
//
// The single required field of the kind (tema for text, tema_visual for
// image) must be non-blank; otherwise Submit returns a
// validation-failed outcome without rendering or calling the remote
// service. Fields the caller omits are filled with their defaults;
// fields present with an empty value are kept as supplied. Each call
// produces a fresh, independent outcome: nothing is memoized, and the
// remote model may return different text for identical submissions.
func (s *PromptService) Submit(ctx context.Context, kind domain.PromptKind, fields domain.FieldSet) Outcome {
	tpl, err := template.Get(kind)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err}
	}

	required := RequiredField(kind)
	if strings.TrimSpace(fields[required]) == "" {
		s.logger.DebugContext(ctx, "submission rejected, required field empty",
			"kind", kind,
			"field", required)
		return Outcome{Status: StatusValidationFailed, Field: required}
	}

	merged, err := s.applyDefaults(kind, fields)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err}
	}

	rendered, err := template.Render(tpl, merged)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("failed to render template: %w", err)}
	}

	s.logger.DebugContext(ctx, "prompt rendered",
		"kind", kind,
		"prompt_length", len(rendered))

	result, err := s.generator.GeneratePrompt(ctx, rendered)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err}
	}

	prompt, err := domain.NewGeneratedPrompt(kind, result.Text)
	if err != nil {
		return Outcome{Status: StatusFailed, Err: err}
	}

	s.logger.InfoContext(ctx, "prompt generated",
		"kind", kind,
		"prompt_id", prompt.ID.String(),
		"response_length", len(prompt.Prompt))

	return Outcome{Status: StatusRendered, Prompt: prompt}
}

// Options returns the form field specifications for the kind. Exposed
// on the service so transport layers depend on one type.
func (s *PromptService) Options(kind domain.PromptKind) ([]FieldSpec, error) {
	return Options(kind)
}

// applyDefaults returns a fresh field set containing the caller's
// values plus the defaults for every omitted field. Keys the template
// does not declare are passed through untouched so the renderer can
// reject them as a contract violation.
func (s *PromptService) applyDefaults(kind domain.PromptKind, fields domain.FieldSet) (domain.FieldSet, error) {
	specs, err := Options(kind)
	if err != nil {
		return nil, err
	}

	merged := make(domain.FieldSet, len(fields))
	for key, value := range fields {
		merged[key] = value
	}
	for _, spec := range specs {
		if _, ok := merged[spec.Name]; !ok {
			merged[spec.Name] = spec.Default
		}
	}

	return merged, nil
}
