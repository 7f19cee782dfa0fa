package api

import (
	"time"

	"github.com/eduforge/promptgen-api/internal/domain"
	"github.com/eduforge/promptgen-api/internal/service"
)

// GeneratePromptRequest represents the request body for a prompt
// submission. Fields maps template placeholder names to values; omitted
// fields take their defaults, the kind's required field must be
// non-empty.
type GeneratePromptRequest struct {
	Fields map[string]string `json:"fields"`
}

// GeneratedPromptResponse represents a successful generation.
type GeneratedPromptResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Prompt    string    `json:"prompt"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}

// OptionsResponse describes the form of one prompt kind.
type OptionsResponse struct {
	Kind          string              `json:"kind"`
	RequiredField string              `json:"required_field"`
	Fields        []service.FieldSpec `json:"fields"`
}

func promptToResponse(prompt *domain.GeneratedPrompt) GeneratedPromptResponse {
	return GeneratedPromptResponse{
		ID:        prompt.ID.String(),
		Kind:      string(prompt.Kind),
		Prompt:    prompt.Prompt,
		Filename:  prompt.Kind.DownloadFilename(),
		CreatedAt: prompt.CreatedAt,
	}
}
