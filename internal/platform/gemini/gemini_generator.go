package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"google.golang.org/genai"

	"github.com/eduforge/promptgen-api/internal/config"
	"github.com/eduforge/promptgen-api/internal/generation"
	"github.com/eduforge/promptgen-api/internal/redact"
)

// Generator implements the generation.PromptGenerator interface using
// Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

var _ generation.PromptGenerator = (*Generator)(nil)

// NewGenerator creates a new Generator with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and temperature
//
// Returns:
//   - A properly initialized Generator or an error if initialization fails
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger: logger,
		config: cfg,
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// GeneratePrompt sends the rendered prompt to the Gemini API and
// returns the model's textual response. Exactly one request is made per
// call: no retry, no caching, no timeout beyond the transport default.
func (g *Generator) GeneratePrompt(ctx context.Context, prompt string) (*generation.Result, error) {
	if prompt == "" {
		return nil, generation.ErrEmptyPrompt
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.config.Temperature),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		classified := classifyCallError(err)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", redact.Error(classified))
		return nil, classified
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API returned an unusable response",
			"error", err)
		return nil, err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"response_length", len(text))

	return &generation.Result{Text: text}, nil
}

// classifyCallError maps a genai client error into the generation error
// taxonomy. Credential rejections become ErrAuthentication; everything
// else (transport failures, rate limits, 5xx) becomes ErrUpstream with
// the remote status and message preserved for display.
func classifyCallError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: remote status %d: %s",
				generation.ErrAuthentication, apiErr.Code, apiErr.Message)
		default:
			return fmt.Errorf("%w: remote status %d: %s",
				generation.ErrUpstream, apiErr.Code, apiErr.Message)
		}
	}

	return fmt.Errorf("%w: %v", generation.ErrUpstream, err)
}

// extractText pulls the response text out of a successful API reply.
// A reply with no candidates, no content, a safety-filter finish, or no
// text is surfaced as ErrInvalidResponse rather than propagating
// unclassified.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrInvalidResponse)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("%w: response contains no text", generation.ErrInvalidResponse)
	}

	return text, nil
}
