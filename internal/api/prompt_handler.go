package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eduforge/promptgen-api/internal/api/shared"
	"github.com/eduforge/promptgen-api/internal/domain"
	"github.com/eduforge/promptgen-api/internal/generation"
	"github.com/eduforge/promptgen-api/internal/service"
)

// PromptHandler handles prompt-generation HTTP requests.
type PromptHandler struct {
	service *service.PromptService
	logger  *slog.Logger
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(svc *service.PromptService, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{
		service: svc,
		logger:  logger,
	}
}

// GeneratePrompt handles POST /api/prompts/{kind} requests, returning
// the generated prompt as JSON.
func (h *PromptHandler) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	kind, fields, ok := h.decodeSubmission(w, r)
	if !ok {
		return
	}

	outcome := h.service.Submit(r.Context(), kind, fields)
	if !h.respondToFailure(w, r, outcome) {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, promptToResponse(outcome.Prompt))
}

// DownloadPrompt handles POST /api/prompts/{kind}/download requests.
// The same submission flow as GeneratePrompt, but the response is the
// raw prompt text served as a plain-text attachment.
func (h *PromptHandler) DownloadPrompt(w http.ResponseWriter, r *http.Request) {
	kind, fields, ok := h.decodeSubmission(w, r)
	if !ok {
		return
	}

	outcome := h.service.Submit(r.Context(), kind, fields)
	if !h.respondToFailure(w, r, outcome) {
		return
	}

	filename := outcome.Prompt.Kind.DownloadFilename()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(outcome.Prompt.Prompt)); err != nil {
		h.logger.Error("failed to write download response", "error", err)
	}
}

// GetOptions handles GET /api/prompts/{kind}/options requests, exposing
// the field specifications clients need to build the submission form.
func (h *PromptHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.parseKind(w, r)
	if !ok {
		return
	}

	specs, err := h.service.Options(kind)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Unknown prompt kind")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, OptionsResponse{
		Kind:          string(kind),
		RequiredField: service.RequiredField(kind),
		Fields:        specs,
	})
}

// parseKind extracts and validates the {kind} URL parameter. On failure
// it writes a 404 response and returns false.
func (h *PromptHandler) parseKind(w http.ResponseWriter, r *http.Request) (domain.PromptKind, bool) {
	kind, err := domain.ParsePromptKind(chi.URLParam(r, "kind"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Unknown prompt kind")
		return "", false
	}
	return kind, true
}

// decodeSubmission parses the kind parameter and request body. On
// failure it writes the error response and returns ok=false.
func (h *PromptHandler) decodeSubmission(
	w http.ResponseWriter,
	r *http.Request,
) (domain.PromptKind, domain.FieldSet, bool) {
	kind, ok := h.parseKind(w, r)
	if !ok {
		return "", nil, false
	}

	var req GeneratePromptRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return "", nil, false
	}

	fields := domain.FieldSet(req.Fields)
	if fields == nil {
		fields = domain.FieldSet{}
	}

	return kind, fields, true
}

// respondToFailure maps non-success outcomes to HTTP responses. Returns
// true when the outcome is a success and the caller should render it.
func (h *PromptHandler) respondToFailure(w http.ResponseWriter, r *http.Request, outcome service.Outcome) bool {
	switch outcome.Status {
	case service.StatusRendered:
		return true

	case service.StatusValidationFailed:
		shared.RespondWithJSON(w, r, http.StatusUnprocessableEntity, shared.ErrorResponse{
			Error:   fmt.Sprintf("Por favor, preencha o campo %q.", outcome.Field),
			Field:   outcome.Field,
			TraceID: shared.GetTraceID(r.Context()),
		})
		return false

	default:
		status := http.StatusInternalServerError
		message := "Failed to generate prompt"

		switch {
		case errors.Is(outcome.Err, generation.ErrAuthentication):
			status = http.StatusBadGateway
			message = "Authentication with the language model service failed; check the configured API key"
		case errors.Is(outcome.Err, generation.ErrUpstream),
			errors.Is(outcome.Err, generation.ErrInvalidResponse):
			status = http.StatusBadGateway
			message = "The language model service could not process the request"
		}

		shared.RespondWithErrorAndLog(w, r, status, message, outcome.Err)
		return false
	}
}
