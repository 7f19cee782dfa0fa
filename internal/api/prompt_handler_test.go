package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforge/promptgen-api/internal/generation"
	"github.com/eduforge/promptgen-api/internal/service"
)

// stubGenerator implements generation.PromptGenerator for handler tests.
type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) GeneratePrompt(ctx context.Context, prompt string) (*generation.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &generation.Result{Text: s.response}, nil
}

// newTestRouter wires a PromptHandler backed by the stub generator into
// the same routes the server registers.
func newTestRouter(t *testing.T, gen generation.PromptGenerator) http.Handler {
	t.Helper()

	svc, err := service.NewPromptService(gen, slog.Default())
	require.NoError(t, err)

	handler := NewPromptHandler(svc, slog.Default())

	r := chi.NewRouter()
	r.Route("/api/prompts", func(r chi.Router) {
		r.Post("/{kind}", handler.GeneratePrompt)
		r.Post("/{kind}/download", handler.DownloadPrompt)
		r.Get("/{kind}/options", handler.GetOptions)
	})
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGeneratePromptSuccess(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: "Resuma o Ciclo de Krebs para iniciantes..."}
	router := newTestRouter(t, gen)

	rec := postJSON(t, router, "/api/prompts/text", GeneratePromptRequest{
		Fields: map[string]string{
			"tipo_conteudo":       "resumo",
			"tema":                "Ciclo de Krebs",
			"nivel_academico":     "alunos de graduação (introdução)",
			"detalhes_adicionais": "Ser conciso e didático.",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GeneratedPromptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Resuma o Ciclo de Krebs para iniciantes...", resp.Prompt)
	assert.Equal(t, "text", resp.Kind)
	assert.Equal(t, "prompt_texto_gerado.txt", resp.Filename)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, 1, gen.calls)
}

func TestGeneratePromptValidationFailed(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: "unused"}
	router := newTestRouter(t, gen)

	rec := postJSON(t, router, "/api/prompts/image", GeneratePromptRequest{
		Fields: map[string]string{"tema_visual": ""},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tema_visual", resp["field"])
	assert.Zero(t, gen.calls, "validation failures must not reach the generator")
}

func TestGeneratePromptAuthFailure(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{err: generation.ErrAuthentication}
	router := newTestRouter(t, gen)

	rec := postJSON(t, router, "/api/prompts/text", GeneratePromptRequest{
		Fields: map[string]string{"tema": "Ciclo de Krebs"},
	})

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "API key")
}

func TestGeneratePromptUpstreamFailure(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{err: generation.ErrUpstream}
	router := newTestRouter(t, gen)

	rec := postJSON(t, router, "/api/prompts/text", GeneratePromptRequest{
		Fields: map[string]string{"tema": "Ciclo de Krebs"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGeneratePromptUnknownKind(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &stubGenerator{response: "unused"})

	rec := postJSON(t, router, "/api/prompts/video", GeneratePromptRequest{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneratePromptInvalidBody(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &stubGenerator{response: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/api/prompts/text", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadPrompt(t *testing.T) {
	t.Parallel()

	gen := &stubGenerator{response: "Prompt detalhado para gerador de imagens..."}
	router := newTestRouter(t, gen)

	rec := postJSON(t, router, "/api/prompts/image/download", GeneratePromptRequest{
		Fields: map[string]string{"tema_visual": "Estrutura de uma célula vegetal"},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Prompt detalhado para gerador de imagens...", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment`)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "prompt_imagem_gerado.txt")
}

func TestGetOptions(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &stubGenerator{response: "unused"})

	req := httptest.NewRequest(http.MethodGet, "/api/prompts/text/options", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp OptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "text", resp.Kind)
	assert.Equal(t, "tema", resp.RequiredField)
	require.Len(t, resp.Fields, 4)
	assert.Equal(t, "tipo_conteudo", resp.Fields[0].Name)
	assert.NotEmpty(t, resp.Fields[0].Options)
}

func TestGetOptionsUnknownKind(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &stubGenerator{response: "unused"})

	req := httptest.NewRequest(http.MethodGet, "/api/prompts/audio/options", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
