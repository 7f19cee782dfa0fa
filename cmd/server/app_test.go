package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforge/promptgen-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		LLM: config.LLMConfig{
			GeminiAPIKey: "test-api-key",
			ModelName:    "gemini-2.0-flash",
			Temperature:  0.7,
		},
	}
}

func TestNewApplication(t *testing.T) {
	t.Parallel()

	app, err := newApplication(context.Background(), testConfig(), slog.Default())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.NotNil(t, app.generator)
	assert.NotNil(t, app.promptService)
}

func TestNewApplicationRejectsMissingKey(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.LLM.GeminiAPIKey = ""

	app, err := newApplication(context.Background(), cfg, slog.Default())

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestRouterHealthAndOptions(t *testing.T) {
	t.Parallel()

	app, err := newApplication(context.Background(), testConfig(), slog.Default())
	require.NoError(t, err)

	router := app.setupRouter()

	t.Run("health endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("options endpoint registered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/prompts/image/options", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cards", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
