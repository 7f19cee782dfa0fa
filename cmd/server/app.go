package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eduforge/promptgen-api/internal/config"
	"github.com/eduforge/promptgen-api/internal/generation"
	"github.com/eduforge/promptgen-api/internal/platform/gemini"
	"github.com/eduforge/promptgen-api/internal/service"
)

// application holds the initialized dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator     generation.PromptGenerator
	promptService *service.PromptService
}

// newApplication wires the application components: the Gemini-backed
// prompt generator and the prompt service that orchestrates
// submissions.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt generator: %w", err)
	}

	promptService, err := service.NewPromptService(generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        logger,
		generator:     generator,
		promptService: promptService,
	}, nil
}
