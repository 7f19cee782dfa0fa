// Package main implements the entry point for the didactic prompt
// generator API server, which turns structured form submissions into
// polished prompts via the Gemini language model.
package main

import (
	"context"
	"log"

	"github.com/eduforge/promptgen-api/internal/config"
	"github.com/eduforge/promptgen-api/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the application
// dependencies, and starts the HTTP server. A missing or invalid
// configuration (notably the Gemini API key) is fatal: the process
// refuses to start rather than run degraded.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	logg.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, logg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
