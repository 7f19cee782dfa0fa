// Package main implements promptgen, an interactive terminal front end
// for the didactic prompt generator. It walks the same form the API
// serves (mode selection plus per-mode fields), submits through the
// prompt service, and writes the generated prompt to the per-mode
// download file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/eduforge/promptgen-api/internal/config"
	"github.com/eduforge/promptgen-api/internal/platform/gemini"
	"github.com/eduforge/promptgen-api/internal/service"
)

func main() {
	var (
		outputFlag  = flag.String("output", "", "Optional file path for the generated prompt (per-mode default when empty)")
		modelFlag   = flag.String("model", "", "Override the configured Gemini model name")
		timeoutFlag = flag.Duration("timeout", 60*time.Second, "Generation timeout")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *modelFlag != "" {
		cfg.LLM.ModelName = *modelFlag
	}

	// Keep interactive output clean: only warnings and errors.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	if err := run(ctx, cfg, logger, *outputFlag); err != nil {
		if errors.Is(err, errFormAborted) {
			fmt.Fprintln(os.Stderr, "Cancelado.")
			os.Exit(130)
		}
		log.Fatalf("promptgen: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, outputPath string) error {
	generator, err := gemini.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create prompt generator: %w", err)
	}

	svc, err := service.NewPromptService(generator, logger)
	if err != nil {
		return fmt.Errorf("failed to create prompt service: %w", err)
	}

	kind, err := askKind(ctx)
	if err != nil {
		return err
	}

	specs, err := svc.Options(kind)
	if err != nil {
		return err
	}

	fields, err := askFields(ctx, specs)
	if err != nil {
		return err
	}

	fmt.Println("Gerando seu prompt...")
	outcome := svc.Submit(ctx, kind, fields)

	switch outcome.Status {
	case service.StatusValidationFailed:
		// The survey validator already enforces the required field, so
		// this only triggers when input arrives outside the form flow.
		return fmt.Errorf("campo obrigatório vazio: %s", outcome.Field)

	case service.StatusFailed:
		return outcome.Err

	default:
		fmt.Println("\nPrompt Gerado:")
		fmt.Println(outcome.Prompt.Prompt)

		path := outputPath
		if path == "" {
			path = kind.DownloadFilename()
		}
		if err := os.WriteFile(path, []byte(outcome.Prompt.Prompt), 0o644); err != nil {
			return fmt.Errorf("failed to write prompt file: %w", err)
		}
		fmt.Printf("\nPrompt salvo em %s\n", path)
		return nil
	}
}
