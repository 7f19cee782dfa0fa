package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eduforge/promptgen-api/internal/config"
)

// Setup initializes and configures the application's logging system
// based on the provided server configuration. It creates a structured
// JSON logger with the appropriate log level, sets it as the default
// logger for the application, and returns it.
//
// An invalid log level falls back to info after emitting a warning
// through a temporary text logger.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return setup(cfg, os.Stdout)
}

// setup is the testable core of Setup, writing to the given sink.
func setup(cfg config.ServerConfig, out io.Writer) (*slog.Logger, error) {
	level, ok := parseLevel(cfg.LogLevel)
	if !ok {
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	log := slog.New(slog.NewJSONHandler(out, opts))

	// Set as default so package-level slog functions share the handler.
	slog.SetDefault(log)

	return log, nil
}

// parseLevel converts a configured level name (case-insensitive) into a
// slog.Level. The second return value reports whether the name was
// recognized; unrecognized names map to info.
func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
