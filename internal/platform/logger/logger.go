// Package logger provides structured logging setup for the engine.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/sahana-dev/phrasetrack/internal/config"
)

// Setup builds a structured JSON logger with the level from the logging
// configuration and installs it as the process default. An unrecognized
// level falls back to info with a warning.
func Setup(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(logger)

	return logger
}
