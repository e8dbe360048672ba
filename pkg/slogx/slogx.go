package slogx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
)

type Config struct {
	Service string
	Version string
	Env     string // e.g. "dev", "prod"
	Level   string // e.g. "debug", "info", "warn", "error"
	Format  string // e.g. "json", "text"

	// File, when set, also writes logs to a daily rotated file. The current
	// file is File plus a date suffix; File itself links to it.
	File string

	// Output overrides stdout. Mostly for tests.
	Output io.Writer
}

const (
	fileRotation  = 24 * time.Hour
	fileRetention = 7 * 24 * time.Hour
)

// New returns a configured slog.Logger instance and sets it as the default.
func New(cfg Config) (*slog.Logger, error) {
	var handler slog.Handler

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	if cfg.File != "" {
		rotated, err := rotatelogs.New(
			cfg.File+".%Y%m%d",
			rotatelogs.WithLinkName(cfg.File),
			rotatelogs.WithRotationTime(fileRotation),
			rotatelogs.WithMaxAge(fileRetention),
		)
		if err != nil {
			return nil, fmt.Errorf("slogx: failed to open log file: %w", err)
		}
		out = io.MultiWriter(out, rotated)
	}

	opts := &slog.HandlerOptions{
		AddSource: cfg.Env == "dev", // Add source info in dev mode
		Level:     parseLevel(cfg.Level),
	}

	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)

	slog.SetDefault(logger)
	return logger, nil
}

// parseLevel maps a string to slog.Level.
func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
