package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/panjuncai/Sola-sub000/internal/config"
)

// NewLogger creates the process logger from LogConfig, writes to stderr
// and installs it with slog.SetDefault.
//
// Format "json" produces structured output for the server; "text" adds
// source locations and suits the CLI's --verbose mode. Level is one of
// debug, info, warn, error (case-insensitive) and defaults to info.
// Every record carries the build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("version", Version))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
