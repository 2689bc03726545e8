package main

import (
	"io"
	"log/slog"

	"github.com/crucial707/todo-api/internal/config"
)

// newLogger builds the process logger from LOG_FORMAT and LOG_LEVEL.
// An unknown level falls back to info.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", "todo-api")
}
