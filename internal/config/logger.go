package config

import (
	"io"
	"log/slog"

	"github.com/spachava753/aocharness/internal/models"
)

// NewLogger creates a slog.Logger writing to w at the configured level and
// format. It does not set the default logger.
func NewLogger(cfg models.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
