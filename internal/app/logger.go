package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger for one app instance; the
// global default logger is left untouched.
func newLogger(cfg *Config, errW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(errW, opts))
	}
	return slog.New(slog.NewTextHandler(errW, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
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
