package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds the process logger. Dev gets debug-level text on stderr so the
// silent-failure paths are visible; prod keeps the terminal quiet apart
// from warnings. The TUI owns stdout, so logs never go there.
func New(env string) *slog.Logger {
	var h slog.Handler
	switch env {
	case "dev":
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	case "silent":
		h = slog.NewTextHandler(io.Discard, nil)
	default:
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	}
	return slog.New(h)
}
