package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON-formatted logger writing records at or above level to w.
// A nil writer falls back to stdout.
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
