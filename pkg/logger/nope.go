package logger

import "log/slog"

// NewNope creates a logger that discards all output, including debug records.
// It is the adapter default until a real logger is installed.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
