// Package logger builds the diagnostic logger. Diagnostics go to stderr so
// they never mix with quotes printed on stdout.
package logger

import (
	"io"
	"log/slog"
)

// New returns a text slog.Logger writing to w.
// When verbose is true, the logger emits debug-level logs; otherwise info-level.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
