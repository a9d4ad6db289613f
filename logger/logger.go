// Package logger configures structured JSON logging.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup returns a slog.Logger writing JSON records to w.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetupDefault installs the JSON logger as the process-wide default.
// Production is expected to pass os.Stdout.
func SetupDefault(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	slog.SetDefault(Setup(w))
}
