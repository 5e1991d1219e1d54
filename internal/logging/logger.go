package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewJSONHandler returns the stdout JSON handler used as the primary sink.
func NewJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// Setup initializes the global slog logger with JSON output to stdout.
func Setup(level slog.Level) {
	slog.SetDefault(slog.New(NewJSONHandler(os.Stdout, level)))
}
