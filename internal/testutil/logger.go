package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output.
// Tests pass it wherever a component wants a *slog.Logger.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
