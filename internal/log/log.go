// Package log supplies the structured logger cosma's facade falls back
// to when a caller doesn't configure one of its own via
// cosma.WithLogger, so every call site agrees on the same
// no-op-by-default policy.
package log

import (
	"io"
	"log/slog"
)

// Nop returns a Logger that discards every record.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Default returns the package's standard human-readable logger, written
// to w at Info level — used by cmd/cosma-bench when the operator didn't
// ask for quiet output.
func Default(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
