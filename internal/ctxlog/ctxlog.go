// SPDX-License-Identifier: MPL-2.0

// Package ctxlog carries a slog.Logger through context.Context and builds
// the terminal logger used by the CLI.
package ctxlog

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// Prefix is printed in front of every CLI log line.
const Prefix = "nscmd"

// key is unexported to prevent collisions with context keys from other packages.
type key struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default when there
// is none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(key{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// New builds a slog.Logger backed by a charmbracelet/log handler writing to
// w. Debug records are only emitted when verbose is set.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
	return slog.New(handler)
}
