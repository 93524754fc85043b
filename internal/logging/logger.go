// Package logging is the structured logger shared by the command.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger wraps slog.Logger with fdns-specific helpers so field names stay
// consistent across the command.
type Logger struct {
	*slog.Logger
}

// New returns a Logger writing to w in the given format ("text" or "json").
func New(w io.Writer, level slog.Level, format string) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(format) {
	case "", FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
	return &Logger{Logger: slog.New(h)}, nil
}

// WithPath tags every entry with the dump being read.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// LogRunStart logs the effective filter and pool settings.
func (l *Logger) LogRunStart(ctx context.Context, kind, field, pattern string, allow, workers, batch int) {
	l.InfoContext(ctx, "filtering started",
		"kind", kind,
		"field", field,
		"pattern", pattern,
		"allow_suffixes", allow,
		"workers", workers,
		"batch_size", batch,
	)
}

// LogRunDone logs the outcome of a run.
func (l *Logger) LogRunDone(ctx context.Context, lines, batches int64, matched int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filtering failed",
			"lines", lines,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "filtering completed",
		"lines", lines,
		"batches", batches,
		"matched", matched,
		"elapsed", elapsed,
	)
}
