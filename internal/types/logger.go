// Package types holds small cross-cutting types shared by the tokenizer,
// parser, and resolver — presently just the structured-logging wrapper.
package types

import (
	"context"
	"log/slog"
)

// LevelTrace is a verbosity level below slog.LevelDebug, used for
// per-token detail that would otherwise drown out ordinary debug logging.
const LevelTrace = slog.Level(-8)

// Logger wraps a *slog.Logger so that a nil Logger (the zero value) is
// always safe to call: components that don't care about logging can be
// constructed without one.
type Logger struct {
	L *slog.Logger
}

// Enabled reports whether a log record at level would be emitted.
func (l Logger) Enabled(ctx context.Context, level slog.Level) bool {
	if l.L == nil {
		return false
	}
	return l.L.Enabled(ctx, level)
}

// Log emits a record at level if the underlying logger is non-nil and that
// level is enabled.
func (l Logger) Log(ctx context.Context, level slog.Level, msg string, args ...any) {
	if l.L == nil {
		return
	}
	l.L.Log(ctx, level, msg, args...)
}

// TraceEnabled reports whether LevelTrace logging is enabled.
func (l Logger) TraceEnabled() bool {
	return l.Enabled(context.Background(), LevelTrace)
}

// Trace logs at LevelTrace.
func (l Logger) Trace(msg string, args ...any) {
	l.Log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs at slog.LevelDebug.
func (l Logger) Debug(msg string, args ...any) {
	l.Log(context.Background(), slog.LevelDebug, msg, args...)
}

// Warn logs at slog.LevelWarn.
func (l Logger) Warn(msg string, args ...any) {
	l.Log(context.Background(), slog.LevelWarn, msg, args...)
}

// With returns a Logger whose underlying *slog.Logger has args bound, or
// the zero Logger if l wraps no logger.
func (l Logger) With(args ...any) Logger {
	if l.L == nil {
		return l
	}
	return Logger{L: l.L.With(args...)}
}
