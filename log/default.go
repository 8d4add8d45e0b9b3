package log

import (
	"context"
	"log/slog"
	"os"
)

// DefaultContextProvider returns the context used by the context-unaware
// logging functions. It defaults to [context.TODO].
//
//nolint:gochecknoglobals
var DefaultContextProvider = context.TODO

// defaultLog is the package-level logger used by the package-level
// logging functions.
//
//nolint:gochecknoglobals
var defaultLog = Make(os.Stderr)

// Default returns the package-level logger.
func Default() Logger { return defaultLog }

// SetDefault replaces the package-level logger.
func SetDefault(l Logger) { defaultLog = l }

// Trace logs a message at Trace level using the package-level logger.
func Trace(msg string, attrs ...slog.Attr) {
	defaultLog.Trace(msg, attrs...)
}

// Debug logs a message at Debug level using the package-level logger.
func Debug(msg string, attrs ...slog.Attr) {
	defaultLog.Debug(msg, attrs...)
}

// Info logs a message at Info level using the package-level logger.
func Info(msg string, attrs ...slog.Attr) {
	defaultLog.Info(msg, attrs...)
}

// Warn logs a message at Warn level using the package-level logger.
func Warn(msg string, attrs ...slog.Attr) {
	defaultLog.Warn(msg, attrs...)
}

// Error logs a message at Error level using the package-level logger.
func Error(msg string, attrs ...slog.Attr) {
	defaultLog.Error(msg, attrs...)
}

// TraceContext logs a message at Trace level using the package-level
// logger and the given context.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.TraceContext(ctx, msg, attrs...)
}

// DebugContext logs a message at Debug level using the package-level
// logger and the given context.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.DebugContext(ctx, msg, attrs...)
}

// InfoContext logs a message at Info level using the package-level
// logger and the given context.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.InfoContext(ctx, msg, attrs...)
}

// WarnContext logs a message at Warn level using the package-level
// logger and the given context.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.WarnContext(ctx, msg, attrs...)
}

// ErrorContext logs a message at Error level using the package-level
// logger and the given context.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLog.ErrorContext(ctx, msg, attrs...)
}
