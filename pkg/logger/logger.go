// Package logger provides a structured, levelled logger built on log/slog.
//
// The key extension over plain slog is WithCtx: it returns a logger with the
// outgoing request ID already attached, so every log line from one API call
// is automatically correlated:
//
//	log := logger.WithCtx(ctx)
//	log.Info("order created", "table", table, "total", ord.Total)
//	// → time=... level=INFO msg="order created" request_id=a1b2c3d4 table=4 total=115
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/barman/config"
)

var L *slog.Logger

func init() {
	var level slog.Level
	var handler slog.Handler

	opts := &slog.HandlerOptions{Level: level}

	switch config.AppEnv() {
	case "production", "prod":
		level = slog.LevelInfo
		opts.Level = level
		handler = slog.NewJSONHandler(os.Stderr, opts) // structured JSON for log aggregators
	default:
		level = slog.LevelDebug
		opts.Level = level
		handler = slog.NewTextHandler(os.Stderr, opts) // human-readable for dev
	}

	// stderr, not stdout: stdout belongs to rendered tables and receipts.
	L = slog.New(handler)
	slog.SetDefault(L)
}

// ctxKey is the unexported key used to store a per-call *slog.Logger.
type ctxKey struct{}

// WithCtx returns the *slog.Logger stored in ctx by InjectLogger, or the
// base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a *slog.Logger (pre-tagged with request_id) into ctx.
// Called by the API client before each outgoing request — not usually needed
// in application code.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
