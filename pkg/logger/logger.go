// Package logger provides a structured, levelled logger built on log/slog.
//
// Handlers are chosen from APP_ENV: human-readable text in development,
// JSON in production. An optional asynchronous MongoDB sink can be attached
// with EnableMongoSink so every log line is queryable later.
//
// Request-scoped logging:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order status updated", "order", number, "status", status)
//	// → time=... level=INFO msg="order status updated" request_id=a1b2c3d4 ...
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/vendora/config"
)

var L *slog.Logger

func init() {
	L = slog.New(baseHandler())
	slog.SetDefault(L)
}

func baseHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// EnableMongoSink attaches an asynchronous MongoDB handler next to the
// stdout handler. Returns the sink so the caller can Close it on shutdown.
// A connection failure leaves the stdout logger untouched.
func EnableMongoSink(uri, db, collection string) (*MongoSink, error) {
	sink, err := NewMongoSink(uri, db, collection)
	if err != nil {
		return nil, err
	}

	L = slog.New(NewTeeHandler(baseHandler(), sink))
	slog.SetDefault(L)
	return sink, nil
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

// ctxKey is the unexported key used to store a per-request *slog.Logger.
type ctxKey struct{}

// WithCtx returns the request-scoped logger injected by the Logger middleware,
// pre-tagged with the request_id. Falls back to the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// Inject stores a request-scoped *slog.Logger into ctx.
// Called by the Logger middleware — not usually needed in application code.
func Inject(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }
