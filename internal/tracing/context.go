package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// TraceIDKey is the context key for trace ID
	TraceIDKey ContextKey = "trace_id"
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
)

// NewTraceID generates a new trace ID
func NewTraceID() string {
	return uuid.New().String()
}

// WithTraceID adds a trace ID to the context
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetTraceID retrieves the trace ID from the context
func GetTraceID(ctx context.Context) string {
	if v, ok := ctx.Value(TraceIDKey).(string); ok {
		return v
	}
	return ""
}

// GetRequestID retrieves the request ID from the context
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return v
	}
	return ""
}

// LoggerFromContext returns a child logger annotated with whatever tracing
// identifiers the context carries.
func LoggerFromContext(ctx context.Context, base zerolog.Logger) zerolog.Logger {
	logCtx := base.With()
	if traceID := GetTraceID(ctx); traceID != "" {
		logCtx = logCtx.Str("trace_id", traceID)
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}
	return logCtx.Logger()
}
