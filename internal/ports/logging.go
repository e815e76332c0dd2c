package ports

import "context"

// Logger defines the structured logging contract shared by every layer. All
// log calls take key/value pairs, must be safe for concurrent use, and should
// enrich entries with the correlation ID carried by ctx. Common fields:
//   - correlation_id (UUIDv4, generated once per CLI invocation or TUI session)
//   - component (restcountries, wikipedia, preferences, tui, ...)
//   - route / code / region / query for lookups
//   - status and duration_ms for remote calls
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context so
// downstream layers can emit correlated logs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context. It returns an empty
// string when none has been set; callers treat that as "uncorrelated".
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}
