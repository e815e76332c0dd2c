package logging

import (
	"context"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/countryexplorer/internal/ports"
)

// WithCorrelationID stores the provided correlation identifier inside the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// GetCorrelationID retrieves the correlation identifier from the context, returning
// an empty string when none is present.
func GetCorrelationID(ctx context.Context) string {
	return ports.GetCorrelationID(ctx)
}

// GenerateCorrelationID creates a new random (version 4) UUID string.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

// NewCorrelatedContext returns ctx carrying a freshly generated correlation ID.
func NewCorrelatedContext(ctx context.Context) context.Context {
	return WithCorrelationID(ctx, GenerateCorrelationID())
}
