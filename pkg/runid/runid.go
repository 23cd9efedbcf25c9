package runid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const RunIDKey contextKey = "run_id"

// Generate creates a new unique run ID
func Generate() string {
	return uuid.New().String()
}

// ToContext adds a run ID to the context
func ToContext(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// FromContext extracts the run ID from the context.
// Returns empty string if run ID is not found.
func FromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}
