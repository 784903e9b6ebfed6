package common

import "context"

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	StartTimeKey     contextKey = "__start_time"
)

// CorrelationID returns the id stored on ctx by the correlation middleware.
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}
