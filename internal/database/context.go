package database

import (
	"context"
	"time"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// ContextKeyQueryTimeout allows overriding the default timeout for read queries.
const ContextKeyQueryTimeout ContextKey = "db_query_timeout"

// withQueryTimeout applies the timeout stored in ctx, or defaultTimeout.
func withQueryTimeout(ctx context.Context, defaultTimeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := defaultTimeout
	if v, ok := ctx.Value(ContextKeyQueryTimeout).(time.Duration); ok && v > 0 {
		timeout = v
	}
	return context.WithTimeout(ctx, timeout)
}
