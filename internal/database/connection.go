package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/url"
	"time"

	"github.com/nfrund/flexe/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// Retryer retries an operation with exponential backoff and jitter.
type Retryer struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	multiplier float64
	jitter     bool
}

// NewRetryer creates a retryer with the defaults used for startup connects.
func NewRetryer() *Retryer {
	return &Retryer{
		maxRetries: 5,
		baseDelay:  100 * time.Millisecond,
		maxDelay:   10 * time.Second,
		multiplier: 2.0,
		jitter:     true,
	}
}

// Retry executes fn until it succeeds, the attempts run out or ctx ends.
func (r *Retryer) Retry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxRetries {
			break
		}

		delay := r.delay(attempt)
		slog.DebugContext(ctx, "Retry attempt failed, waiting before next attempt",
			"attempt", attempt+1, "max_attempts", r.maxRetries+1,
			"delay_ms", delay.Milliseconds(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", r.maxRetries+1, lastErr)
}

func (r *Retryer) delay(attempt int) time.Duration {
	delay := float64(r.baseDelay) * math.Pow(r.multiplier, float64(attempt))
	if delay > float64(r.maxDelay) {
		delay = float64(r.maxDelay)
	}
	if r.jitter {
		delay += rand.Float64() * delay * 0.25
	}
	return time.Duration(delay)
}

// Connect opens a SurrealDB connection, signs in and selects the configured
// namespace and database, retrying transient failures.
func Connect(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	var db *surrealdb.DB
	err := NewRetryer().Retry(ctx, func() error {
		conn, err := open(ctx, cfg)
		if err != nil {
			return err
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, NewDBError(err, "connect to "+redactDBURL(cfg.GetDBURL()))
	}
	return db, nil
}

func open(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	dbURL := cfg.GetDBURL()
	slog.DebugContext(ctx, "Attempting to connect to database", "db_url", redactDBURL(dbURL))

	conn, err := surrealdb.FromEndpointURLString(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database at %s: %w", redactDBURL(dbURL), err)
	}

	if cfg.GetDBUser() != "" {
		authData := &surrealdb.Auth{
			Username: cfg.GetDBUser(),
			Password: cfg.GetDBPass(),
		}
		if _, err := conn.SignIn(ctx, authData); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to sign in: %w", err)
		}
	}

	if err := conn.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.InfoContext(ctx, "Database connection established",
		"db_url", redactDBURL(dbURL),
		"namespace", cfg.GetDBNs(),
		"database", cfg.GetDBDb(),
	)
	return conn, nil
}

// redactDBURL returns dbURL with any password replaced.
func redactDBURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	return parsedURL.Redacted()
}
