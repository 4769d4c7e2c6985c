package testutils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/nfrund/flexe/internal/config"
)

// ConfigForTests returns a valid configuration backed by the in-memory post
// store. It never reads the environment.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		ServerAddr:     ":0",
		AppBaseURL:     "https://flexe.test",
		SessionSecret:  "a-very-secret-key-for-testing-!",
		LogFormat:      "text",
		LogLevel:       "error",
		PostStore:      config.PostStoreMemory,
		DBQueryTimeout: time.Second,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return cfg
}

// SurrealConfigForTests loads .env.test from the project root and returns a
// configuration for the SurrealDB post store. The test is skipped in short
// mode or when no database is configured.
func SurrealConfigForTests(t *testing.T) *config.Config {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	// Find project root by looking for go.mod to reliably locate .env.test
	env, err := godotenv.Read(filepath.Join(projectRoot(t), ".env.test"))
	if err != nil {
		t.Log("No .env.test file found, relying on environment variables.")
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	if os.Getenv("SURREAL_URL") == "" {
		t.Skip("SURREAL_URL not set")
	}
	t.Setenv("POST_STORE", config.PostStoreSurreal)
	if os.Getenv("SESSION_SECRET") == "" {
		t.Setenv("SESSION_SECRET", "integration")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("invalid integration config: %v", err)
	}
	return cfg
}

func projectRoot(t *testing.T) string {
	t.Helper()
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}
