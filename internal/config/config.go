package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Post store backends selectable with POST_STORE.
const (
	PostStoreMemory  = "memory"
	PostStoreSurreal = "surreal"
)

// Provider exposes the application configuration through getters so that
// handlers and stores can depend on an interface instead of the struct.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetPostStore() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	AppBaseURL     string
	SessionSecret  string
	LogFormat      string
	LogLevel       string
	PostStore      string
	DBUrl          string
	DBNs           string
	DBDb           string
	DBUser         string
	DBPass         string
	DBQueryTimeout time.Duration
}

var _ Provider = (*Config)(nil)

// New loads configuration from environment variables, reading a .env file
// first when one is present.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		AppBaseURL:    strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		PostStore:     getEnv("POST_STORE", PostStoreMemory),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
	}

	timeout, err := time.ParseDuration(getEnv("DB_QUERY_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_QUERY_TIMEOUT: %w", err)
	}
	cfg.DBQueryTimeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the combination of settings is usable.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must be set")
	}
	if c.DBQueryTimeout <= 0 {
		return errors.New("DB_QUERY_TIMEOUT must be a positive duration")
	}
	switch c.PostStore {
	case PostStoreMemory:
	case PostStoreSurreal:
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			return errors.New("SURREAL_URL, SURREAL_NS and SURREAL_DB are required when POST_STORE=surreal")
		}
	default:
		return fmt.Errorf("unknown POST_STORE %q", c.PostStore)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetServerAddr() string             { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string             { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string          { return c.SessionSecret }
func (c *Config) GetLogFormat() string              { return c.LogFormat }
func (c *Config) GetLogLevel() string               { return c.LogLevel }
func (c *Config) GetPostStore() string              { return c.PostStore }
func (c *Config) GetDBURL() string                  { return c.DBUrl }
func (c *Config) GetDBNs() string                   { return c.DBNs }
func (c *Config) GetDBDb() string                   { return c.DBDb }
func (c *Config) GetDBUser() string                 { return c.DBUser }
func (c *Config) GetDBPass() string                 { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration { return c.DBQueryTimeout }
