// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string

	// Principal/Secret override the persisted credential pair when both
	// are set. When empty, credentials are loaded from the store and a
	// secret is generated on first run.
	Principal string
	Secret    string

	SessionIdleTimeout time.Duration
	HistoryLimit       int

	// ServerAddr/ServerPort locate the supervised server process for
	// the status probe.
	ServerAddr string
	ServerPort int

	FeedQueueSize int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		FrontendURL:        getEnv("FRONTEND_URL", ""),
		DBPath:             getEnv("DB_PATH", "./data/console.db"),
		Principal:          getEnv("CONSOLE_PRINCIPAL", ""),
		Secret:             getEnv("CONSOLE_SECRET", ""),
		SessionIdleTimeout: getEnvDuration("SESSION_IDLE_TIMEOUT", 24*time.Hour),
		HistoryLimit:       getEnvInt("HISTORY_LIMIT", 100),
		ServerAddr:         getEnv("SERVER_ADDR", "127.0.0.1"),
		ServerPort:         getEnvInt("SERVER_PORT", 25565),
		FeedQueueSize:      getEnvInt("FEED_QUEUE_SIZE", 100),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if (c.Principal == "") != (c.Secret == "") {
		return fmt.Errorf("CONSOLE_PRINCIPAL and CONSOLE_SECRET must be set together")
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be > 0")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be > 0")
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid TCP port")
	}
	if c.FeedQueueSize <= 0 {
		return fmt.Errorf("FEED_QUEUE_SIZE must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
