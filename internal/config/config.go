package config

import (
	"fmt"
	"time"
)

// Config holds the server's runtime settings. Values are populated by
// the command-line flags in cmd/server, each overridable through a
// BUZZER_* environment variable.
type Config struct {
	Bind      string
	Port      int
	LogLevel  string
	LogFormat string

	// RoomTTL is how long an empty room may linger before the reaper
	// evicts it; ReapInterval is how often the reaper sweeps.
	RoomTTL      time.Duration
	ReapInterval time.Duration
}

// Default returns the configuration used when no flags are set.
func Default() *Config {
	return &Config{
		Bind:         "0.0.0.0",
		Port:         8080,
		LogLevel:     "info",
		LogFormat:    "text",
		RoomTTL:      2 * time.Hour,
		ReapInterval: time.Hour,
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.RoomTTL <= 0 {
		return fmt.Errorf("invalid room TTL: %s", c.RoomTTL)
	}
	if c.ReapInterval <= 0 {
		return fmt.Errorf("invalid reap interval: %s", c.ReapInterval)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %q", c.LogFormat)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}
