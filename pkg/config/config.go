// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for storage, agent, HTTP, and logging

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Store contains settings persistence configuration
	Store StoreConfig

	// Agent contains capture agent configuration
	Agent AgentConfig

	// HTTP contains outbound HTTP client configuration
	HTTP HTTPConfig

	// Log contains logging configuration
	Log LogConfig
}

// StoreConfig holds settings store configuration
type StoreConfig struct {
	// Type specifies the store backend (sqlite/memory)
	Type string

	// Path is the SQLite database file path
	Path string
}

// AgentConfig holds capture agent configuration
type AgentConfig struct {
	// URL is the base URL of the in-page capture agent
	URL string
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	// Timeout is the per-request timeout in seconds
	Timeout int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level to emit (debug/info/warn/error)
	Level string

	// Format selects the output format (text/json)
	Format string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Store: StoreConfig{
			Type: getEnvOrDefault("STORE_TYPE", "sqlite"),
			Path: getEnvOrDefault("STORE_PATH", "clipper.db"),
		},
		Agent: AgentConfig{
			URL: getEnvOrDefault("AGENT_URL", "http://127.0.0.1:9222"),
		},
		HTTP: HTTPConfig{
			Timeout: getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

// RequestTimeout returns the HTTP timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.HTTP.Timeout) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store.Type != "sqlite" && c.Store.Type != "memory" {
		return errors.New("store type must be 'sqlite' or 'memory'")
	}

	if c.Store.Type == "sqlite" && c.Store.Path == "" {
		return errors.New("store path cannot be empty when using sqlite")
	}

	if c.Agent.URL == "" {
		return errors.New("agent URL cannot be empty")
	}

	if c.HTTP.Timeout < 1 {
		return errors.New("http timeout must be at least 1 second")
	}

	return nil
}
