// Package config loads the site server configuration from the
// environment, with .env files for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the site server.
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP listener configuration.
type ServerConfig struct {
	Addr string
}

// APIConfig points at the external Biogleam REST backend.
type APIConfig struct {
	BaseURL string
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	addr := os.Getenv("BIOGLEAM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Backend base path, /api/v1 included
	apiURL := os.Getenv("BIOGLEAM_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:4000/api/v1"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}

	return &Config{
		Server: ServerConfig{
			Addr: addr,
		},
		API: APIConfig{
			BaseURL: apiURL,
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}
