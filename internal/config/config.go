// Package config provides environment configuration for the serve command.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the HTTP render service.
type Config struct {
	// Server settings
	ServerPort         string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration

	// Request limits
	MaxWorkspaceBytes int64
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Auth settings; an empty secret disables authentication
	JWTSecret string

	// Logging
	LogLevel string

	// Tracing
	TracingEndpoint string
	TracingEnabled  bool
}

// Load reads configuration from environment variables, first loading a
// .env file when one is present in the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		// Server
		ServerPort:         getEnv("STRUCTUML_PORT", "8080"),
		ServerReadTimeout:  getDurationEnv("STRUCTUML_READ_TIMEOUT", 30*time.Second),
		ServerWriteTimeout: getDurationEnv("STRUCTUML_WRITE_TIMEOUT", 60*time.Second),

		// Request limits
		MaxWorkspaceBytes: getInt64Env("STRUCTUML_MAX_WORKSPACE_BYTES", 10<<20),
		RateLimitRequests: getIntEnv("STRUCTUML_RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:   getDurationEnv("STRUCTUML_RATE_LIMIT_WINDOW", time.Minute),

		// Auth
		JWTSecret: getEnv("STRUCTUML_JWT_SECRET", ""),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Tracing
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4318"),
		TracingEnabled:  getBoolEnv("TRACING_ENABLED", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
