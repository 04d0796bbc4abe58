package config

import (
	"os"
	"strconv"
)

const defaultMaxFileSize = 50 * 1024 * 1024 // 50MB

// Config holds the application configuration
type Config struct {
	Port         string
	Environment  string
	MaxFileSize  int64 // in bytes
	ShowProgress bool
	LogPrefix    string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("GO_ENV", "development"),
		MaxFileSize:  getEnvInt64("MAX_FILE_SIZE", defaultMaxFileSize),
		ShowProgress: getEnvBool("HUFFPACK_PROGRESS", false),
		LogPrefix:    getEnv("HUFFPACK_LOG_PREFIX", "huffpack "),
	}

	return cfg
}

// IsProduction reports whether GO_ENV selects the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt64 parses a positive integer variable, falling back to the default
// when it is unset or invalid
func getEnvInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// getEnvBool parses a boolean variable, falling back to the default when it
// is unset or invalid
func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
