package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the survey translation service
type Config struct {
	// Server configuration
	Port string

	// OpenAI configuration
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAITimeout     time.Duration
	OpenAIMaxTokens   int
	OpenAITemperature float64

	// Database configuration (survey store; optional — the translation
	// flow does not use it)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server defaults
		Port: getEnv("PORT", "8080"),

		// OpenAI defaults
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAITimeout:     getDurationEnv("OPENAI_TIMEOUT", 120*time.Second),
		OpenAIMaxTokens:   getIntEnv("OPENAI_MAX_TOKENS", 4000),
		OpenAITemperature: getFloatEnv("OPENAI_TEMPERATURE", 0.3),

		// Database defaults; empty host disables the survey store
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "server"),
		DBPassword: getEnv("DB_PASSWORD", "secret_app"),
		DBName:     getEnv("DB_NAME", "surveys"),

		// Logging defaults
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// StoreEnabled reports whether the survey document store is configured.
func (c *Config) StoreEnabled() bool {
	return c.DBHost != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv gets a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getIntEnv gets an integer environment variable or returns a default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getFloatEnv gets a float environment variable or returns a default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
