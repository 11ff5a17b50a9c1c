// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, data locations, LLM providers, and external services.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// LLM Configuration
	GoogleAPIKey string // Gemini API key; AI endpoints degrade to fallbacks when empty
	GroqAPIKey   string // Groq API key (optional fallback provider)

	// LLM Model Configuration (optional, defaults apply if empty)
	GeminiModels []string // Ordered Gemini model chain
	GroqModels   []string // Ordered Groq model chain

	// LLM Provider Configuration
	LLMPrimaryProvider  string // "gemini" or "groq" (default: "gemini")
	LLMFallbackProvider string // "gemini" or "groq" (default: "groq")

	// AI endpoint rate limits (token bucket per client IP)
	AIRateLimitBurst        float64 // Maximum burst tokens (default: 10)
	AIRateLimitRefillPerSec float64 // Tokens refilled per second (default: 0.2 = 1 per 5s)
	AIRateLimitDaily        int     // Rolling 24h request cap per client (default: 200, 0 = disabled)

	// Metrics Authentication
	MetricsUsername string // Username for /metrics Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics Basic Auth (empty = no auth)

	// Server Configuration
	Port             string
	LogLevel         string
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string // Allowed CORS origins ("*" = any)

	// Data Configuration
	DataDir string // Directory holding the course and professor JSON files

	// OpenAlex Configuration
	OpenAlexBaseURL string        // Base URL of the OpenAlex API
	OpenAlexTimeout time.Duration // Per-request timeout
	OpenAlexMailto  string        // Contact email for OpenAlex's polite pool (optional)

	// Better Stack log shipping (optional)
	BetterStackToken    string
	BetterStackEndpoint string

	// Sentry error tracking (optional)
	SentryToken       string
	SentryHost        string
	SentryEnvironment string
	SentrySampleRate  float64
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		GoogleAPIKey: getEnv(EnvGoogleAPIKey, ""),
		GroqAPIKey:   getEnv(EnvGroqAPIKey, ""),

		GeminiModels: getListEnv(EnvGeminiModels),
		GroqModels:   getListEnv(EnvGroqModels),

		LLMPrimaryProvider:  getEnv(EnvLLMPrimaryProvider, "gemini"),
		LLMFallbackProvider: getEnv(EnvLLMFallbackProvider, "groq"),

		AIRateLimitBurst:        getFloatEnv(EnvAIRateBurst, 10.0),
		AIRateLimitRefillPerSec: getFloatEnv(EnvAIRateRefill, 0.2), // 1 per 5s
		AIRateLimitDaily:        getIntEnv(EnvAIRateDaily, 200),

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		Port:             getEnv(EnvPort, "8000"),
		LogLevel:         getEnv(EnvLogLevel, "info"),
		ShutdownTimeout:  getDurationEnv(EnvShutdownTimeout, 30*time.Second),
		CORSAllowOrigins: getListEnvDefault(EnvCORSAllowOrigins, []string{"*"}),

		DataDir: getEnv(EnvDataDir, "./data"),

		OpenAlexBaseURL: getEnv(EnvOpenAlexBaseURL, "https://api.openalex.org"),
		OpenAlexTimeout: getDurationEnv(EnvOpenAlexTimeout, OpenAlexRequest),
		OpenAlexMailto:  getEnv(EnvOpenAlexMailto, ""),

		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),

		SentryToken:       getEnv(EnvSentryToken, ""),
		SentryHost:        getEnv(EnvSentryHost, "errors.betterstack.com"),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.OpenAlexBaseURL == "" {
		errs = append(errs, errors.New(EnvOpenAlexBaseURL+" is required"))
	}
	if c.OpenAlexTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvOpenAlexTimeout, c.OpenAlexTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}
	if c.AIRateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvAIRateBurst, c.AIRateLimitBurst))
	}
	if c.AIRateLimitRefillPerSec <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvAIRateRefill, c.AIRateLimitRefillPerSec))
	}
	if c.AIRateLimitDaily < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %d", EnvAIRateDaily, c.AIRateLimitDaily))
	}
	switch c.LLMPrimaryProvider {
	case "gemini", "groq":
	default:
		errs = append(errs, fmt.Errorf("%s must be gemini or groq, got %q", EnvLLMPrimaryProvider, c.LLMPrimaryProvider))
	}
	switch c.LLMFallbackProvider {
	case "", "gemini", "groq":
	default:
		errs = append(errs, fmt.Errorf("%s must be gemini or groq, got %q", EnvLLMFallbackProvider, c.LLMFallbackProvider))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// HasLLMProvider returns true if at least one LLM provider is configured.
func (c *Config) HasLLMProvider() bool {
	return c.GoogleAPIKey != "" || c.GroqAPIKey != ""
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getListEnv retrieves a comma-separated list environment variable.
// Returns nil when unset.
func getListEnv(key string) []string {
	return getListEnvDefault(key, nil)
}

// getListEnvDefault retrieves a comma-separated list environment variable
// with a fallback default. Entries are trimmed; empty entries dropped.
func getListEnvDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
