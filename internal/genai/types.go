// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains shared types, interfaces, and configuration for text
// generation with multi-provider fallback support.
//
// Architecture:
// - Gemini: Uses google.golang.org/genai (official SDK)
// - Groq: Uses github.com/openai/openai-go/v3 (OpenAI-compatible API)
//
// Fallback Strategy (3-layer):
// 1. Model Chain: Next model in the same provider's model list
// 2. Model Retry: Same provider retried with exponential backoff
// 3. Provider Chain: Fallback provider when the primary keeps failing
package genai

import (
	"context"
	"time"
)

// Provider represents an LLM provider.
type Provider string

const (
	// ProviderGemini represents Google's Gemini API (non-OpenAI-compatible).
	ProviderGemini Provider = "gemini"
	// ProviderGroq represents Groq's API (OpenAI-compatible, fast inference).
	ProviderGroq Provider = "groq"
)

// ProviderEndpoint defines the base URL for OpenAI-compatible providers.
// Gemini is not included as it uses a different SDK.
var ProviderEndpoint = map[Provider]string{
	ProviderGroq: "https://api.groq.com/openai/v1/",
}

// IsOpenAICompatible returns true if the provider uses OpenAI-compatible API.
func (p Provider) IsOpenAICompatible() bool {
	_, ok := ProviderEndpoint[p]
	return ok
}

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// Result is a completed generation.
type Result struct {
	// Text is the model's reply with surrounding whitespace trimmed.
	Text string

	// Model is the model that actually produced the reply, which may be a
	// fallback further down the candidate chain than the requested one.
	Model string
}

// Generator produces text completions. Implementations walk an ordered
// model candidate chain and return the first successful reply.
type Generator interface {
	// Generate produces a completion for the prompt. When model is
	// non-empty it is tried before the configured candidate chain.
	Generate(ctx context.Context, prompt, model string) (*Result, error)

	// ListModels returns the model names available to this provider.
	ListModels(ctx context.Context) ([]string, error)

	// IsEnabled returns true if the generator is properly initialized.
	IsEnabled() bool

	// Provider returns the provider type for metrics.
	Provider() Provider

	// Close releases any resources held by the generator.
	Close() error
}

// RetryConfig defines retry behavior for LLM API calls.
// Uses AWS-recommended Full Jitter exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial).
	MaxAttempts int

	// InitialDelay is the base delay before first retry.
	InitialDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration
}

// Default model chains. First element is primary, the rest are fallbacks
// tried in order.
var (
	// DefaultGeminiModels is the default Gemini candidate chain.
	DefaultGeminiModels = []string{
		"gemini-2.0-flash",
		"gemini-2.0-flash-001",
		"gemini-flash-latest",
	}

	// DefaultGroqModels is the default Groq candidate chain.
	DefaultGroqModels = []string{
		"llama-3.3-70b-versatile",
		"llama-3.1-8b-instant",
	}
)

// Retry configuration defaults.
const (
	DefaultMaxRetryAttempts  = 2
	DefaultInitialRetryDelay = 500 * time.Millisecond
	DefaultMaxRetryDelay     = 3 * time.Second
)

// DefaultRetryConfig returns the standard retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  DefaultMaxRetryAttempts,
		InitialDelay: DefaultInitialRetryDelay,
		MaxDelay:     DefaultMaxRetryDelay,
	}
}

// Generation parameter defaults shared by both providers.
const (
	defaultTemperature     = 0.7
	defaultTopK            = 40
	defaultTopP            = 0.95
	defaultMaxOutputTokens = 1024
)
