// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains the factory wiring providers into a FallbackGenerator.
package genai

import (
	"context"
	"fmt"

	"github.com/bucourseplanner/backend-go/internal/metrics"
)

// ProviderConfig holds configuration for a single LLM provider.
type ProviderConfig struct {
	// APIKey is the API key for the provider. Empty disables the provider.
	APIKey string

	// Models is the ordered candidate chain. Empty uses provider defaults.
	Models []string
}

// Config holds configuration for the generator factory.
type Config struct {
	// Primary is the provider tried first. Default: ProviderGemini.
	Primary Provider

	// Fallback is the provider tried when the primary fails.
	// Empty disables provider failover.
	Fallback Provider

	// Gemini configuration.
	Gemini ProviderConfig

	// Groq configuration (OpenAI-compatible).
	Groq ProviderConfig

	// Retry controls per-provider retry behavior. Zero value uses defaults.
	Retry RetryConfig
}

// HasAnyProvider returns true if at least one provider has an API key.
func (c *Config) HasAnyProvider() bool {
	return c.Gemini.APIKey != "" || c.Groq.APIKey != ""
}

// New builds a FallbackGenerator from the configuration.
// Returns a disabled generator (IsEnabled() == false) when no provider has
// an API key, so callers can construct unconditionally and degrade at
// request time.
func New(ctx context.Context, cfg Config, m *metrics.Metrics) (*FallbackGenerator, error) {
	if cfg.Primary == "" {
		cfg.Primary = ProviderGemini
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = DefaultRetryConfig()
	}

	primary, err := newProvider(ctx, cfg, cfg.Primary)
	if err != nil {
		return nil, fmt.Errorf("create primary provider %s: %w", cfg.Primary, err)
	}

	var fallback Generator
	if cfg.Fallback != "" && cfg.Fallback != cfg.Primary {
		fallback, err = newProvider(ctx, cfg, cfg.Fallback)
		if err != nil {
			return nil, fmt.Errorf("create fallback provider %s: %w", cfg.Fallback, err)
		}
	}

	return NewFallbackGenerator(primary, fallback, cfg.Retry, m), nil
}

// newProvider constructs one provider, or a nil Generator when it has no key.
func newProvider(ctx context.Context, cfg Config, p Provider) (Generator, error) {
	switch p {
	case ProviderGemini:
		g, err := newGeminiGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Models)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, nil
		}
		return g, nil
	case ProviderGroq:
		g, err := newOpenAIGenerator(p, cfg.Groq.APIKey, cfg.Groq.Models)
		if err != nil {
			return nil, err
		}
		if g == nil {
			return nil, nil
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", p)
	}
}
