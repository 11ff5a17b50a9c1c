// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains the fallback wrapper for cross-provider failover.
package genai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bucourseplanner/backend-go/internal/metrics"
)

// FallbackGenerator wraps a primary and fallback Generator.
// It implements three-layer fallback:
// 1. Model chain inside each provider
// 2. Retry with backoff on the primary provider
// 3. Provider failover (primary → fallback)
type FallbackGenerator struct {
	primary     Generator
	fallback    Generator
	retryConfig RetryConfig
	metrics     *metrics.Metrics
}

// NewFallbackGenerator creates a fallback-enabled generator.
// If fallback is nil, only retry logic is applied to the primary provider.
func NewFallbackGenerator(primary, fallback Generator, cfg RetryConfig, m *metrics.Metrics) *FallbackGenerator {
	return &FallbackGenerator{
		primary:     primary,
		fallback:    fallback,
		retryConfig: cfg,
		metrics:     m,
	}
}

// Generate tries the primary generator first with retry, then fails over.
func (f *FallbackGenerator) Generate(ctx context.Context, prompt, model string) (*Result, error) {
	if f == nil || f.primary == nil || !f.primary.IsEnabled() {
		return f.generateFallbackOnly(ctx, prompt, model)
	}

	start := time.Now()
	provider := f.primary.Provider()

	result, err := f.generateWithRetry(ctx, f.primary, prompt, model)
	if err == nil {
		f.record(provider, "success", start)
		return result, nil
	}

	action := ClassifyError(err)
	slog.WarnContext(ctx, "primary generator failed",
		"provider", provider,
		"error", err,
		"action", action.String(),
		"duration", time.Since(start))

	if action == ActionFail || f.fallback == nil || !f.fallback.IsEnabled() {
		f.record(provider, "error", start)
		return nil, err
	}

	fallbackProvider := f.fallback.Provider()
	slog.InfoContext(ctx, "falling back to secondary provider",
		"from", provider,
		"to", fallbackProvider)
	if f.metrics != nil {
		f.metrics.RecordLLMFallback(provider.String(), fallbackProvider.String())
	}

	fallbackStart := time.Now()
	result, err = f.generateWithRetry(ctx, f.fallback, prompt, model)
	if err == nil {
		f.record(fallbackProvider, "success", fallbackStart)
		return result, nil
	}

	f.record(fallbackProvider, "error", fallbackStart)
	slog.ErrorContext(ctx, "all generators failed",
		"primary", provider,
		"fallback", fallbackProvider,
		"error", err)

	return nil, fmt.Errorf("all providers failed: %w", err)
}

// generateFallbackOnly handles the degenerate case of a disabled primary.
func (f *FallbackGenerator) generateFallbackOnly(ctx context.Context, prompt, model string) (*Result, error) {
	if f == nil || f.fallback == nil || !f.fallback.IsEnabled() {
		return nil, ErrProviderDisabled
	}

	start := time.Now()
	provider := f.fallback.Provider()

	result, err := f.generateWithRetry(ctx, f.fallback, prompt, model)
	if err != nil {
		f.record(provider, "error", start)
		return nil, err
	}
	f.record(provider, "success", start)
	return result, nil
}

// generateWithRetry attempts generation with retry logic.
func (f *FallbackGenerator) generateWithRetry(ctx context.Context, gen Generator, prompt, model string) (*Result, error) {
	var result *Result

	err := WithRetry(ctx, f.retryConfig, func() error {
		r, err := gen.Generate(ctx, prompt, model)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListModels returns the primary provider's models, falling back to the
// secondary provider when the primary is unavailable.
func (f *FallbackGenerator) ListModels(ctx context.Context) ([]string, error) {
	if f == nil {
		return nil, ErrProviderDisabled
	}

	if f.primary != nil && f.primary.IsEnabled() {
		models, err := f.primary.ListModels(ctx)
		if err == nil {
			return models, nil
		}
		slog.WarnContext(ctx, "primary model listing failed",
			"provider", f.primary.Provider(),
			"error", err)
	}

	if f.fallback != nil && f.fallback.IsEnabled() {
		return f.fallback.ListModels(ctx)
	}

	return nil, ErrProviderDisabled
}

// IsEnabled returns true if at least one provider is configured.
func (f *FallbackGenerator) IsEnabled() bool {
	if f == nil {
		return false
	}
	return (f.primary != nil && f.primary.IsEnabled()) ||
		(f.fallback != nil && f.fallback.IsEnabled())
}

// Provider returns the primary provider, or the fallback's when the
// primary is disabled.
func (f *FallbackGenerator) Provider() Provider {
	if f == nil {
		return ""
	}
	if f.primary != nil && f.primary.IsEnabled() {
		return f.primary.Provider()
	}
	if f.fallback != nil && f.fallback.IsEnabled() {
		return f.fallback.Provider()
	}
	return ""
}

// Close releases both providers' resources.
func (f *FallbackGenerator) Close() error {
	if f == nil {
		return nil
	}
	if f.primary != nil {
		_ = f.primary.Close()
	}
	if f.fallback != nil {
		_ = f.fallback.Close()
	}
	return nil
}

func (f *FallbackGenerator) record(provider Provider, status string, start time.Time) {
	if f.metrics != nil {
		f.metrics.RecordLLMRequest(provider.String(), status, time.Since(start).Seconds())
	}
}
