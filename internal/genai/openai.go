// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains the unified OpenAI-compatible implementation of the
// Generator interface, used for Groq via a custom BaseURL.
package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openaiGenerator produces text completions through any OpenAI-compatible
// API. It implements the Generator interface.
type openaiGenerator struct {
	client   openai.Client
	models   []string
	provider Provider
}

// newOpenAIGenerator creates an OpenAI-compatible generator.
// Returns nil if apiKey is empty (provider disabled).
func newOpenAIGenerator(provider Provider, apiKey string, models []string) (*openaiGenerator, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: provider disabled when no API key
	}

	baseURL, ok := ProviderEndpoint[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported OpenAI-compatible provider: %s", provider)
	}

	if len(models) == 0 {
		switch provider {
		case ProviderGroq:
			models = DefaultGroqModels
		default:
			return nil, fmt.Errorf("no default models for provider: %s", provider)
		}
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &openaiGenerator{
		client:   client,
		models:   models,
		provider: provider,
	}, nil
}

// Generate tries each candidate model in order and returns the first
// non-empty reply. A caller-requested model is tried before the chain.
func (g *openaiGenerator) Generate(ctx context.Context, prompt, model string) (*Result, error) {
	if g == nil {
		return nil, ErrProviderDisabled
	}

	candidates := g.models
	if model != "" {
		candidates = append([]string{model}, g.models...)
	}

	var lastErr error
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		params := openai.ChatCompletionNewParams{
			Model: candidate,
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Temperature: openai.Float(defaultTemperature),
			TopP:        openai.Float(defaultTopP),
			MaxTokens:   openai.Int(defaultMaxOutputTokens),
		}

		start := time.Now()
		resp, err := g.client.Chat.Completions.New(ctx, params)
		duration := time.Since(start)

		if err != nil {
			lastErr = err
			slog.WarnContext(ctx, "chat completion failed",
				"provider", g.provider,
				"model", candidate,
				"duration_ms", duration.Milliseconds(),
				"error", err)

			if IsPermanent(err) {
				return nil, WrapError(err, g.provider, 0)
			}
			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("model %s returned no choices", candidate)
			continue
		}

		text := strings.TrimSpace(resp.Choices[0].Message.Content)
		if text == "" {
			lastErr = fmt.Errorf("model %s returned no text", candidate)
			continue
		}

		if resp.Usage.TotalTokens > 0 {
			slog.DebugContext(ctx, "chat completion finished",
				"provider", g.provider,
				"model", candidate,
				"input_tokens", resp.Usage.PromptTokens,
				"output_tokens", resp.Usage.CompletionTokens,
				"duration_ms", duration.Milliseconds())
		}

		return &Result{Text: text, Model: candidate}, nil
	}

	return nil, WrapError(fmt.Errorf("all %s models failed: %w", g.provider, lastErr), g.provider, 0)
}

// ListModels returns the model names available to this provider.
func (g *openaiGenerator) ListModels(ctx context.Context) ([]string, error) {
	if g == nil {
		return nil, ErrProviderDisabled
	}

	page, err := g.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}

	names := make([]string, 0, len(page.Data))
	for _, model := range page.Data {
		names = append(names, model.ID)
	}
	return names, nil
}

// IsEnabled returns true if the generator is properly initialized.
func (g *openaiGenerator) IsEnabled() bool {
	return g != nil
}

// Provider returns the provider type for this generator.
func (g *openaiGenerator) Provider() Provider {
	if g == nil {
		return ""
	}
	return g.provider
}

// Close releases resources.
// Safe to call on nil receiver.
func (g *openaiGenerator) Close() error {
	// openai-go client doesn't require cleanup
	return nil
}
