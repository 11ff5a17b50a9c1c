// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains the Gemini implementation of the Generator interface.
package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiGenerator produces text completions through the Gemini API,
// walking a model candidate chain until one succeeds.
type geminiGenerator struct {
	client *genai.Client
	models []string
}

// newGeminiGenerator creates a Gemini-backed generator.
// Returns nil if apiKey is empty (provider disabled).
func newGeminiGenerator(ctx context.Context, apiKey string, models []string) (*geminiGenerator, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: provider disabled when no API key
	}

	if len(models) == 0 {
		models = DefaultGeminiModels
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiGenerator{
		client: client,
		models: models,
	}, nil
}

// Generate tries each candidate model in order and returns the first
// non-empty reply. A caller-requested model is tried before the chain.
func (g *geminiGenerator) Generate(ctx context.Context, prompt, model string) (*Result, error) {
	if g == nil || g.client == nil {
		return nil, ErrProviderDisabled
	}

	candidates := g.models
	if model != "" {
		candidates = append([]string{model}, g.models...)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](defaultTemperature),
		TopK:            genai.Ptr[float32](defaultTopK),
		TopP:            genai.Ptr[float32](defaultTopP),
		MaxOutputTokens: defaultMaxOutputTokens,
	}

	var lastErr error
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		start := time.Now()
		resp, err := g.client.Models.GenerateContent(ctx, candidate, genai.Text(prompt), config)
		duration := time.Since(start)

		if err != nil {
			lastErr = err
			slog.WarnContext(ctx, "gemini generation failed",
				"model", candidate,
				"duration_ms", duration.Milliseconds(),
				"error", err)

			// A permanent error (bad key, blocked prompt) will fail on
			// every model in the chain too.
			if IsPermanent(err) {
				return nil, WrapError(err, ProviderGemini, 0)
			}
			continue
		}

		text := extractText(resp)
		if text == "" {
			lastErr = fmt.Errorf("model %s returned no text", candidate)
			continue
		}

		if resp.UsageMetadata != nil {
			slog.DebugContext(ctx, "gemini generation completed",
				"model", candidate,
				"input_tokens", resp.UsageMetadata.PromptTokenCount,
				"output_tokens", resp.UsageMetadata.CandidatesTokenCount,
				"duration_ms", duration.Milliseconds())
		}

		return &Result{Text: text, Model: candidate}, nil
	}

	return nil, WrapError(fmt.Errorf("all gemini models failed: %w", lastErr), ProviderGemini, 0)
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// ListModels returns the model names available to this API key.
func (g *geminiGenerator) ListModels(ctx context.Context) ([]string, error) {
	if g == nil || g.client == nil {
		return nil, ErrProviderDisabled
	}

	var names []string
	for model, err := range g.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		names = append(names, model.Name)
	}
	return names, nil
}

// IsEnabled returns true if the generator is properly initialized.
func (g *geminiGenerator) IsEnabled() bool {
	return g != nil && g.client != nil
}

// Provider returns the provider type for this generator.
func (g *geminiGenerator) Provider() Provider {
	return ProviderGemini
}

// Close releases resources.
// Safe to call on nil receiver.
func (g *geminiGenerator) Close() error {
	// genai.Client does not require explicit cleanup in current SDK version
	return nil
}
