// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains retry logic with exponential backoff and jitter.
package genai

import (
	"context"
	"crypto/rand"
	"math"
	"math/big"
	"time"
)

// CalculateBackoff calculates the delay before the next retry attempt.
// Uses AWS-recommended Full Jitter algorithm:
//
//	delay = random(0, min(maxDelay, initialDelay * 2^attempt))
//
// Reference: https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter/
func CalculateBackoff(attempt int, initial, max time.Duration) time.Duration {
	if attempt <= 0 {
		return 0 // No delay on first attempt
	}

	exp := math.Pow(2, float64(attempt-1))
	delay := time.Duration(float64(initial) * exp)

	if delay > max {
		delay = max
	}
	if delay <= 0 {
		return 0
	}

	// crypto/rand for uniform distribution without bias
	maxNs := big.NewInt(int64(delay))
	jitterBig, err := rand.Int(rand.Reader, maxNs)
	if err != nil {
		return delay / 2
	}

	return time.Duration(jitterBig.Int64())
}

// Sleep waits for the specified duration, respecting context cancellation.
// Returns ctx.Err() if context is cancelled during sleep.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WithRetry executes fn with retry on transient errors, up to
// cfg.MaxAttempts times. Permanent errors short-circuit immediately.
// Returns the last error if all attempts fail, or nil on success.
func WithRetry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	var lastErr error

	for attempt := range cfg.MaxAttempts {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if ClassifyError(err) != ActionRetry {
			return err
		}

		// Don't sleep after the last attempt
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		delay := CalculateBackoff(attempt+1, cfg.InitialDelay, cfg.MaxDelay)
		if err := Sleep(ctx, delay); err != nil {
			return err
		}
	}

	return lastErr
}
