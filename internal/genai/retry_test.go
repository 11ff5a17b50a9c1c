package genai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attempt int
		initial time.Duration
		max     time.Duration
		// ranges, since Full Jitter is random
		maxExpected time.Duration
	}{
		{
			name:        "first attempt has no delay",
			attempt:     0,
			initial:     time.Second,
			max:         10 * time.Second,
			maxExpected: 0,
		},
		{
			name:        "second attempt random up to initial",
			attempt:     1,
			initial:     time.Second,
			max:         10 * time.Second,
			maxExpected: time.Second,
		},
		{
			name:        "third attempt doubles the cap",
			attempt:     2,
			initial:     time.Second,
			max:         10 * time.Second,
			maxExpected: 2 * time.Second,
		},
		{
			name:        "capped at max",
			attempt:     10,
			initial:     time.Second,
			max:         5 * time.Second,
			maxExpected: 5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 20 {
				delay := CalculateBackoff(tt.attempt, tt.initial, tt.max)
				assert.GreaterOrEqual(t, delay, time.Duration(0))
				assert.LessOrEqual(t, delay, tt.maxExpected)
			}
		})
	}
}

func TestSleepRespectsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)

	assert.NoError(t, Sleep(context.Background(), 0))
}

func TestWithRetrySucceedsAfterTransientError(t *testing.T) {
	t.Parallel()

	calls := 0
	err := WithRetry(context.Background(), RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}, func() error {
		calls++
		if calls < 2 {
			return errors.New("503 service unavailable")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetryStopsOnPermanentError(t *testing.T) {
	t.Parallel()

	calls := 0
	permanent := errors.New("401 unauthorized")
	err := WithRetry(context.Background(), RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}, func() error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls, "permanent errors must not be retried")
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	transient := errors.New("503 service unavailable")
	err := WithRetry(context.Background(), RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	}, func() error {
		calls++
		return transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}

func TestWithRetryCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, DefaultRetryConfig(), func() error {
		t.Fatal("fn must not run with cancelled context")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}
