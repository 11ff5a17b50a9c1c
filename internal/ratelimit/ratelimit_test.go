package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterAllow(t *testing.T) {
	t.Parallel()

	limiter := New(3, 1)

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow(), "bucket should be empty after burst")
}

func TestLimiterRefill(t *testing.T) {
	t.Parallel()

	// 100 tokens/sec so the refill is observable without a long sleep.
	limiter := New(1, 100)

	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.Allow(), "token should refill after waiting")
}

func TestLimiterCheckDoesNotConsume(t *testing.T) {
	t.Parallel()

	limiter := New(1, 0.001)

	assert.True(t, limiter.Check())
	assert.True(t, limiter.Check(), "Check must not consume tokens")

	limiter.Consume()
	assert.False(t, limiter.Check())
}

func TestLimiterIsFullAndReset(t *testing.T) {
	t.Parallel()

	limiter := New(2, 0.001)
	assert.True(t, limiter.IsFull())

	limiter.Allow()
	assert.False(t, limiter.IsFull())

	limiter.Reset()
	assert.True(t, limiter.IsFull())
	assert.InDelta(t, 2.0, limiter.Available(), 0.01)
}

func TestLimiterConcurrentAccess(t *testing.T) {
	t.Parallel()

	limiter := New(100, 0.001)

	done := make(chan int, 10)
	for range 10 {
		go func() {
			allowed := 0
			for range 20 {
				if limiter.Allow() {
					allowed++
				}
			}
			done <- allowed
		}()
	}

	total := 0
	for range 10 {
		total += <-done
	}

	// 200 attempts against a burst of 100; the refill rate is negligible.
	assert.LessOrEqual(t, total, 101)
	assert.GreaterOrEqual(t, total, 100)
}
