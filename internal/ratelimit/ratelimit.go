// Package ratelimit provides token bucket rate limiting with optional
// per-key tracking and rolling daily quotas. It throttles the AI endpoints
// per client IP so a single client cannot exhaust the upstream LLM quota.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter implements a token bucket rate limiter.
// Tokens are added at refillRate per second up to maxTokens; each request
// consumes one token. Safe for concurrent use.
type Limiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// New creates a token bucket limiter with the given burst capacity and
// refill rate (tokens per second).
func New(maxTokens, refillRate float64) *Limiter {
	return &Limiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// refill adds tokens based on elapsed time since last refill.
// Must be called with mu held.
func (l *Limiter) refill() {
	now := time.Now()
	elapsed := now.Sub(l.lastRefill).Seconds()

	l.tokens += elapsed * l.refillRate
	if l.tokens > l.maxTokens {
		l.tokens = l.maxTokens
	}
	l.lastRefill = now
}

// Allow checks if a request is allowed and consumes a token if so.
// Non-blocking. Use Check() + Consume() under an external lock when the
// decision spans multiple limiters.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()

	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		return true
	}

	return false
}

// Check returns true if a request would be allowed without consuming.
// The caller must hold an external lock covering both Check() and Consume()
// when combining limiters, otherwise the pair is racy.
func (l *Limiter) Check() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return l.tokens >= 1.0
}

// Consume decrements a token (assumes Check() already passed).
func (l *Limiter) Consume() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	if l.tokens >= 1.0 {
		l.tokens -= 1.0
	}
}

// Available returns the current number of available tokens.
func (l *Limiter) Available() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return l.tokens
}

// IsFull reports whether the bucket is at capacity, which marks the
// limiter as inactive and eligible for cleanup.
func (l *Limiter) IsFull() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	return l.tokens >= l.maxTokens
}

// Reset restores the limiter to full capacity.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.tokens = l.maxTokens
	l.lastRefill = time.Now()
}
