package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindowCounter implements a sliding window rate limiter using two
// fixed windows and weighted averaging:
//
//	effectiveCount = currCount + prevCount * (remaining fraction of window)
//
// This smooths limits across window boundaries in O(1) space, which matters
// for the 24h daily AI quota where a naive fixed window would reset at an
// arbitrary moment.
type SlidingWindowCounter struct {
	mu              sync.Mutex
	currCount       int
	prevCount       int
	currWindowStart time.Time
	windowDuration  time.Duration
	maxRequests     int
}

// NewSlidingWindowCounter creates a sliding window counter.
// Returns nil if maxRequests <= 0, which disables the counter; all methods
// are safe to call on a nil receiver.
func NewSlidingWindowCounter(maxRequests int, windowDuration time.Duration) *SlidingWindowCounter {
	if maxRequests <= 0 {
		return nil
	}
	return &SlidingWindowCounter{
		currWindowStart: time.Now(),
		windowDuration:  windowDuration,
		maxRequests:     maxRequests,
	}
}

// Allow checks if a request is allowed and consumes a slot if so.
func (swc *SlidingWindowCounter) Allow() bool {
	if swc == nil {
		return true
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()

	if swc.calculateWeightedCount() >= float64(swc.maxRequests) {
		return false
	}

	swc.currCount++
	return true
}

// Check returns true if a request would be allowed without consuming.
// Pair with Consume() under an external lock for multi-layer checks.
func (swc *SlidingWindowCounter) Check() bool {
	if swc == nil {
		return true
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()
	return swc.calculateWeightedCount() < float64(swc.maxRequests)
}

// Consume increments the counter (assumes Check() already passed).
func (swc *SlidingWindowCounter) Consume() {
	if swc == nil {
		return
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()

	if swc.calculateWeightedCount() < float64(swc.maxRequests) {
		swc.currCount++
	}
}

// maybeRotateWindow rotates to a new window if the current one has expired.
// Must be called with mu held.
func (swc *SlidingWindowCounter) maybeRotateWindow() {
	elapsed := time.Since(swc.currWindowStart)
	if elapsed < swc.windowDuration {
		return
	}

	windowsPassed := int(elapsed / swc.windowDuration)
	if windowsPassed == 1 {
		swc.prevCount = swc.currCount
	} else {
		// More than one full window passed, previous data is stale.
		swc.prevCount = 0
	}

	swc.currCount = 0
	swc.currWindowStart = swc.currWindowStart.Add(time.Duration(windowsPassed) * swc.windowDuration)
}

// calculateWeightedCount returns the weighted count for the sliding window.
// Must be called with mu held.
func (swc *SlidingWindowCounter) calculateWeightedCount() float64 {
	elapsed := time.Since(swc.currWindowStart)

	overlapRatio := float64(swc.windowDuration-elapsed) / float64(swc.windowDuration)
	if overlapRatio < 0 {
		overlapRatio = 0
	}
	if overlapRatio > 1 {
		overlapRatio = 1
	}

	return float64(swc.currCount) + float64(swc.prevCount)*overlapRatio
}

// GetRemaining returns the approximate remaining quota, or -1 if disabled.
func (swc *SlidingWindowCounter) GetRemaining() int {
	if swc == nil {
		return -1
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()
	remaining := float64(swc.maxRequests) - swc.calculateWeightedCount()
	if remaining < 0 {
		return 0
	}
	return int(remaining)
}

// IsFull returns true if the quota is currently exhausted.
func (swc *SlidingWindowCounter) IsFull() bool {
	if swc == nil {
		return false
	}

	swc.mu.Lock()
	defer swc.mu.Unlock()

	swc.maybeRotateWindow()
	return swc.calculateWeightedCount() >= float64(swc.maxRequests)
}
