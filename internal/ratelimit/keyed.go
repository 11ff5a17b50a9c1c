package ratelimit

import (
	"sync"
	"time"

	"github.com/bucourseplanner/backend-go/internal/metrics"
)

// KeyedConfig configures a KeyedLimiter instance.
type KeyedConfig struct {
	// Name identifies this limiter in metrics (e.g., "ai").
	Name string

	// Token bucket settings.
	Burst      float64 // Maximum tokens (burst capacity)
	RefillRate float64 // Tokens refilled per second

	// Optional rolling 24h request cap (0 = disabled).
	DailyLimit int

	// How often inactive per-key limiters are removed.
	CleanupPeriod time.Duration

	// Optional metrics reporter.
	Metrics *metrics.Metrics
}

// KeyedLimiter tracks rate limits per key, typically a client IP.
// Each key gets its own token bucket plus an optional sliding window daily
// counter; inactive buckets are cleaned up in the background.
type KeyedLimiter struct {
	mu      sync.RWMutex
	entries map[string]*keyedEntry
	config  KeyedConfig
	stopCh  chan struct{}
}

// keyedEntry holds per-key state. The mutex makes the token bucket and
// daily counter check-then-consume atomic across both layers.
type keyedEntry struct {
	mu      sync.Mutex
	limiter *Limiter
	daily   *SlidingWindowCounter
}

// NewKeyedLimiter creates a new per-key rate limiter.
// Call Stop() when done to release the cleanup goroutine.
func NewKeyedLimiter(cfg KeyedConfig) *KeyedLimiter {
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = 5 * time.Minute
	}

	kl := &KeyedLimiter{
		entries: make(map[string]*keyedEntry),
		config:  cfg,
		stopCh:  make(chan struct{}),
	}

	go kl.cleanupLoop()

	return kl
}

// Allow checks if a request for the given key is allowed.
// Both the token bucket and the daily quota (when configured) must pass.
func (kl *KeyedLimiter) Allow(key string) bool {
	if key == "" {
		return true
	}

	entry := kl.getOrCreateEntry(key)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.daily != nil && !entry.daily.Check() {
		kl.recordDrop()
		return false
	}

	if !entry.limiter.Check() {
		kl.recordDrop()
		return false
	}

	if entry.daily != nil {
		entry.daily.Consume()
	}
	entry.limiter.Consume()

	return true
}

func (kl *KeyedLimiter) recordDrop() {
	if kl.config.Metrics != nil {
		kl.config.Metrics.RecordRateLimiterDrop(kl.config.Name)
	}
}

// getOrCreateEntry returns the entry for a key, creating it if needed.
func (kl *KeyedLimiter) getOrCreateEntry(key string) *keyedEntry {
	kl.mu.RLock()
	entry, exists := kl.entries[key]
	kl.mu.RUnlock()

	if exists {
		return entry
	}

	kl.mu.Lock()
	defer kl.mu.Unlock()

	// Double-check after acquiring write lock
	entry, exists = kl.entries[key]
	if exists {
		return entry
	}

	entry = &keyedEntry{
		limiter: New(kl.config.Burst, kl.config.RefillRate),
		daily:   NewSlidingWindowCounter(kl.config.DailyLimit, 24*time.Hour),
	}
	kl.entries[key] = entry
	return entry
}

// GetAvailable returns the number of available tokens for a key.
// Returns Burst if the key has no limiter yet.
func (kl *KeyedLimiter) GetAvailable(key string) float64 {
	if key == "" {
		return kl.config.Burst
	}

	kl.mu.RLock()
	entry, exists := kl.entries[key]
	kl.mu.RUnlock()

	if !exists {
		return kl.config.Burst
	}

	return entry.limiter.Available()
}

// GetDailyRemaining returns the remaining daily quota for a key.
// Returns -1 if the daily limit is disabled.
func (kl *KeyedLimiter) GetDailyRemaining(key string) int {
	if kl.config.DailyLimit <= 0 {
		return -1
	}

	kl.mu.RLock()
	entry, exists := kl.entries[key]
	kl.mu.RUnlock()

	if !exists {
		return kl.config.DailyLimit
	}

	return entry.daily.GetRemaining()
}

// GetActiveCount returns the number of tracked keys.
func (kl *KeyedLimiter) GetActiveCount() int {
	kl.mu.RLock()
	defer kl.mu.RUnlock()
	return len(kl.entries)
}

// cleanupLoop periodically removes inactive limiters.
func (kl *KeyedLimiter) cleanupLoop() {
	ticker := time.NewTicker(kl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-kl.stopCh:
			return
		case <-ticker.C:
			kl.mu.Lock()
			for key, entry := range kl.entries {
				// A full bucket means the key has been idle long enough.
				if entry.limiter.IsFull() {
					delete(kl.entries, key)
				}
			}
			activeCount := len(kl.entries)
			kl.mu.Unlock()

			if kl.config.Metrics != nil {
				kl.config.Metrics.SetRateLimiterClients(kl.config.Name, activeCount)
			}
		}
	}
}

// Stop gracefully stops the cleanup goroutine.
// Safe to call multiple times.
func (kl *KeyedLimiter) Stop() {
	select {
	case <-kl.stopCh:
		// Already stopped
	default:
		close(kl.stopCh)
	}
}
