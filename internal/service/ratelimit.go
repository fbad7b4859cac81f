package service

import (
	"sync"
	"time"
)

// TokenBucket is an in-memory per-key rate limiter guarding the auth
// endpoints. It is safe for concurrent use. Stale buckets are swept lazily
// during Allow calls, so the limiter needs no background goroutine.
type TokenBucket struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	rate      float64 // tokens added per second
	capacity  float64 // maximum tokens
	lastSweep time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

const (
	bucketTTL     = 10 * time.Minute
	sweepInterval = 5 * time.Minute
)

// NewTokenBucket creates a rate limiter that allows bursts up to capacity
// per key, refilling at rate tokens per second.
func NewTokenBucket(rate, capacity float64) *TokenBucket {
	return &TokenBucket{
		buckets:   make(map[string]*bucket),
		rate:      rate,
		capacity:  capacity,
		lastSweep: time.Now(),
	}
}

// Allow reports whether the given key may proceed under the rate limit.
// Each call consumes one token; a new key starts with a full bucket.
func (tb *TokenBucket) Allow(key string) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	if now.Sub(tb.lastSweep) >= sweepInterval {
		tb.sweep(now)
	}

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, last: now}
		tb.buckets[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	b.tokens = min(b.tokens+elapsed*tb.rate, tb.capacity)
	b.last = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// sweep removes buckets not touched within the TTL. Caller holds the lock.
func (tb *TokenBucket) sweep(now time.Time) {
	cutoff := now.Add(-bucketTTL)
	for key, b := range tb.buckets {
		if b.last.Before(cutoff) {
			delete(tb.buckets, key)
		}
	}
	tb.lastSweep = now
}
