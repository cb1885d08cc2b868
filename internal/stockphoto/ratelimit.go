package stockphoto

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// refillWindow is the period over which an empty bucket refills completely.
const refillWindow = time.Hour

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per key (client IP). Each bucket holds
// capacity tokens and refills linearly so an empty bucket is full again after
// one hour. It is safe for concurrent use.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	every    rate.Limit
	buckets  map[string]*bucket
}

// NewRateLimiter returns a limiter with the given per-key capacity.
// A capacity <= 0 disables limiting.
func NewRateLimiter(capacity int) *RateLimiter {
	return &RateLimiter{
		capacity: capacity,
		every:    rate.Limit(float64(capacity) / refillWindow.Seconds()),
		buckets:  make(map[string]*bucket),
	}
}

// Allow consumes one token for key at now. When the bucket is empty it
// reports false and how long until the next token is available.
func (l *RateLimiter) Allow(key string, now time.Time) (bool, time.Duration) {
	if l.capacity <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.every, l.capacity)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}

	// time to accumulate the missing fraction of a token, rounded to the millisecond
	missing := 1 - b.limiter.TokensAt(now)
	wait := time.Duration(math.Round(missing/float64(l.every)*1000)) * time.Millisecond

	return false, wait
}

// Sweep forgets buckets not used for a full refill window. Such buckets are
// full again, so dropping them does not change any client's allowance.
func (l *RateLimiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) >= refillWindow {
			delete(l.buckets, k)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked keys.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.buckets)
}
