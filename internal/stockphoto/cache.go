package stockphoto

import (
	"sync"
	"time"
)

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache is an in-memory map whose entries expire a fixed duration after
// they were set. Expired entries are ignored by Get and removed by Sweep.
// It is safe for concurrent use.
type TTLCache[K comparable, V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[K]cacheEntry[V]
}

// NewTTLCache creates an empty cache whose entries live for ttl.
func NewTTLCache[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{
		ttl:     ttl,
		entries: make(map[K]cacheEntry[V]),
	}
}

// Get returns the value stored for k if it has not expired at now.
func (c *TTLCache[K, V]) Get(k K, now time.Time) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[k]
	if !ok || !now.Before(e.expiresAt) {
		var zero V

		return zero, false
	}

	return e.value, true
}

// Set stores v for k, replacing any previous value and restarting its TTL.
func (c *TTLCache[K, V]) Set(k K, v V, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[k] = cacheEntry[V]{value: v, expiresAt: now.Add(c.ttl)}
}

// Sweep removes entries expired at now and returns how many were removed.
func (c *TTLCache[K, V]) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored entries, expired or not.
func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
