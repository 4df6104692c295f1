// Package cache is a small thread-safe in-memory cache with TTL support.
package cache

import (
	"sync"
	"time"
)

// Entry is a cached item with expiration
type Entry[V any] struct {
	Value      V
	Expiration time.Time
}

func (e *Entry[V]) expired(now time.Time) bool {
	if e.Expiration.IsZero() {
		return false // Never expires
	}
	return now.After(e.Expiration)
}

// Cache maps keys to values that expire after a TTL
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*Entry[V]
	maxItems int
	ttl      time.Duration
	now      func() time.Time

	hits   int64
	misses int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
	TTL      time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 1024,
		TTL:      5 * time.Minute,
	}
}

// New creates a cache. Non-positive settings fall back to the defaults.
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	def := DefaultConfig()
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = def.MaxItems
	}
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	return &Cache[K, V]{
		items:    make(map[K]*Entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

// Get retrieves a value from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if ok && entry.expired(c.now()) {
		delete(c.items, key)
		ok = false
	}
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return entry.Value, true
}

// Set stores a value with the default TTL
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL; zero never expires
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.prune(now)
		if len(c.items) >= c.maxItems {
			c.evictOldest()
		}
	}

	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	c.items[key] = &Entry[V]{Value: value, Expiration: exp}
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*Entry[V])
}

// Size returns the number of items, expired ones included
func (c *Cache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns hit and miss counts and the hit rate in percent
func (c *Cache[K, V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hits = c.hits
	misses = c.misses
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// GetOrSet returns the cached value or computes and stores it.
// Errors are not cached.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}
	val, err := fn()
	if err != nil {
		return val, err
	}
	c.Set(key, val)
	return val, nil
}

// prune removes expired entries (lock held)
func (c *Cache[K, V]) prune(now time.Time) {
	for key, entry := range c.items {
		if entry.expired(now) {
			delete(c.items, key)
		}
	}
}

// evictOldest removes the entry expiring first (lock held)
func (c *Cache[K, V]) evictOldest() {
	var (
		oldestKey  K
		oldestTime time.Time
		found      bool
	)
	for key, entry := range c.items {
		if !found || entry.Expiration.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.Expiration
			found = true
		}
	}
	if found {
		delete(c.items, oldestKey)
	}
}
