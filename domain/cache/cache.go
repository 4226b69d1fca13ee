package cache

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     interface{}
	createdAt time.Time
	ttl       time.Duration
}

// expired returns true if the entry has outlived its time-to-live.
// A zero ttl means the entry never expires.
func (e cacheEntry) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.createdAt) >= e.ttl
}

// Cache is a simple TTL cache keyed by string. Entries past their
// time-to-live are treated as absent on read and swept opportunistically
// on insert once the entry count exceeds the configured ceiling. This is
// lazy, best-effort cleanup, not a strict LRU.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry

	// maxEntries is the entry-count ceiling triggering a sweep on insert.
	// Zero disables the sweep.
	maxEntries int

	// clock is overridable in tests.
	clock func() time.Time
}

// New creates a new unbounded cache.
func New() *Cache {
	return NewWithCeiling(0)
}

// NewWithCeiling creates a new cache sweeping expired entries whenever an
// insert pushes the entry count past maxEntries.
func NewWithCeiling(maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[string]cacheEntry),
		maxEntries: maxEntries,
		clock:      time.Now,
	}
}

// Set adds an item to the cache with a specified key, value and
// time-to-live. A zero ttl stores the value without expiration.
func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	now := c.clock()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		createdAt: now,
		ttl:       ttl,
	}

	if c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		c.sweepExpired(now)
	}
}

// Get retrieves the value associated with a key from the cache.
// Returns false if the key does not exist or the entry has expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	now := c.clock()

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || entry.expired(now) {
		return nil, false
	}

	return entry.value, true
}

// Delete removes an item from the cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear removes all items from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of entries in the cache, including entries that
// have expired but have not been swept yet.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// sweepExpired removes all expired entries. Caller must hold the write lock.
func (c *Cache) sweepExpired(now time.Time) {
	for key, entry := range c.entries {
		if entry.expired(now) {
			delete(c.entries, key)
		}
	}
}
