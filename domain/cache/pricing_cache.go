package cache

import "time"

// PricingCache memoizes path pricing results with a short time-to-live to
// absorb bursts of UI-driven repricing without hammering the quoting
// oracle. It is an explicitly constructed, injectable object owned by
// whichever component composes the routing engine; there is no implicit
// package-level singleton.
type PricingCache struct {
	cache *Cache
	ttl   time.Duration
}

// NewPricingCache creates a new pricing cache with the given entry
// time-to-live and entry-count ceiling.
func NewPricingCache(ttl time.Duration, maxEntries int) *PricingCache {
	return &PricingCache{
		cache: NewWithCeiling(maxEntries),
		ttl:   ttl,
	}
}

// GetOrCompute returns the cached value for key if present and fresh.
// Otherwise it invokes compute, stores the result with the current
// timestamp, and returns it. A failing compute propagates its error and
// stores nothing, so a subsequent call retries against the oracle rather
// than returning an empty result forever.
//
// Note that concurrent misses on the same key may invoke compute more
// than once; the oracle call is read-only so the duplicate work is
// accepted in exchange for not holding the cache lock across a network
// round-trip.
func (p *PricingCache) GetOrCompute(key string, compute func() (interface{}, error)) (interface{}, error) {
	if value, ok := p.cache.Get(key); ok {
		return value, nil
	}

	value, err := compute()
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, value, p.ttl)

	return value, nil
}

// Get retrieves the fresh value associated with a key, if any.
func (p *PricingCache) Get(key string) (interface{}, bool) {
	return p.cache.Get(key)
}

// Clear removes all entries. Exposed for forced invalidation after a
// known reserve-changing event.
func (p *PricingCache) Clear() {
	p.cache.Clear()
}

// Len returns the number of stored entries, including not yet swept
// expired ones.
func (p *PricingCache) Len() int {
	return p.cache.Len()
}
