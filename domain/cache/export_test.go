package cache

import "time"

// WithClock overrides the cache clock. Tests only.
func (c *Cache) WithClock(clock func() time.Time) {
	c.clock = clock
}

// WithClock overrides the underlying cache clock. Tests only.
func (p *PricingCache) WithClock(clock func() time.Time) {
	p.cache.clock = clock
}
