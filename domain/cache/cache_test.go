package cache_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/charisma-labs/srs/domain/cache"
)

const (
	defaultTTL        = 30 * time.Second
	defaultMaxEntries = 100
)

// fakeClock is a manually advanced clock for deterministic expiry tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestCache_SetGet(t *testing.T) {
	c := cache.New()

	c.Set("key", "value", defaultTTL)

	value, ok := c.Get("key")
	require.True(t, ok)
	require.Equal(t, "value", value)

	_, ok = c.Get("other")
	require.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	clock := newFakeClock()

	c := cache.New()
	c.WithClock(clock.Now)

	c.Set("key", "value", defaultTTL)

	// Just before the TTL the entry is still served.
	clock.Advance(defaultTTL - time.Millisecond)
	_, ok := c.Get("key")
	require.True(t, ok)

	// At the TTL boundary the entry is gone.
	clock.Advance(time.Millisecond)
	_, ok = c.Get("key")
	require.False(t, ok)
}

func TestCache_NoExpiration(t *testing.T) {
	clock := newFakeClock()

	c := cache.New()
	c.WithClock(clock.Now)

	c.Set("key", "value", 0)

	clock.Advance(24 * time.Hour)

	_, ok := c.Get("key")
	require.True(t, ok)
}

func TestCache_CeilingSweep(t *testing.T) {
	const maxEntries = 10

	clock := newFakeClock()

	c := cache.NewWithCeiling(maxEntries)
	c.WithClock(clock.Now)

	// Fill to the ceiling.
	for i := 0; i < maxEntries; i++ {
		c.Set(fmt.Sprintf("old-%d", i), i, defaultTTL)
	}
	require.Equal(t, maxEntries, c.Len())

	// Let every existing entry expire, then insert past the ceiling.
	// The insert sweeps the expired entries.
	clock.Advance(defaultTTL)
	c.Set("fresh", "value", defaultTTL)

	require.Equal(t, 1, c.Len())

	_, ok := c.Get("fresh")
	require.True(t, ok)
}

func TestCache_SweepKeepsFreshEntries(t *testing.T) {
	const maxEntries = 2

	clock := newFakeClock()

	c := cache.NewWithCeiling(maxEntries)
	c.WithClock(clock.Now)

	c.Set("stale", 1, defaultTTL)

	clock.Advance(defaultTTL / 2)
	c.Set("fresh", 2, defaultTTL)

	// Trigger the sweep after the first entry expired but before the
	// second did.
	clock.Advance(defaultTTL / 2)
	c.Set("trigger", 3, defaultTTL)

	_, ok := c.Get("stale")
	require.False(t, ok)

	_, ok = c.Get("fresh")
	require.True(t, ok)

	_, ok = c.Get("trigger")
	require.True(t, ok)
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := cache.New()

	c.Set("a", 1, defaultTTL)
	c.Set("b", 2, defaultTTL)

	c.Delete("a")
	_, ok := c.Get("a")
	require.False(t, ok)

	c.Clear()
	require.Zero(t, c.Len())
}

func TestPricingCache_GetOrCompute(t *testing.T) {
	p := cache.NewPricingCache(defaultTTL, defaultMaxEntries)

	computeCalls := 0
	compute := func() (interface{}, error) {
		computeCalls++
		return "priced", nil
	}

	// First call computes.
	value, err := p.GetOrCompute("key", compute)
	require.NoError(t, err)
	require.Equal(t, "priced", value)
	require.Equal(t, 1, computeCalls)

	// Second call within the TTL is served from cache.
	value, err = p.GetOrCompute("key", compute)
	require.NoError(t, err)
	require.Equal(t, "priced", value)
	require.Equal(t, 1, computeCalls)
}

func TestPricingCache_ExpiredEntryRecomputes(t *testing.T) {
	clock := newFakeClock()

	p := cache.NewPricingCache(defaultTTL, defaultMaxEntries)
	p.WithClock(clock.Now)

	computeCalls := 0
	compute := func() (interface{}, error) {
		computeCalls++
		return computeCalls, nil
	}

	_, err := p.GetOrCompute("key", compute)
	require.NoError(t, err)

	clock.Advance(defaultTTL)

	value, err := p.GetOrCompute("key", compute)
	require.NoError(t, err)
	require.Equal(t, 2, value)
	require.Equal(t, 2, computeCalls)
}

func TestPricingCache_FailedComputeDoesNotPoison(t *testing.T) {
	p := cache.NewPricingCache(defaultTTL, defaultMaxEntries)

	computeErr := errors.New("oracle unavailable")

	_, err := p.GetOrCompute("key", func() (interface{}, error) {
		return nil, computeErr
	})
	require.ErrorIs(t, err, computeErr)
	require.Zero(t, p.Len())

	// The failure was not cached: the next call retries and succeeds.
	value, err := p.GetOrCompute("key", func() (interface{}, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	require.Equal(t, "recovered", value)
}

func TestPricingCache_Clear(t *testing.T) {
	p := cache.NewPricingCache(defaultTTL, defaultMaxEntries)

	_, err := p.GetOrCompute("key", func() (interface{}, error) {
		return "priced", nil
	})
	require.NoError(t, err)

	p.Clear()

	_, ok := p.Get("key")
	require.False(t, ok)
}
