// Package cache holds the process-local slug cache used by the link resolver.
//
// Entries expire a fixed TTL after insertion. There is no invalidation hook
// for link edits: a deactivated or re-pointed link keeps resolving to the
// cached record until its entry expires, so CACHE_TTL is the operator's
// staleness budget. Each instance keeps its own cache.
package cache

import (
	"math/rand/v2"
	"sync"
	"time"

	"go-redirector/internal/redirect/domain"
)

const defaultSweepProbability = 0.01

type entry struct {
	link     domain.Link
	cachedAt time.Time
}

// Option configures a SlugCache.
type Option func(*SlugCache)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *SlugCache) {
		c.now = now
	}
}

// WithRandom overrides the random source used to decide when to sweep.
func WithRandom(float64Fn func() float64) Option {
	return func(c *SlugCache) {
		c.random = float64Fn
	}
}

// SlugCache maps slug to link record. It is safe for concurrent use; concurrent
// Set calls for the same slug are last-writer-wins.
type SlugCache struct {
	ttl    time.Duration
	now    func() time.Time
	random func() float64

	mu      sync.RWMutex
	entries map[string]entry
}

// New creates a cache whose entries are valid for ttl.
func New(ttl time.Duration, opts ...Option) *SlugCache {
	c := &SlugCache{
		ttl:     ttl,
		now:     time.Now,
		random:  rand.Float64,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns a copy of the cached link. Entries at or past their TTL are
// reported as absent and removed.
func (c *SlugCache) Get(slug string) (*domain.Link, bool) {
	c.mu.RLock()
	e, ok := c.entries[slug]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().Sub(e.cachedAt) >= c.ttl {
		c.mu.Lock()
		// Only drop the entry we saw; a concurrent Set may have refreshed it.
		if cur, ok := c.entries[slug]; ok && cur.cachedAt.Equal(e.cachedAt) {
			delete(c.entries, slug)
		}
		c.mu.Unlock()
		return nil, false
	}

	link := e.link
	return &link, true
}

// Set stores link under slug with the current time.
func (c *SlugCache) Set(slug string, link *domain.Link) {
	if link == nil {
		return
	}

	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.random() < defaultSweepProbability {
		c.sweepLocked(now)
	}
	c.entries[slug] = entry{link: *link, cachedAt: now}
}

// Len returns the number of entries, expired or not.
func (c *SlugCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *SlugCache) sweepLocked(now time.Time) {
	for slug, e := range c.entries {
		if now.Sub(e.cachedAt) >= c.ttl {
			delete(c.entries, slug)
		}
	}
}
