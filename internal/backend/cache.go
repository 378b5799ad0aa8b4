package backend

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes backend reads by key. Concurrent fetches of the same key
// share one call; entries are served until invalidated or older than ttl.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	group   singleflight.Group
	ttl     time.Duration
	now     func() time.Time
	gen     map[string]uint64
}

type cacheEntry struct {
	value   any
	fetched time.Time
}

// NewCache creates a cache. A ttl of zero keeps entries until invalidated.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		gen:     make(map[string]uint64),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key, calling fetch when there is none.
func (c *Cache) Get(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && (c.ttl == 0 || c.now().Sub(e.fetched) < c.ttl) {
		c.mu.Unlock()
		return e.value, nil
	}
	gen := c.gen[key]
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// An invalidation during the fetch makes the result stale; don't keep it.
	if c.gen[key] == gen {
		c.entries[key] = cacheEntry{value: v, fetched: c.now()}
	}
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops key. A key ending in "/" drops every key with that prefix.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.HasSuffix(key, "/") {
		for k := range c.entries {
			if strings.HasPrefix(k, key) {
				delete(c.entries, k)
				c.gen[k]++
			}
		}
		return
	}
	delete(c.entries, key)
	c.gen[key]++
	c.group.Forget(key)
}

// Has reports whether key currently has a cached value.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
