package keys

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachingResolver decorates a Resolver with a TTL cache keyed by URL.
//
// Concurrent misses for the same URL collapse into a single upstream
// fetch. Failures are never cached: a bad fetch leaves the entry empty so
// the next call tries again. Invalidate drops a key immediately, e.g.
// after a verification failure that suggests key rotation.
type CachingResolver struct {
	next Resolver
	ttl  time.Duration
	now  func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	handle    *PublicKeyHandle
	expiresAt time.Time
}

// NewCachingResolver wraps next with a cache holding handles for ttl.
func NewCachingResolver(next Resolver, ttl time.Duration) *CachingResolver {
	return &CachingResolver{
		next:    next,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Resolve returns the cached handle for url when fresh, otherwise fetches
// through the wrapped resolver.
func (c *CachingResolver) Resolve(ctx context.Context, url string) (*PublicKeyHandle, error) {
	if handle, ok := c.lookup(url); ok {
		return handle, nil
	}

	v, err, _ := c.group.Do(url, func() (any, error) {
		// Re-check under the flight: a concurrent leader may have
		// populated the entry between lookup and Do.
		if handle, ok := c.lookup(url); ok {
			return handle, nil
		}
		handle, err := c.next.Resolve(ctx, url)
		if err != nil {
			return nil, err
		}
		c.store(url, handle)
		return handle, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PublicKeyHandle), nil
}

// Invalidate drops the cached handle for url, if any.
func (c *CachingResolver) Invalidate(url string) {
	c.mu.Lock()
	delete(c.entries, url)
	c.mu.Unlock()
}

func (c *CachingResolver) lookup(url string) (*PublicKeyHandle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[url]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.handle, true
}

func (c *CachingResolver) store(url string, handle *PublicKeyHandle) {
	c.mu.Lock()
	c.entries[url] = cacheEntry{handle: handle, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
