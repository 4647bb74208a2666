package secrets

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheKey = "api_key"

// Cached decorates another Provider with a TTL cache so the underlying
// secret store is not hit on every search call. Cache lifetime is this
// layer's concern; the search client itself never caches keys.
type Cached struct {
	inner Provider
	cache *expirable.LRU[string, string]
}

// NewCached wraps inner with a cache holding the key for ttl.
func NewCached(inner Provider, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		cache: expirable.NewLRU[string, string](1, nil, ttl),
	}
}

// APIKey returns the cached key, falling through to the inner provider on
// miss or expiry. Inner failures are not cached.
func (c *Cached) APIKey(ctx context.Context) (string, error) {
	if key, ok := c.cache.Get(cacheKey); ok {
		return key, nil
	}

	key, err := c.inner.APIKey(ctx)
	if err != nil {
		return "", err
	}

	c.cache.Add(cacheKey, key)
	return key, nil
}
