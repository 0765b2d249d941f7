package flora

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// namesKey caches the name list next to the rows
const namesKey = "\x00names"

// CachedRegistry fronts a slower registry, such as the database catalog, with an
// expiring LRU. Misses are not cached so a newly added flower shows up immediately.
type CachedRegistry struct {
	inner Registry
	rows  *expirable.LRU[string, Flower]
	names *expirable.LRU[string, []string]
}

// NewCachedRegistry wraps inner with a cache of size entries living for ttl
func NewCachedRegistry(inner Registry, size int, ttl time.Duration) *CachedRegistry {
	return &CachedRegistry{
		inner: inner,
		rows:  expirable.NewLRU[string, Flower](size, nil, ttl),
		names: expirable.NewLRU[string, []string](1, nil, ttl),
	}
}

// Lookup implements Registry
func (c *CachedRegistry) Lookup(ctx context.Context, name string) (Flower, error) {
	key := Normalize(name)
	if f, ok := c.rows.Get(key); ok {
		return f, nil
	}

	f, err := c.inner.Lookup(ctx, key)
	if err != nil {
		if errors.Is(err, ErrFlowerNotFound) {
			if known, nerr := c.Names(ctx); nerr == nil {
				return Flower{}, NotFound(name, known)
			}
		}
		return Flower{}, err
	}
	c.rows.Add(key, f)
	return f, nil
}

// Names implements Registry
func (c *CachedRegistry) Names(ctx context.Context) ([]string, error) {
	if names, ok := c.names.Get(namesKey); ok {
		return append([]string(nil), names...), nil
	}
	names, err := c.inner.Names(ctx)
	if err != nil {
		return nil, err
	}
	c.names.Add(namesKey, names)
	return append([]string(nil), names...), nil
}

// Purge drops every cached entry
func (c *CachedRegistry) Purge() {
	c.rows.Purge()
	c.names.Purge()
}
