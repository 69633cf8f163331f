package cache

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
)

// loadGroup coalesces concurrent loads of the same key across all caches.
// Keys are prefixed with the cache address so distinct caches never share a flight.
var loadGroup singleflight.Group

// LoaderFunc produces the value for a missing key.
type LoaderFunc[V any] func(ctx context.Context, key string) (V, error)

// GetOrSet returns the cached value for key or, on a miss, calls load and
// stores its result. Concurrent misses for the same key share a single load.
// Loader errors are returned as is and nothing is cached.
//
// The shared load is detached from the cancellation of whichever caller
// started it. Each caller stops waiting when its own ctx is done.
func GetOrSet[V any](ctx context.Context, c *LRUCache[V], key string, load LoaderFunc[V]) (V, error) {
	var zero V
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	flight := fmt.Sprintf("%p:%s", c, key)
	loadCtx := context.WithoutCancel(ctx)
	ch := loadGroup.DoChan(flight, func() (any, error) {
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		v, err := load(loadCtx, key)
		if err != nil {
			return nil, err
		}
		if err := c.Set(key, v); err != nil {
			return nil, err
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(V), nil
	}
}

// peek returns the value for key without touching recency or statistics.
func (c *LRUCache[V]) peek(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*lruEntry[V]).value, true
	}
	var zero V
	return zero, false
}
