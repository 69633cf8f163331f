package cache

import "sync"

// shared holds the process-wide cache instance.
// It is created lazily on first access and lives until ResetShared.
var shared struct {
	mu    sync.Mutex
	cache *LRUCache[any]
}

// Shared returns the process-wide cache, creating it with DefaultCapacity
// on first use.
func Shared() *LRUCache[any] {
	c, _ := SharedWithCapacity(DefaultCapacity)
	return c
}

// SharedWithCapacity returns the process-wide cache, creating it with the
// given capacity on first use.
//
// Only the first successful call decides the capacity. Once the instance
// exists the argument is ignored, even if it differs or is invalid, and the
// existing cache is returned unchanged. Use Resize to change the capacity of
// the shared instance.
func SharedWithCapacity(capacity int) (*LRUCache[any], error) {
	shared.mu.Lock()
	defer shared.mu.Unlock()

	if shared.cache != nil {
		return shared.cache, nil
	}

	c, err := New[any](capacity)
	if err != nil {
		return nil, err
	}
	shared.cache = c
	return c, nil
}

// ResetShared drops the process-wide instance so the next call to Shared
// or SharedWithCapacity creates a fresh one. Useful in tests.
func ResetShared() {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.cache = nil
}
