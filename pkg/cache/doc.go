// Package cache provides a thread-safe, fixed-capacity LRU (Least Recently
// Used) key-value cache with hit/miss statistics, runtime resizing and a
// process-wide shared instance.
//
// # Key Features
//
//   - Generic over the value type, keys are non-empty strings
//   - O(1) Get, Set, Has and Remove backed by a map and a doubly linked list
//   - Exactly one eviction per insert into a full cache
//   - Hit/miss counters and hit rate via Stats
//   - Resize at runtime, shrinking evicts least recently used entries first
//   - Optional eviction callback
//   - Read-through helper GetOrSet with load coalescing
//
// # Usage
//
//	c, err := cache.New[*User](100)
//	if err != nil {
//		return err
//	}
//
//	if err := c.Set("user:123", user); err != nil {
//		return err // ErrInvalidKey or ErrInvalidValue
//	}
//
//	if u, ok := c.Get("user:123"); ok {
//		// marks user:123 as most recently used
//	}
//
//	c.Has("user:123")    // does not change recency or counters
//	c.Remove("user:123") // true if it was present
//	n, err := c.Resize(10) // n is the number of evicted entries
//	c.Clear()            // drops entries and resets counters
//
// # Shared Instance
//
// Shared and SharedWithCapacity return a single process-wide *LRUCache[any].
// The first call creates it; every later call returns the same instance and
// ignores its capacity argument:
//
//	a, _ := cache.SharedWithCapacity(5)
//	b, _ := cache.SharedWithCapacity(10)
//	// a == b, b.Capacity() == 5
//
// Call Resize to change the capacity of an existing instance, and
// ResetShared to drop it (mostly in tests).
//
// # Statistics
//
// Stats returns hits, misses, their total, the hit rate as a percentage
// rounded to two decimals, current size and capacity. Clear resets the
// counters; Resize and Remove do not.
//
// # Read-Through Caching
//
// The cache never loads values itself. Callers either follow the usual
// Get, load, Set sequence or use GetOrSet:
//
//	u, err := cache.GetOrSet(ctx, c, "user:123", func(ctx context.Context, key string) (*User, error) {
//		return repo.FindUser(ctx, key)
//	})
//
// Concurrent misses for the same key run the loader once.
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with errors.Is:
//
//   - ErrInvalidKey    – empty or non UTF-8 key passed to Set.
//   - ErrInvalidValue  – nil value passed to Set.
//   - ErrInvalidConfig – non-positive capacity passed to New or Resize.
//
// A call that fails leaves the cache untouched.
package cache
