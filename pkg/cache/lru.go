package cache

import (
	"container/list"
	"fmt"
	"reflect"
	"sync"
	"unicode/utf8"
)

// DefaultCapacity is used by Shared and by Config when nothing else is set.
const DefaultCapacity = 100

type lruEntry[V any] struct {
	key   string
	value V
}

// Entry is a key-value pair returned by Entries.
type Entry[V any] struct {
	Key   string
	Value V
}

// LRUCache is a thread-safe, fixed-capacity LRU cache with hit/miss statistics.
// When the cache reaches its capacity, the least recently used item is evicted.
type LRUCache[V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	eviction *list.List // Front = most recently used, Back = least recently used
	hits     uint64
	misses   uint64
	onEvict  func(key string, value V)
}

// New creates a new LRU cache with the specified capacity.
// It returns ErrInvalidConfig when capacity is not positive.
func New[V any](capacity int) (*LRUCache[V], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	return &LRUCache[V]{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}, nil
}

// MustNew works like New but panics on invalid capacity.
func MustNew[V any](capacity int) *LRUCache[V] {
	c, err := New[V](capacity)
	if err != nil {
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}
	return c
}

// SetEvictCallback sets a callback invoked for every entry dropped to make
// room, either by Set on a full cache or by Resize.
// The callback runs while the cache lock is held and must not call back into the cache.
func (c *LRUCache[V]) SetEvictCallback(fn func(key string, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get retrieves a value from the cache and marks it as recently used.
// Returns the value and true if found, zero value and false otherwise.
func (c *LRUCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.hits++
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry[V]).value, true
	}

	c.misses++
	var zero V
	return zero, false
}

// Set adds or updates a value in the cache.
// Updating an existing key never evicts. Inserting a new key into a full
// cache evicts exactly one least recently used entry first.
// Nil pointers, interfaces, funcs and channels are rejected with ErrInvalidValue;
// nil maps and slices are stored.
func (c *LRUCache[V]) Set(key string, value V) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if isAbsent(value) {
		return fmt.Errorf("%w: key %q", ErrInvalidValue, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*lruEntry[V]).value = value
		return nil
	}

	if c.eviction.Len() >= c.capacity {
		c.evictOldest()
	}

	elem := c.eviction.PushFront(&lruEntry[V]{key: key, value: value})
	c.items[key] = elem
	return nil
}

// Has reports whether key is present.
// It does not touch recency order or statistics.
func (c *LRUCache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// Remove deletes key from the cache and reports whether it was present.
func (c *LRUCache[V]) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeElement(elem)
	return true
}

// Clear removes all items and resets hit/miss counters.
func (c *LRUCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.eviction.Init()
	c.hits = 0
	c.misses = 0
}

// Resize changes the capacity and returns the number of evicted entries.
// Shrinking below the current size drops least recently used entries first.
// Statistics are preserved.
func (c *LRUCache[V]) Resize(capacity int) (int, error) {
	if err := validateCapacity(capacity); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = capacity
	evicted := 0
	for c.eviction.Len() > c.capacity {
		c.evictOldest()
		evicted++
	}
	return evicted, nil
}

// Len returns the number of stored entries.
func (c *LRUCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Capacity returns the maximum number of entries.
func (c *LRUCache[V]) Capacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// Keys returns keys from least to most recently used.
func (c *LRUCache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, c.eviction.Len())
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		out = append(out, elem.Value.(*lruEntry[V]).key)
	}
	return out
}

// Entries returns a snapshot of all entries from least to most recently used.
// Intended for debugging and diagnostics.
func (c *LRUCache[V]) Entries() []Entry[V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry[V], 0, c.eviction.Len())
	for elem := c.eviction.Back(); elem != nil; elem = elem.Prev() {
		e := elem.Value.(*lruEntry[V])
		out = append(out, Entry[V]{Key: e.key, Value: e.value})
	}
	return out
}

// Must be called with lock held.
func (c *LRUCache[V]) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.removeElement(elem)

	if c.onEvict != nil {
		entry := elem.Value.(*lruEntry[V])
		c.onEvict(entry.key, entry.value)
	}
}

// Must be called with lock held.
func (c *LRUCache[V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*lruEntry[V]).key)
}

func validateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, capacity)
	}
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key must be a non-empty string", ErrInvalidKey)
	}
	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: key %q is not valid UTF-8", ErrInvalidKey, key)
	}
	return nil
}

// isAbsent reports whether v carries no value: untyped nil, or a nil
// pointer, interface, func or channel. Nil maps and slices behave as empty
// collections and are real values, as are zero structs.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
