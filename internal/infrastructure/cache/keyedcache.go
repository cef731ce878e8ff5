// Package cache provides the in-process memoization layers and the
// redis-backed stock alert state used by the notification core.
package cache

import "sync"

type entry[T any] struct {
	value *T
	// negative marks a cached "not found" so repeated misses don't hammer
	// the store. Cleared together with everything else on ClearAll.
	negative bool
}

// KeyedCache is a thread-safe string-keyed cache with negative entries and
// generation-checked population. A lookup captures the current generation
// before going to the store and populates with PutIfCurrent; if ClearAll ran
// in between, the stale write is discarded and the next lookup re-fetches.
// This keeps ClearAll safe to call concurrently with in-flight lookups.
type KeyedCache[T any] struct {
	mu    sync.RWMutex
	items map[string]entry[T]
	gen   uint64
}

func NewKeyedCache[T any]() *KeyedCache[T] {
	return &KeyedCache[T]{
		items: make(map[string]entry[T]),
	}
}

// Get returns the cached value for key. hit reports whether the key was
// present at all; a present key with a nil value is a cached negative.
func (c *KeyedCache[T]) Get(key string) (value *T, hit bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if e.negative {
		return nil, true
	}
	return e.value, true
}

// Generation returns the current cache generation. Capture it before a store
// fetch and pass it to PutIfCurrent.
func (c *KeyedCache[T]) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// PutIfCurrent stores value under key unless the cache was cleared after gen
// was captured. Returns whether the value was stored.
func (c *KeyedCache[T]) PutIfCurrent(gen uint64, key string, value *T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.items[key] = entry[T]{value: value}
	return true
}

// PutNegativeIfCurrent caches a "not found" result under key, subject to the
// same generation check as PutIfCurrent.
func (c *KeyedCache[T]) PutNegativeIfCurrent(gen uint64, key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.items[key] = entry[T]{negative: true}
	return true
}

// Invalidate drops a single key.
func (c *KeyedCache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// ClearAll evicts every entry immediately and bumps the generation so that
// in-flight populations are discarded. Idempotent and side-effect-free
// beyond eviction.
func (c *KeyedCache[T]) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry[T])
	c.gen++
}

// Len returns the number of entries, negatives included.
func (c *KeyedCache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
