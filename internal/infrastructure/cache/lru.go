// Package cache holds bounded in-memory caches.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a thread-safe cache of at most capacity entries. When full, the
// entry read or added least recently is evicted.
//
// Add never replaces an existing value, so callers may build a value
// outside any lock and race to store it: the first one wins and every
// caller ends up with the same value.
type LRU[K comparable, V any] struct {
	capacity int

	mu     sync.Mutex
	items  map[K]*list.Element
	order  *list.List // front = most recent
	hits   uint64
	misses uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Stats are the cumulative lookups of an LRU.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// NewLRU creates a cache holding up to capacity entries. A capacity below
// one is raised to one.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	return &LRU[K, V]{
		capacity: max(capacity, 1),
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get returns the value under key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Add stores value under key unless key is already present. It returns
// the value now cached and whether it was the one passed in.
func (c *LRU[K, V]) Add(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, false
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry[K, V]).key)
		}
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	return value, true
}

// GetOrAdd returns the cached value for key, calling build on a miss.
// build runs without the lock held and may run more than once for the
// same key under contention; only the first result is kept.
func (c *LRU[K, V]) GetOrAdd(key K, build func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v, _ := c.Add(key, build())
	return v
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns the lookup counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Len: c.order.Len()}
}
