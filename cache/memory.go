package cache

import (
	"sync"
	"sync/atomic"
)

// MemoryCache is an in-memory cache with first-in first-out eviction.
//
// Entries live in a map; insertion order is tracked by a ring of keys sized
// to the capacity. When the ring is full the oldest key is dropped before
// the new one is written.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
	ring    []string
	head    int
	size    int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewMemoryCache creates a new in-memory cache holding at most capacity
// entries. A capacity of zero or less yields a cache that stores nothing.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity < 0 {
		capacity = 0
	}
	return &MemoryCache{
		entries: make(map[string]string, capacity),
		ring:    make([]string, capacity),
	}
}

// Get retrieves a value from the cache. A hit does not change eviction order.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return "", false
	}

	c.hits.Add(1)
	return value, true
}

// Set stores a value, evicting the oldest inserted entry when full.
func (c *MemoryCache) Set(key, value string) {
	if len(c.ring) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}

	if c.size == len(c.ring) {
		oldest := c.ring[c.head]
		delete(c.entries, oldest)
		c.ring[c.head] = ""
		c.head = (c.head + 1) % len(c.ring)
		c.size--
		c.evictions.Add(1)
	}

	c.ring[(c.head+c.size)%len(c.ring)] = key
	c.size++
	c.entries[key] = value
}

// Len returns the number of stored entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Capacity returns the maximum number of entries.
func (c *MemoryCache) Capacity() int {
	return len(c.ring)
}

// Keys returns the stored keys from oldest to newest insertion.
func (c *MemoryCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, c.size)
	for i := 0; i < c.size; i++ {
		keys = append(keys, c.ring[(c.head+i)%len(c.ring)])
	}
	return keys
}

// Stats returns a snapshot of the hit, miss and eviction counters.
func (c *MemoryCache) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// Ensure MemoryCache implements Cache
var _ Cache = (*MemoryCache)(nil)
