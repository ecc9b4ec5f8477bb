package cache

import (
	"github.com/cespare/xxhash/v2"
)

// ShardedCache spreads keys over independent MemoryCache shards so that
// concurrent callers rarely contend on the same lock. Eviction is FIFO
// within each shard.
type ShardedCache struct {
	shards []*MemoryCache
}

// NewShardedCache creates a cache of n shards sharing capacity between them.
// Shard capacities differ by at most one and sum to capacity.
func NewShardedCache(capacity, n int) (*ShardedCache, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if n <= 0 {
		return nil, ErrInvalidShardCount
	}
	if capacity > 0 && n > capacity {
		return nil, ErrShardsExceedCapacity
	}

	per, extra := capacity/n, capacity%n
	shards := make([]*MemoryCache, n)
	for i := range shards {
		if i < extra {
			shards[i] = NewMemoryCache(per + 1)
		} else {
			shards[i] = NewMemoryCache(per)
		}
	}

	return &ShardedCache{shards: shards}, nil
}

func (c *ShardedCache) shard(key string) *MemoryCache {
	return c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

// Get retrieves a value from the shard owning key.
func (c *ShardedCache) Get(key string) (string, bool) {
	return c.shard(key).Get(key)
}

// Set stores a value in the shard owning key.
func (c *ShardedCache) Set(key, value string) {
	c.shard(key).Set(key, value)
}

// Len returns the number of entries across all shards.
func (c *ShardedCache) Len() int {
	n := 0
	for _, s := range c.shards {
		n += s.Len()
	}
	return n
}

// Capacity returns the total number of entries the shards can hold.
func (c *ShardedCache) Capacity() int {
	n := 0
	for _, s := range c.shards {
		n += s.Capacity()
	}
	return n
}

// Stats sums the counters of every shard.
func (c *ShardedCache) Stats() Stats {
	var st Stats
	for _, s := range c.shards {
		ss := s.Stats()
		st.Hits += ss.Hits
		st.Misses += ss.Misses
		st.Evictions += ss.Evictions
	}
	return st
}

// Ensure ShardedCache implements Cache
var _ Cache = (*ShardedCache)(nil)
