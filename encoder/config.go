package encoder

import (
	"fmt"

	"github.com/jonwraymond/urlsafe/cache"
)

// Config configures an Encoder's result cache.
type Config struct {
	// CacheCapacity is the maximum number of cached results. Zero disables
	// caching.
	CacheCapacity int

	// MaxCachedLength bounds cacheable inputs: only inputs strictly shorter
	// than this many UTF-16 code units are cached.
	MaxCachedLength int

	// Shards splits the cache into independently locked partitions.
	// Zero or one gives exact FIFO order over the whole cache.
	Shards int
}

// DefaultConfig returns the default configuration.
// CacheCapacity: 100, MaxCachedLength: 200, Shards: 1
func DefaultConfig() Config {
	return Config{
		CacheCapacity:   cache.DefaultCapacity,
		MaxCachedLength: cache.DefaultMaxKeyLength,
		Shards:          1,
	}
}

// Policy returns the cache policy described by c.
func (c Config) Policy() cache.Policy {
	return cache.Policy{
		Capacity:     c.CacheCapacity,
		MaxKeyLength: c.MaxCachedLength,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Shards < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, cache.ErrInvalidShardCount)
	}
	if c.CacheCapacity > 0 && c.Shards > c.CacheCapacity {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, cache.ErrShardsExceedCapacity)
	}
	return nil
}

func (c Config) newCache() (cache.Cache, error) {
	if c.Shards > 1 {
		return cache.NewShardedCache(c.CacheCapacity, c.Shards)
	}
	return cache.NewMemoryCache(c.CacheCapacity), nil
}
