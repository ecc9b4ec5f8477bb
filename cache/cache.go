package cache

import (
	"errors"
	"unicode/utf8"
)

// Sentinel errors for cache configuration.
var (
	ErrNilCache             = errors.New("cache: cache is nil")
	ErrInvalidCapacity      = errors.New("cache: capacity must not be negative")
	ErrInvalidKeyLength     = errors.New("cache: max key length must not be negative")
	ErrInvalidShardCount    = errors.New("cache: shard count must be positive")
	ErrShardsExceedCapacity = errors.New("cache: shard count exceeds capacity")
)

// Cache maps an exact input string to its encoded form.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Determinism: a value, once stored under a key, is never altered; it may
// only be evicted.
// - Errors: Get never errors; it returns ("", false) on miss.
type Cache interface {
	// Get retrieves a cached value. Returns ("", false) on miss.
	Get(key string) (string, bool)

	// Set stores value under key. Storing an existing key keeps its
	// original insertion position.
	Set(key, value string)

	// Len returns the number of stored entries.
	Len() int
}

// KeyLength returns the length of key in UTF-16 code units.
// Bytes that are not valid UTF-8 count as one unit each.
func KeyLength(key string) int {
	n := 0
	for i := 0; i < len(key); {
		if key[i] < utf8.RuneSelf {
			n++
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(key[i:])
		if r > 0xffff {
			n += 2
		} else {
			n++
		}
		i += size
	}
	return n
}
