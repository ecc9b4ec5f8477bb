package cache

import (
	"golang.org/x/sync/singleflight"
)

// ComputeFunc produces the value for a key on a cache miss.
type ComputeFunc func(key string) string

// Memoizer wraps a computation with caching.
//
// Contract:
//   - Concurrency: safe for concurrent use; concurrent misses on the same
//     eligible key run compute once.
//   - Determinism: compute must be a pure function of key.
type Memoizer struct {
	cache  Cache
	policy Policy
	group  singleflight.Group
}

// NewMemoizer creates a new memoizer over c.
func NewMemoizer(c Cache, policy Policy) (*Memoizer, error) {
	if c == nil {
		return nil, ErrNilCache
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Memoizer{cache: c, policy: policy}, nil
}

// Do returns the value for key, reporting whether it came from the cache.
// On a miss compute runs and its result is stored if the policy allows.
func (m *Memoizer) Do(key string, compute ComputeFunc) (value string, hit bool) {
	if value, ok := m.cache.Get(key); ok {
		return value, true
	}
	return m.Fill(key, compute), false
}

// Fill computes the value for key without consulting the cache first and
// stores it if the policy allows.
func (m *Memoizer) Fill(key string, compute ComputeFunc) string {
	// Ineligible keys are never stored, so there is nothing to coalesce.
	if !m.policy.Eligible(key) {
		return compute(key)
	}

	v, _, _ := m.group.Do(key, func() (any, error) {
		out := compute(key)
		m.cache.Set(key, out)
		return out, nil
	})

	return v.(string)
}

// Store records value under key if the policy allows, reporting whether it
// was written.
func (m *Memoizer) Store(key, value string) bool {
	if !m.policy.Eligible(key) {
		return false
	}
	m.cache.Set(key, value)
	return true
}

// Peek returns the cached value for key without computing it.
func (m *Memoizer) Peek(key string) (string, bool) {
	return m.cache.Get(key)
}

// Cache returns the underlying cache.
func (m *Memoizer) Cache() Cache {
	return m.cache
}

// Policy returns the policy in effect.
func (m *Memoizer) Policy() Policy {
	return m.policy
}
