package cache

const (
	// DefaultCapacity is the number of entries kept by DefaultPolicy.
	DefaultCapacity = 100

	// DefaultMaxKeyLength is the exclusive upper bound, in UTF-16 code
	// units, on keys that DefaultPolicy caches.
	DefaultMaxKeyLength = 200
)

// Policy configures caching behavior.
type Policy struct {
	// Capacity is the maximum number of entries. Zero disables caching.
	Capacity int

	// MaxKeyLength bounds cacheable keys: only keys strictly shorter than
	// this many UTF-16 code units are stored.
	MaxKeyLength int
}

// DefaultPolicy returns the default caching policy.
// Capacity: 100, MaxKeyLength: 200
func DefaultPolicy() Policy {
	return Policy{
		Capacity:     DefaultCapacity,
		MaxKeyLength: DefaultMaxKeyLength,
	}
}

// NoCachePolicy returns a policy that disables caching entirely.
func NoCachePolicy() Policy {
	return Policy{}
}

// ShouldCache returns true if caching is enabled by this policy.
func (p Policy) ShouldCache() bool {
	return p.Capacity > 0 && p.MaxKeyLength > 0
}

// Eligible reports whether key may be stored under this policy.
func (p Policy) Eligible(key string) bool {
	if !p.ShouldCache() {
		return false
	}
	// UTF-16 length never exceeds byte length.
	if len(key) < p.MaxKeyLength {
		return true
	}
	return KeyLength(key) < p.MaxKeyLength
}

// Validate checks the policy for negative bounds.
func (p Policy) Validate() error {
	if p.Capacity < 0 {
		return ErrInvalidCapacity
	}
	if p.MaxKeyLength < 0 {
		return ErrInvalidKeyLength
	}
	return nil
}
