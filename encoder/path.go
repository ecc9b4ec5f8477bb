package encoder

// Path names the route an encode call took.
type Path int

const (
	// PathFull ran surrogate repair and the selective encoder.
	PathFull Path = iota
	// PathVerbatim returned the input unchanged via the fast path.
	PathVerbatim
	// PathCached returned a previously computed result.
	PathCached
)

func (p Path) String() string {
	switch p {
	case PathFull:
		return "full"
	case PathVerbatim:
		return "verbatim"
	case PathCached:
		return "cached"
	default:
		return "unknown"
	}
}
