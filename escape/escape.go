package escape

import (
	"iter"
	"slices"

	"github.com/jonwraymond/urlsafe/charset"
)

const upperhex = "0123456789ABCDEF"

// Kind tags a Segment.
type Kind uint8

const (
	// Literal text is copied to the output unchanged.
	Literal Kind = iota
	// Escape text is written byte by byte as %XX.
	Escape
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Escape:
		return "escape"
	default:
		return "unknown"
	}
}

// Segment is one run of the input. Text is a substring of the input.
type Segment struct {
	Kind Kind
	Text string
}

// Encoded returns the output form of the segment.
func (s Segment) Encoded() string {
	if s.Kind == Literal {
		return s.Text
	}
	return string(appendEscaped(make([]byte, 0, 3*len(s.Text)), s.Text))
}

// MustEncode reports whether the byte at s[i] has to be percent-encoded.
func MustEncode(s string, i int) bool {
	c := s[i]
	if c == '%' {
		return i+2 >= len(s) || !charset.IsHex(s[i+1]) || !charset.IsHex(s[i+2])
	}
	return !charset.IsSafe(c)
}

// Scan yields the segments of s in order. Adjacent segments always differ
// in Kind, and concatenating their Text gives back s.
func Scan(s string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 0; i < len(s); {
			start := i
			enc := MustEncode(s, i)
			i++
			for i < len(s) && MustEncode(s, i) == enc {
				i++
			}

			kind := Literal
			if enc {
				kind = Escape
			}
			if !yield(Segment{Kind: kind, Text: s[start:i]}) {
				return
			}
		}
	}
}

// Segments returns the segments of s as a slice.
func Segments(s string) []Segment {
	return slices.Collect(Scan(s))
}

// Count returns the number of bytes of s that must be encoded.
func Count(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if MustEncode(s, i) {
			n++
		}
	}
	return n
}

// Append appends the encoded form of s to dst and returns the extended slice.
func Append(dst []byte, s string) []byte {
	for seg := range Scan(s) {
		if seg.Kind == Literal {
			dst = append(dst, seg.Text...)
			continue
		}
		dst = appendEscaped(dst, seg.Text)
	}
	return dst
}

// String returns the encoded form of s. When nothing needs encoding s is
// returned without allocating.
func String(s string) string {
	n := Count(s)
	if n == 0 {
		return s
	}
	return string(Append(make([]byte, 0, len(s)+2*n), s))
}

func appendEscaped(dst []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		dst = append(dst, '%', upperhex[c>>4], upperhex[c&15])
	}
	return dst
}
