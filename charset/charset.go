package charset

// Set is a bitset over the ASCII range 0..127.
// The zero value is the empty set.
type Set [2]uint64

// Safe holds the characters that pass through the encoder unchanged:
//
//	! # $ % & ' ( ) * + , - . / 0-9 : ; = ? @ A-Z [ \ ] ^ _ a-z | ~
var Safe = New("!#$%&'()*+,-./:;=?@[\\]^_|~").
	Range('0', '9').
	Range('A', 'Z').
	Range('a', 'z')

// Hex holds the hexadecimal digits accepted in a percent escape.
var Hex = New("").Range('0', '9').Range('A', 'F').Range('a', 'f')

// New returns a set holding the bytes of s. Bytes outside ASCII are ignored.
func New(s string) Set {
	var x Set
	for i := 0; i < len(s); i++ {
		x = x.Add(s[i])
	}
	return x
}

// Add returns x with b included.
func (x Set) Add(b byte) Set {
	if b >= 128 {
		return x
	}
	x[b>>6] |= 1 << (b & 63)
	return x
}

// Range returns x with every byte in [lo, hi] included.
func (x Set) Range(lo, hi byte) Set {
	for c := int(lo); c <= int(hi); c++ {
		x = x.Add(byte(c))
	}
	return x
}

// Or returns the union of x and y.
func (x Set) Or(y Set) Set {
	x[0] |= y[0]
	x[1] |= y[1]
	return x
}

// Contains reports whether b is in the set.
func (x Set) Contains(b byte) bool {
	return b < 128 && x[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of bytes in the set.
func (x Set) Len() int {
	n := 0
	for _, w := range x {
		for ; w != 0; w &= w - 1 {
			n++
		}
	}
	return n
}

// IsSafe reports whether b never needs percent-encoding.
func IsSafe(b byte) bool {
	return Safe.Contains(b)
}

// IsHex reports whether b is a hexadecimal digit.
func IsHex(b byte) bool {
	return Hex.Contains(b)
}

// Verbatim reports whether s can be returned unchanged without running the
// encoder: every byte is ASCII, in the safe set, and none is '%'.
func Verbatim(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' || !Safe.Contains(c) {
			return false
		}
	}
	return true
}
