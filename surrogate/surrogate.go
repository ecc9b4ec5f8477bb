package surrogate

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000

	// Replacement is the code unit substituted for an unmatched half.
	Replacement = 0xfffd
)

// IsHigh reports whether u is a leading (high) surrogate.
func IsHigh(u uint16) bool { return surr1 <= u && u < surr2 }

// IsLow reports whether u is a trailing (low) surrogate.
func IsLow(u uint16) bool { return surr2 <= u && u < surr3 }

// IsSurrogate reports whether u is either half of a pair.
func IsSurrogate(u uint16) bool { return surr1 <= u && u < surr3 }

// RepairUTF16 replaces every unmatched surrogate in units with U+FFFD.
// Correctly ordered pairs are kept as they are. When nothing needs repair
// the input slice itself is returned; otherwise a new slice is allocated
// and units is left untouched.
func RepairUTF16(units []uint16) []uint16 {
	var out []uint16

	for i := 0; i < len(units); i++ {
		u := units[i]

		switch {
		case IsHigh(u) && i+1 < len(units) && IsLow(units[i+1]):
			if out != nil {
				out = append(out, u, units[i+1])
			}
			i++
		case IsSurrogate(u):
			if out == nil {
				out = make([]uint16, i, len(units))
				copy(out, units[:i])
			}
			out = append(out, Replacement)
		default:
			if out != nil {
				out = append(out, u)
			}
		}
	}

	if out == nil {
		return units
	}
	return out
}

// DecodeUTF16 repairs units and returns the equivalent UTF-8 string.
func DecodeUTF16(units []uint16) string {
	units = RepairUTF16(units)

	var b strings.Builder
	b.Grow(len(units))

	for i := 0; i < len(units); i++ {
		u := units[i]
		if IsHigh(u) {
			b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
			continue
		}
		b.WriteRune(rune(u))
	}

	return b.String()
}

// Repair returns s with every unmatched surrogate replaced by U+FFFD.
//
// Adjacent high and low surrogates in 3-byte form are joined into the
// 4-byte UTF-8 encoding of the codepoint they denote. Other invalid bytes
// become U+FFFD one byte at a time. Valid UTF-8 is returned as is.
func Repair(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)

	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			b.WriteByte(c)
			i++
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r != utf8.RuneError || size != 1 {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}

		hi, ok := unit(s[i:])
		if !ok {
			b.WriteRune(utf8.RuneError)
			i++
			continue
		}

		if IsHigh(hi) {
			if lo, ok := unit(s[i+3:]); ok && IsLow(lo) {
				b.WriteRune(utf16.DecodeRune(rune(hi), rune(lo)))
				i += 6
				continue
			}
		}

		b.WriteRune(utf8.RuneError)
		i += 3
	}

	return b.String()
}

// NeedsRepair reports whether Repair would change s.
func NeedsRepair(s string) bool {
	return !utf8.ValidString(s)
}

// unit decodes a surrogate written in 3-byte generalized UTF-8 form
// (ED A0..BF 80..BF) at the start of s.
func unit(s string) (uint16, bool) {
	if len(s) < 3 || s[0] != 0xed || s[1] < 0xa0 || s[1] > 0xbf || s[2] < 0x80 || s[2] > 0xbf {
		return 0, false
	}
	return 0xd000 | uint16(s[1]&0x3f)<<6 | uint16(s[2]&0x3f), true
}
