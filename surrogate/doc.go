// Package surrogate repairs unmatched UTF-16 surrogate halves.
//
// A surrogate pair is a high unit (U+D800..U+DBFF) immediately followed by a
// low unit (U+DC00..U+DFFF). Any half that appears without its partner is
// replaced with U+FFFD so that later encoding never produces malformed
// percent-encoded UTF-8.
//
// Two views are supported: slices of UTF-16 code units, and Go strings that
// carry surrogates in their 3-byte generalized UTF-8 form (WTF-8, CESU-8).
package surrogate
