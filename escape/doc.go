// Package escape percent-encodes the unsafe parts of a partially encoded URL.
//
// A single left-to-right pass splits the input into alternating Literal and
// Escape segments. Escape segments are maximal runs of bytes that must be
// encoded: bytes outside the safe set, and '%' bytes that do not start a
// valid %XX triplet. Literal segments are copied through unchanged, so an
// existing escape such as %20 is never encoded twice.
//
// The input is expected to be valid UTF-8 (see package surrogate); each byte
// of an Escape segment is written as %XX with uppercase hex digits, which for
// valid UTF-8 is the UTF-8 based encoding of each character.
package escape
