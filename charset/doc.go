// Package charset classifies ASCII bytes for URL percent-encoding.
//
// The safe set holds the characters that never need encoding when a string
// is already a partially encoded URL. Lookups are a two-word bitset test.
package charset
