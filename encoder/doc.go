// Package encoder makes partially encoded URLs safe to transmit.
//
// Encode percent-encodes every character outside the safe set and every '%'
// that does not start a valid %XX escape, while leaving existing escapes
// alone. Unmatched surrogates are replaced with U+FFFD first.
//
// The package-level Encode is a pure, uncached function. An Encoder adds a
// bounded FIFO result cache, owned by the Encoder and safe for concurrent
// use, and optional telemetry through package observe:
//
//	enc, err := encoder.New(encoder.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	enc.Encode("http://localhost/ foo") // "http://localhost/%20foo"
package encoder
