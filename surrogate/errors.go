package surrogate

import "errors"

var (
	// ErrOddLength indicates a UTF-16 byte stream with a trailing half unit.
	ErrOddLength = errors.New("surrogate: utf-16 input has odd length")

	// ErrUnknownByteOrder indicates a ByteOrder value outside the defined set.
	ErrUnknownByteOrder = errors.New("surrogate: unknown byte order")
)
