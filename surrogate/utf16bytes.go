package surrogate

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// ByteOrder selects the endianness of a UTF-16 byte stream.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// FromUTF16Bytes decodes a UTF-16 byte stream into a repaired UTF-8 string.
// A leading byte order mark overrides order and is stripped.
func FromUTF16Bytes(b []byte, order ByteOrder) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}

	var e unicode.Endianness
	switch order {
	case LittleEndian:
		e = unicode.LittleEndian
	case BigEndian:
		e = unicode.BigEndian
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownByteOrder, order)
	}

	// The x/text decoder substitutes U+FFFD for unpaired surrogates.
	out, err := unicode.UTF16(e, unicode.UseBOM).NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("surrogate: decode utf-16: %w", err)
	}

	return string(out), nil
}
