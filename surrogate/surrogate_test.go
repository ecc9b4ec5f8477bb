package surrogate

import (
	"errors"
	"slices"
	"testing"
	"unicode/utf8"
)

func TestRepairUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   []uint16
		want []uint16
	}{
		{"empty", nil, nil},
		{"ascii", []uint16{'a', 'b'}, []uint16{'a', 'b'}},
		{"pair kept", []uint16{0xd83d, 0xde00}, []uint16{0xd83d, 0xde00}},
		{"lone high at end", []uint16{'a', 0xd83d}, []uint16{'a', Replacement}},
		{"lone low at start", []uint16{0xde00, 'a'}, []uint16{Replacement, 'a'}},
		{"low before high", []uint16{0xde00, 0xd83d}, []uint16{Replacement, Replacement}},
		{"two highs then low", []uint16{0xd83d, 0xd83d, 0xde00}, []uint16{Replacement, 0xd83d, 0xde00}},
		{"pair then lone low", []uint16{0xd83d, 0xde00, 0xde00}, []uint16{0xd83d, 0xde00, Replacement}},
		{"high then ascii", []uint16{0xdbff, 'x'}, []uint16{Replacement, 'x'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.in)
			got := RepairUTF16(in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("RepairUTF16(%x) = %x, want %x", tt.in, got, tt.want)
			}
			if !slices.Equal(in, tt.in) {
				t.Errorf("RepairUTF16 modified its input: %x", in)
			}
		})
	}
}

func TestRepairUTF16_NoAllocWhenClean(t *testing.T) {
	in := []uint16{'h', 0xd83d, 0xde00, 'i'}
	got := RepairUTF16(in)
	if &got[0] != &in[0] {
		t.Error("RepairUTF16 should return the input slice when nothing is unmatched")
	}
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name string
		in   []uint16
		want string
	}{
		{"ascii", []uint16{'o', 'k'}, "ok"},
		{"emoji", []uint16{0xd83d, 0xde00}, "\U0001F600"},
		{"lone low", []uint16{0xdc00}, "�"},
		{"lone high", []uint16{'a', 0xd800}, "a�"},
		{"bmp", []uint16{0x00e9}, "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeUTF16(tt.in); got != tt.want {
				t.Errorf("DecodeUTF16(%x) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRepair(t *testing.T) {
	const (
		high = "\xed\xa0\xbd" // U+D83D
		low  = "\xed\xb8\x80" // U+DE00
	)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"valid", "héllo \U0001F600", "héllo \U0001F600"},
		{"lone low at start", low + "a", "�a"},
		{"lone high at end", "a" + high, "a�"},
		{"paired halves", high + low, "\U0001F600"},
		{"reversed halves", low + high, "��"},
		{"stray continuation byte", "a\x80b", "a�b"},
		{"truncated sequence", "\xe2\x82", "��"},
		{"encoded replacement char", "�", "�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Repair(tt.in)
			if got != tt.want {
				t.Errorf("Repair(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Repair(%q) returned invalid UTF-8", tt.in)
			}
		})
	}
}

func TestNeedsRepair(t *testing.T) {
	if NeedsRepair("plain") {
		t.Error("valid string should not need repair")
	}
	if !NeedsRepair("\xed\xb8\x80") {
		t.Error("lone surrogate should need repair")
	}
}

func TestFromUTF16Bytes(t *testing.T) {
	tests := []struct {
		name  string
		in    []byte
		order ByteOrder
		want  string
	}{
		{"little endian", []byte{'a', 0, 'b', 0}, LittleEndian, "ab"},
		{"big endian", []byte{0, 'a', 0, 'b'}, BigEndian, "ab"},
		{"bom overrides order", []byte{0xfe, 0xff, 0, 'a'}, LittleEndian, "a"},
		{"pair", []byte{0x3d, 0xd8, 0x00, 0xde}, LittleEndian, "\U0001F600"},
		{"lone low", []byte{0x00, 0xdc, 'a', 0}, LittleEndian, "�a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromUTF16Bytes(tt.in, tt.order)
			if err != nil {
				t.Fatalf("FromUTF16Bytes() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FromUTF16Bytes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromUTF16Bytes_Errors(t *testing.T) {
	if _, err := FromUTF16Bytes([]byte{'a'}, LittleEndian); !errors.Is(err, ErrOddLength) {
		t.Errorf("odd length error = %v, want ErrOddLength", err)
	}
	if _, err := FromUTF16Bytes([]byte{'a', 0}, ByteOrder(9)); !errors.Is(err, ErrUnknownByteOrder) {
		t.Errorf("unknown order error = %v, want ErrUnknownByteOrder", err)
	}
}

func BenchmarkRepair_Valid(b *testing.B) {
	s := "http://localhost/café/\U0001F600"
	for i := 0; i < b.N; i++ {
		_ = Repair(s)
	}
}
