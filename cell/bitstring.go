package cell

import (
	"bytes"
	"fmt"
	"strings"
)

// BitString is an immutable, MSB-first packed sequence of bits.
//
// The zero value is the empty bit string. Bits past Len in the last byte are
// always zero, so two bit strings are equal exactly when their lengths and
// packed bytes are equal.
type BitString struct {
	data []byte
	n    int
}

// NewBitString returns the first n bits of data as a BitString. data is copied.
func NewBitString(data []byte, n int) (BitString, error) {
	if n < 0 {
		return BitString{}, fmt.Errorf("%d bits: %w", n, ErrBadBitWidth)
	}
	if n > len(data)*8 {
		return BitString{}, fmt.Errorf("%d bits from %d bytes: %w", n, len(data), ErrUnderflow)
	}
	return cutBits(data, 0, n), nil
}

// ParseBitString parses a string of '0' and '1' characters, most significant
// bit first. The empty string is the empty bit string.
func ParseBitString(s string) (BitString, error) {
	b := BitString{data: make([]byte, bytesFor(len(s))), n: len(s)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			setBit(b.data, i, true)
		default:
			return BitString{}, fmt.Errorf("%q at offset %d: %w", s[i], i, ErrBadBitString)
		}
	}
	return b, nil
}

// BitsOf returns a BitString holding the given bits in order.
func BitsOf(bits ...bool) BitString {
	b := BitString{data: make([]byte, bytesFor(len(bits))), n: len(bits)}
	for i, v := range bits {
		if v {
			setBit(b.data, i, true)
		}
	}
	return b
}

// Len returns the number of bits.
func (b BitString) Len() int { return b.n }

// At returns bit i. It panics if i is out of range, like a slice index.
func (b BitString) At(i int) bool {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("cell: bit index %d out of range [0:%d]", i, b.n))
	}
	return bitAt(b.data, i)
}

// Bytes returns a copy of the packed bits, ceil(Len/8) bytes long.
func (b BitString) Bytes() []byte {
	out := make([]byte, bytesFor(b.n))
	copy(out, b.data)
	return out
}

// Bools returns the bits as a []bool.
func (b BitString) Bools() []bool {
	out := make([]bool, b.n)
	for i := range out {
		out[i] = bitAt(b.data, i)
	}
	return out
}

// Equal reports whether b and o hold the same bits.
func (b BitString) Equal(o BitString) bool {
	return b.n == o.n && bytes.Equal(b.data[:bytesFor(b.n)], o.data[:bytesFor(o.n)])
}

// String renders the bits as '0' and '1' characters.
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if bitAt(b.data, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// sub returns a freshly packed copy of n bits starting at off.
func (b BitString) sub(off, n int) BitString {
	return cutBits(b.data, off, n)
}

// concat returns a new bit string holding b followed by n bits of src
// starting at srcOff. Neither b nor src is modified.
func (b BitString) concat(src []byte, srcOff, n int) BitString {
	out := BitString{data: make([]byte, bytesFor(b.n+n)), n: b.n + n}
	copy(out.data, b.data[:bytesFor(b.n)])
	copyBits(out.data, b.n, src, srcOff, n)
	return out
}

func cutBits(src []byte, off, n int) BitString {
	out := BitString{data: make([]byte, bytesFor(n)), n: n}
	copyBits(out.data, 0, src, off, n)
	return out
}
