package boc

import "fmt"

// Prefixes lists every known prefix.
var Prefixes = [...]Prefix{SerializedBocIdx, SerializedBocIdxCrc32c, SerializedBoc}

// ParsePrefix reads the prefix from the first PrefixBytes bytes of b.
func ParsePrefix(b []byte) (Prefix, error) {
	if len(b) < PrefixBytes {
		return 0, fmt.Errorf("%d bytes: %w", len(b), ErrShortHeader)
	}
	p := Prefix(readU32BE(b[:PrefixBytes]))
	if !p.Valid() {
		return 0, fmt.Errorf("%08x: %w", uint32(p), ErrUnknownPrefix)
	}
	return p, nil
}

// Valid reports whether p is one of the known prefixes.
func (p Prefix) Valid() bool {
	switch p {
	case SerializedBocIdx, SerializedBocIdxCrc32c, SerializedBoc:
		return true
	}
	return false
}

// Bytes returns the big-endian encoding of p.
func (p Prefix) Bytes() [PrefixBytes]byte {
	var b [PrefixBytes]byte
	writeU32BE(b[:], uint32(p))
	return b
}

// HasIndex reports whether the prefix alone implies a cell index.
// For SerializedBoc the answer is in the descriptor byte, so it reports false.
func (p Prefix) HasIndex() bool {
	return p == SerializedBocIdx || p == SerializedBocIdxCrc32c
}

// HasCRC32C reports whether the prefix alone implies a CRC32C trailer.
func (p Prefix) HasCRC32C() bool {
	return p == SerializedBocIdxCrc32c
}

func (p Prefix) String() string {
	switch p {
	case SerializedBocIdx:
		return "SerializedBocIdx"
	case SerializedBocIdxCrc32c:
		return "SerializedBocIdxCrc32c"
	case SerializedBoc:
		return "SerializedBoc"
	}
	return fmt.Sprintf("Prefix(%08x)", uint32(p))
}
