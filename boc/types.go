package boc

import "errors"

// Prefix is the 32 bit magic that opens a serialized bag of cells.
type Prefix uint32

const (
	// SerializedBocIdx is an indexed bag of cells without a checksum.
	SerializedBocIdx Prefix = 0x68ff65f3
	// SerializedBocIdxCrc32c is an indexed bag of cells with a trailing CRC32C.
	SerializedBocIdxCrc32c Prefix = 0xacc3a728
	// SerializedBoc is the generic form; its options live in the descriptor byte.
	SerializedBoc Prefix = 0xb5ee9c72
)

const (
	// PrefixBytes is the encoded width of a Prefix.
	PrefixBytes = 4

	// HeaderBytes is the width of a prefix plus its descriptor byte.
	HeaderBytes = PrefixBytes + 1

	// MaxRefSize is the widest cell reference number, in bytes.
	MaxRefSize uint8 = 4
)

const (
	flagHasIndex     = 1 << 7
	flagHasCRC32C    = 1 << 6
	flagHasCacheBits = 1 << 5
	flagsShift       = 3
	flagsMask        = 0b11
	refSizeMask      = 0b111
)

var (
	ErrShortHeader   = errors.New("boc: header too short")
	ErrUnknownPrefix = errors.New("boc: unknown prefix")
	ErrBadRefSize    = errors.New("boc: ref size must be 1..4 bytes")
	ErrBadFlags      = errors.New("boc: reserved flags out of range")
	ErrFlagsMismatch = errors.New("boc: flags not representable by prefix")
)
