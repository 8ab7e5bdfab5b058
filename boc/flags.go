package boc

import "fmt"

// Flags is the decoded descriptor byte of a SerializedBoc header.
type Flags struct {
	HasIndex     bool
	HasCRC32C    bool
	HasCacheBits bool
	// Reserved holds the two unassigned flag bits (bits 3 and 4).
	Reserved uint8
	// RefSize is the width in bytes of a cell reference number, 1..4.
	RefSize uint8
}

// ParseFlags decodes a SerializedBoc descriptor byte.
func ParseFlags(b byte) (Flags, error) {
	f := Flags{
		HasIndex:     b&flagHasIndex != 0,
		HasCRC32C:    b&flagHasCRC32C != 0,
		HasCacheBits: b&flagHasCacheBits != 0,
		Reserved:     (b >> flagsShift) & flagsMask,
		RefSize:      b & refSizeMask,
	}
	if err := checkRefSize(f.RefSize); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// Byte encodes f as a SerializedBoc descriptor byte.
func (f Flags) Byte() (byte, error) {
	if err := checkRefSize(f.RefSize); err != nil {
		return 0, err
	}
	if f.Reserved > flagsMask {
		return 0, fmt.Errorf("%d: %w", f.Reserved, ErrBadFlags)
	}
	b := f.RefSize | f.Reserved<<flagsShift
	if f.HasIndex {
		b |= flagHasIndex
	}
	if f.HasCRC32C {
		b |= flagHasCRC32C
	}
	if f.HasCacheBits {
		b |= flagHasCacheBits
	}
	return b, nil
}

func checkRefSize(n uint8) error {
	if n == 0 || n > MaxRefSize {
		return fmt.Errorf("%d: %w", n, ErrBadRefSize)
	}
	return nil
}
