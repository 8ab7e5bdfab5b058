package cell

import (
	"errors"
	"fmt"
)

// MaxBits is the payload capacity of a single cell, in bits.
const MaxBits = 1023

// MaxRefs is the maximum number of child cells a cell may reference.
const MaxRefs = 4

// IntBits is the fixed width of an Int257.
const IntBits = 257

// IntBytes is the byte width of the packed Int257 representation.
// The trailing 7 bits of the last byte are unused and always zero.
const IntBytes = (IntBits + 7) / 8 // 33

// UintMaxBits is the widest value accepted by StoreUint and LoadUint.
const UintMaxBits = 64

var (
	ErrCapacityExceeded = errors.New("cell: capacity exceeded")
	ErrUnderflow        = errors.New("cell: not enough bits")
	ErrNotFullyParsed   = errors.New("cell: slice not fully parsed")
	ErrValueOverflow    = errors.New("cell: value does not fit the bit width")
	ErrBadBitWidth      = errors.New("cell: invalid bit width")
	ErrBadBitString     = errors.New("cell: invalid bit string")

	ErrNilSlice = errors.New("cell: nil slice")
	ErrNilValue = errors.New("cell: nil value")

	ErrNilRef    = errors.New("cell: nil ref")
	ErrCyclicRef = errors.New("cell: ref would create a cycle")
	ErrSharedRef = errors.New("cell: ref already owned by a cell")
	ErrRefIndex  = errors.New("cell: ref index out of range")
)

// ErrTooManyRefs is returned by AddRef when a cell already holds MaxRefs refs.
// It is a capacity error: errors.Is(ErrTooManyRefs, ErrCapacityExceeded) holds.
var ErrTooManyRefs = fmt.Errorf("%w: more than %d refs", ErrCapacityExceeded, MaxRefs)
