package cell

import "fmt"

// Slice is a bounded bit cursor holding at most MaxBits bits.
//
// Reads consume from the front, stores append to the end. A Slice is owned by
// exactly one holder; it is not safe for concurrent mutation.
type Slice struct {
	bits BitString
}

// NewSlice returns a slice over bits. bits must not exceed MaxBits.
func NewSlice(bits BitString) (*Slice, error) {
	if bits.n > MaxBits {
		return nil, fmt.Errorf("%d bits: %w", bits.n, ErrCapacityExceeded)
	}
	return &Slice{bits: bits}, nil
}

// SliceFrom returns a slice holding a private copy of bits.
func SliceFrom(bits BitString) (*Slice, error) {
	if bits.n > MaxBits {
		return nil, fmt.Errorf("%d bits: %w", bits.n, ErrCapacityExceeded)
	}
	return &Slice{bits: bits.sub(0, bits.n)}, nil
}

// EmptySlice returns a slice with no bits, ready for stores.
func EmptySlice() *Slice {
	return &Slice{}
}

// Len returns the number of bits held.
func (s *Slice) Len() uint16 { return uint16(s.bits.n) }

// Bits returns an owned copy of the bits held.
func (s *Slice) Bits() BitString { return s.bits.sub(0, s.bits.n) }

// View returns the bits held without copying. The view is a snapshot: later
// loads and stores on s never write through it.
func (s *Slice) View() BitString { return s.bits }

// Clone returns an independent copy of s.
func (s *Slice) Clone() *Slice { return &Slice{bits: s.bits} }

func (s *Slice) String() string { return s.bits.String() }

// need checks that n bits are available for reading.
func (s *Slice) need(n uint16) error {
	if n > s.Len() {
		return fmt.Errorf("need %d bits, have %d: %w", n, s.Len(), ErrUnderflow)
	}
	return nil
}

// preload is the shared bound-check-then-extract step for all reads.
func (s *Slice) preload(n uint16) (BitString, error) {
	if err := s.need(n); err != nil {
		return BitString{}, err
	}
	return s.bits.sub(0, int(n)), nil
}

// advance drops the first n bits. The caller has already checked n.
func (s *Slice) advance(n uint16) {
	s.bits = s.bits.sub(int(n), s.bits.n-int(n))
}

// PreloadBits returns the first n bits without consuming them.
func (s *Slice) PreloadBits(n uint16) (*Slice, error) {
	b, err := s.preload(n)
	if err != nil {
		return nil, err
	}
	return &Slice{bits: b}, nil
}

// LoadBits returns the first n bits and drops them from s.
func (s *Slice) LoadBits(n uint16) (*Slice, error) {
	b, err := s.preload(n)
	if err != nil {
		return nil, err
	}
	s.advance(n)
	return &Slice{bits: b}, nil
}

// SkipBits drops the first n bits.
func (s *Slice) SkipBits(n uint16) error {
	if err := s.need(n); err != nil {
		return err
	}
	s.advance(n)
	return nil
}

// PreloadInt reads an Int257 from the front without consuming it.
func (s *Slice) PreloadInt() (Int257, error) {
	b, err := s.preload(IntBits)
	if err != nil {
		return Int257{}, err
	}
	return int257FromBits(b), nil
}

// LoadInt reads an Int257 from the front and drops its bits.
func (s *Slice) LoadInt() (Int257, error) {
	v, err := s.PreloadInt()
	if err != nil {
		return Int257{}, err
	}
	s.advance(IntBits)
	return v, nil
}

// PreloadBool reads one bit without consuming it.
func (s *Slice) PreloadBool() (bool, error) {
	if err := s.need(1); err != nil {
		return false, err
	}
	return bitAt(s.bits.data, 0), nil
}

// LoadBool reads one bit and drops it.
func (s *Slice) LoadBool() (bool, error) {
	v, err := s.PreloadBool()
	if err != nil {
		return false, err
	}
	s.advance(1)
	return v, nil
}

// PreloadUint reads an n bit big-endian unsigned integer without consuming it.
// n must be at most UintMaxBits.
func (s *Slice) PreloadUint(n uint16) (uint64, error) {
	if n > UintMaxBits {
		return 0, fmt.Errorf("%d bits: %w", n, ErrBadBitWidth)
	}
	if err := s.need(n); err != nil {
		return 0, err
	}
	var buf [8]byte
	copyBits(buf[:], UintMaxBits-int(n), s.bits.data, 0, int(n))
	return readU64BE(buf[:]), nil
}

// LoadUint reads an n bit big-endian unsigned integer and drops its bits.
func (s *Slice) LoadUint(n uint16) (uint64, error) {
	v, err := s.PreloadUint(n)
	if err != nil {
		return 0, err
	}
	s.advance(n)
	return v, nil
}

// EndParse returns ErrNotFullyParsed if any bits remain.
func (s *Slice) EndParse() error {
	if s.bits.n != 0 {
		return fmt.Errorf("%d bits left: %w", s.bits.n, ErrNotFullyParsed)
	}
	return nil
}

// store appends n bits of src starting at srcOff, or nothing at all.
func (s *Slice) store(src []byte, srcOff, n int) error {
	if s.bits.n+n > MaxBits {
		return fmt.Errorf("%d+%d bits: %w", s.bits.n, n, ErrCapacityExceeded)
	}
	s.bits = s.bits.concat(src, srcOff, n)
	return nil
}

// StoreInt appends all 257 bits of v.
func (s *Slice) StoreInt(v Int257) error {
	return s.store(v[:], 0, IntBits)
}

// StoreSlice appends all bits of o. o is not modified.
func (s *Slice) StoreSlice(o *Slice) error {
	if o == nil {
		return ErrNilSlice
	}
	return s.store(o.bits.data, 0, o.bits.n)
}

// StoreIntAsBits appends the first n bits of b, read MSB-first.
func (s *Slice) StoreIntAsBits(b []byte, n uint16) error {
	if s.bits.n+int(n) > MaxBits {
		return fmt.Errorf("%d+%d bits: %w", s.bits.n, n, ErrCapacityExceeded)
	}
	if int(n) > len(b)*8 {
		return fmt.Errorf("%d bits from %d bytes: %w", n, len(b), ErrUnderflow)
	}
	return s.store(b, 0, int(n))
}

// StoreBool appends a single bit.
func (s *Slice) StoreBool(v bool) error {
	if s.bits.n > MaxBits-1 {
		return fmt.Errorf("%d+1 bits: %w", s.bits.n, ErrCapacityExceeded)
	}
	var b [1]byte
	if v {
		b[0] = 0x80
	}
	return s.store(b[:], 0, 1)
}

// StoreUint appends v as an n bit big-endian unsigned integer.
// n must be at most UintMaxBits and v must fit in n bits.
func (s *Slice) StoreUint(v uint64, n uint16) error {
	if n > UintMaxBits {
		return fmt.Errorf("%d bits: %w", n, ErrBadBitWidth)
	}
	if n < UintMaxBits && v>>n != 0 {
		return fmt.Errorf("%d in %d bits: %w", v, n, ErrValueOverflow)
	}
	var buf [8]byte
	writeU64BE(buf[:], v)
	return s.store(buf[:], UintMaxBits-int(n), int(n))
}
