package cell

import (
	"fmt"
	"math/big"
)

// Int257 is a 257 bit two's complement integer packed MSB-first.
//
// Bit 0 (the MSB of byte 0) is the sign bit. The trailing 7 bits of the last
// byte are not part of the value and are kept zero by every constructor in
// this package.
type Int257 [IntBytes]byte

// intPad is the number of unused trailing bits in the packed form.
const intPad = IntBytes*8 - IntBits

var (
	int257Mod = new(big.Int).Lsh(big.NewInt(1), IntBits)
	int257Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), IntBits-1), big.NewInt(1))
	int257Min = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), IntBits-1))
)

// Int257FromBits builds an Int257 from exactly IntBits bits.
func Int257FromBits(b BitString) (Int257, error) {
	if b.n != IntBits {
		return Int257{}, fmt.Errorf("%d bits: %w", b.n, ErrBadBitWidth)
	}
	return int257FromBits(b), nil
}

func int257FromBits(b BitString) Int257 {
	var v Int257
	copyBits(v[:], 0, b.data, 0, IntBits)
	return v
}

// Int257FromBig converts x, which must lie in [-2^256, 2^256-1].
func Int257FromBig(x *big.Int) (Int257, error) {
	if x == nil {
		return Int257{}, ErrNilValue
	}
	if x.Cmp(int257Min) < 0 || x.Cmp(int257Max) > 0 {
		return Int257{}, fmt.Errorf("%s: %w", x.String(), ErrValueOverflow)
	}
	u := new(big.Int).Set(x)
	if u.Sign() < 0 {
		u.Add(u, int257Mod)
	}
	u.Lsh(u, intPad)
	var v Int257
	u.FillBytes(v[:])
	return v, nil
}

// Int257FromInt64 converts i. Every int64 fits.
func Int257FromInt64(i int64) Int257 {
	v, _ := Int257FromBig(big.NewInt(i))
	return v
}

// Int257FromUint64 converts u. Every uint64 fits.
func Int257FromUint64(u uint64) Int257 {
	v, _ := Int257FromBig(new(big.Int).SetUint64(u))
	return v
}

// Big returns the signed value of v.
func (v Int257) Big() *big.Int {
	v = v.canonical()
	x := new(big.Int).SetBytes(v[:])
	x.Rsh(x, intPad)
	if v.IsNegative() {
		x.Sub(x, int257Mod)
	}
	return x
}

// Bits returns the IntBits bits of v.
func (v Int257) Bits() BitString {
	return cutBits(v[:], 0, IntBits)
}

// Bit returns bit i, where bit 0 is the sign bit. It panics if i is out of range.
func (v Int257) Bit(i int) bool {
	if i < 0 || i >= IntBits {
		panic(fmt.Sprintf("cell: int257 bit index %d out of range", i))
	}
	return bitAt(v[:], i)
}

// IsNegative reports whether the sign bit is set.
func (v Int257) IsNegative() bool { return v[0]&0x80 != 0 }

func (v Int257) String() string { return v.Big().String() }

// canonical clears the padding bits.
func (v Int257) canonical() Int257 {
	v[IntBytes-1] &= ^byte(0xff >> (8 - intPad))
	return v
}
