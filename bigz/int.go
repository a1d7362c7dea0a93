// Package bigz provides the arbitrary-precision integer scalar used as the
// Z back-end for the GSO engine (see package gso). It is a thin wrapper
// around math/big.Int that adds the handful of lattice-specific operations
// the engine needs on top of the usual arithmetic: fused add-multiply,
// exponent shifts, and the mantissa/exponent decomposition the row
// exponent bookkeeping relies on.
package bigz

import "math/big"

// Int is an arbitrary-precision lattice-basis entry.
type Int struct {
	v big.Int
}

// NewInt returns a new Int with value x.
func NewInt(x int64) *Int {
	z := new(Int)
	z.v.SetInt64(x)
	return z
}

// NewFromBigInt returns a new Int with the value of x. The returned Int
// does not alias x.
func NewFromBigInt(x *big.Int) *Int {
	z := new(Int)
	z.v.Set(x)
	return z
}

// BigInt exposes the underlying math/big.Int for back-ends and tests that
// need it directly.
func (z *Int) BigInt() *big.Int { return &z.v }

// Set sets z = x and returns z.
func (z *Int) Set(x *Int) *Int {
	z.v.Set(&x.v)
	return z
}

// SetInt64 sets z = x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	z.v.SetInt64(x)
	return z
}

// Add sets z = x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	z.v.Add(&x.v, &y.v)
	return z
}

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	z.v.Sub(&x.v, &y.v)
	return z
}

// Mul sets z = x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	z.v.Mul(&x.v, &y.v)
	return z
}

// MulInt64 sets z = x * k for a machine-word scalar k, and returns z.
func (z *Int) MulInt64(x *Int, k int64) *Int {
	z.v.Mul(&x.v, big.NewInt(k))
	return z
}

// Neg sets z = -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.v.Neg(&x.v)
	return z
}

// AddMul sets z = z + x*y and returns z.
func (z *Int) AddMul(x, y *Int) *Int {
	var t big.Int
	t.Mul(&x.v, &y.v)
	z.v.Add(&z.v, &t)
	return z
}

// AddMulInt64 sets z = z + x*k for a machine-word scalar k, and returns z.
func (z *Int) AddMulInt64(x *Int, k int64) *Int {
	var t big.Int
	t.Mul(&x.v, big.NewInt(k))
	z.v.Add(&z.v, &t)
	return z
}

// Lsh sets z = x << n (that is, x * 2^n) and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.v.Lsh(&x.v, n)
	return z
}

// Rsh sets z = x >> n (arithmetic shift) and returns z.
func (z *Int) Rsh(x *Int, n uint) *Int {
	z.v.Rsh(&x.v, n)
	return z
}

// Sign returns -1, 0 or +1 according to the sign of z.
func (z *Int) Sign() int { return z.v.Sign() }

// IsZero reports whether z is zero.
func (z *Int) IsZero() bool { return z.v.Sign() == 0 }

// Cmp compares z and x and returns -1, 0 or +1.
func (z *Int) Cmp(x *Int) int { return z.v.Cmp(&x.v) }

// BitLen returns the length of the absolute value of z in bits.
func (z *Int) BitLen() int { return z.v.BitLen() }

// String returns the base-10 representation of z.
func (z *Int) String() string { return z.v.String() }

// ToFloatWithExponent returns (mantissa, exponent) such that
// z == mantissa * 2^exponent, rounded to a float64 mantissa (exact when |z|
// fits in 53 bits), and mantissa lies in [0.5, 1) in absolute value (or is
// 0 when z is 0). This is the to_float_with_exponent back-end primitive the
// engine requires of Z, and the source of a row's exponent during
// update_bf.
func (z *Int) ToFloatWithExponent() (mantissa float64, exponent int) {
	if z.v.Sign() == 0 {
		return 0, 0
	}
	bf := new(big.Float).SetPrec(53).SetInt(&z.v)
	var mant big.Float
	exp := bf.MantExp(&mant)
	m, _ := mant.Float64()
	return m, exp
}
