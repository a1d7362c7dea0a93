// Package bigf provides the finite-precision real scalar used as the F
// back-end for the GSO engine (see package gso). It wraps math/big.Float
// and adds two things the engine's contract requires that math/big.Float
// does not provide on its own: an explicit NaN sentinel (invalidating a
// cell and detecting a non-finite mu both depend on it) and a process-wide
// precision, set once and shared by every Float in play.
package bigf

import (
	"math"
	"math/big"

	"github.com/flintgso/latgso/bigz"
)

// defaultPrec is the process-wide precision, in bits, used by every new
// Float. It mirrors mpfr_set_default_prec in the back-end this engine was
// designed against: a single global, mutated only through SetPrec.
var defaultPrec uint = 106

// GetPrec returns the current process-wide precision, in bits.
func GetPrec() uint { return defaultPrec }

// SetPrec installs a new process-wide precision and returns the previous
// one. Changing precision while a GSO is populated invalidates every
// stored Float in it; callers must follow up with a full invalidation of
// any live engine — SetPrec itself does not attempt this.
func SetPrec(prec uint) (previous uint) {
	previous = defaultPrec
	defaultPrec = prec
	return previous
}

// Float is a finite-precision real with an explicit NaN sentinel.
type Float struct {
	v   big.Float
	nan bool
}

// New returns a new Float equal to 0 at the current process precision.
func New() *Float {
	f := new(Float)
	f.v.SetPrec(defaultPrec)
	return f
}

// NewFromInt64 returns a new Float with value x.
func NewFromInt64(x int64) *Float {
	f := New()
	f.v.SetInt64(x)
	return f
}

// NaN returns a new Float carrying the NaN sentinel.
func NaN() *Float {
	f := New()
	f.nan = true
	return f
}

// IsNaN reports whether z carries the NaN sentinel.
func (z *Float) IsNaN() bool { return z.nan }

// IsFinite reports whether z does not carry the NaN sentinel.
func (z *Float) IsFinite() bool { return !z.nan }

// Set sets z = x and returns z.
func (z *Float) Set(x *Float) *Float {
	z.v.Set(&x.v)
	z.nan = x.nan
	return z
}

// SetInt64 sets z = x, clearing any NaN sentinel, and returns z.
func (z *Float) SetInt64(x int64) *Float {
	z.v.SetPrec(defaultPrec).SetInt64(x)
	z.nan = false
	return z
}

// SetFloat64 sets z = x, clearing any NaN sentinel, and returns z. Used by
// update_bf's row_expo branch to install an already-renormalized mantissa.
func (z *Float) SetFloat64(x float64) *Float {
	z.v.SetPrec(defaultPrec).SetFloat64(x)
	z.nan = false
	return z
}

// SetInt sets z = x rounded to the process-wide precision (exact when x
// fits in that many bits), clearing any NaN sentinel, and returns z.
func (z *Float) SetInt(x *bigz.Int) *Float {
	z.v.SetPrec(defaultPrec).SetInt(x.BigInt())
	z.nan = false
	return z
}

// SetNaN sets z to the NaN sentinel and returns z.
func (z *Float) SetNaN() *Float {
	z.v.SetPrec(defaultPrec).SetInt64(0)
	z.nan = true
	return z
}

// Sign returns -1, 0 or +1 according to the sign of z, or 0 if z is NaN.
func (z *Float) Sign() int {
	if z.nan {
		return 0
	}
	return z.v.Sign()
}

// IsZero reports whether z is exactly zero (and not NaN).
func (z *Float) IsZero() bool { return !z.nan && z.v.Sign() == 0 }

// Cmp compares z and x. The result is undefined if either is NaN; callers
// must check IsNaN first — there is no total order across the sentinel.
func (z *Float) Cmp(x *Float) int { return z.v.Cmp(&x.v) }

// Add sets z = x + y. The result is NaN if either operand is.
func (z *Float) Add(x, y *Float) *Float {
	if x.nan || y.nan {
		return z.SetNaN()
	}
	z.v.SetPrec(defaultPrec).Add(&x.v, &y.v)
	z.nan = false
	return z
}

// Sub sets z = x - y. The result is NaN if either operand is.
func (z *Float) Sub(x, y *Float) *Float {
	if x.nan || y.nan {
		return z.SetNaN()
	}
	z.v.SetPrec(defaultPrec).Sub(&x.v, &y.v)
	z.nan = false
	return z
}

// Mul sets z = x * y. The result is NaN if either operand is.
func (z *Float) Mul(x, y *Float) *Float {
	if x.nan || y.nan {
		return z.SetNaN()
	}
	z.v.SetPrec(defaultPrec).Mul(&x.v, &y.v)
	z.nan = false
	return z
}

// Quo sets z = x / y. Division by zero, or either operand being NaN,
// yields the NaN sentinel rather than panicking — this is exactly the
// non-finite mu case update_gso_row must detect.
func (z *Float) Quo(x, y *Float) *Float {
	if x.nan || y.nan || y.v.Sign() == 0 {
		return z.SetNaN()
	}
	z.v.SetPrec(defaultPrec).Quo(&x.v, &y.v)
	z.nan = false
	return z
}

// Neg sets z = -x. The result is NaN if x is.
func (z *Float) Neg(x *Float) *Float {
	if x.nan {
		return z.SetNaN()
	}
	z.v.SetPrec(defaultPrec).Neg(&x.v)
	z.nan = false
	return z
}

// Sqrt sets z = sqrt(x). The result is NaN if x is NaN or negative.
func (z *Float) Sqrt(x *Float) *Float {
	if x.nan || x.v.Sign() < 0 {
		return z.SetNaN()
	}
	z.v.SetPrec(defaultPrec).Sqrt(&x.v)
	z.nan = false
	return z
}

// ScaleExp sets z = x * 2^k exactly and returns z.
func (z *Float) ScaleExp(x *Float, k int) *Float {
	if x.nan {
		return z.SetNaN()
	}
	z.v.SetMantExp(&x.v, k)
	z.v.SetPrec(defaultPrec)
	z.nan = false
	return z
}

// Float64 returns the float64 approximation of z, or math.NaN() if z
// carries the sentinel.
func (z *Float) Float64() float64 {
	if z.nan {
		return math.NaN()
	}
	f, _ := z.v.Float64()
	return f
}

// Log returns the natural logarithm of z as a float64. Undefined for
// z <= 0; callers are expected to only call it on positive r(i,i) values.
func (z *Float) Log() float64 {
	return math.Log(z.Float64())
}

// Exp returns e^z as a float64, completing the add/sub/mul/div/sqrt/log/exp
// set the float back-end is expected to provide.
func (z *Float) Exp() float64 {
	return math.Exp(z.Float64())
}

// Clone returns a copy of z that does not alias z.
func (z *Float) Clone() *Float {
	c := new(Float)
	c.v.Set(&z.v)
	c.nan = z.nan
	return c
}

// String returns a decimal rendering of z, or "NaN".
func (z *Float) String() string {
	if z.nan {
		return "NaN"
	}
	return z.v.Text('g', 10)
}

// RoundToInt returns the integer nearest z, rounding half away from zero.
// It returns 0 if z is NaN.
func (z *Float) RoundToInt() *bigz.Int {
	if z.nan {
		return bigz.NewInt(0)
	}
	shifted := new(big.Float).SetPrec(z.v.Prec() + 1)
	if z.v.Sign() >= 0 {
		shifted.Add(&z.v, big.NewFloat(0.5))
	} else {
		shifted.Sub(&z.v, big.NewFloat(0.5))
	}
	i := new(big.Int)
	shifted.Int(i)
	return bigz.NewFromBigInt(i)
}

// ZExp decomposes z into an exact arbitrary-precision mantissa and
// exponent such that z * 2^expoAdd == mantissa * 2^exponent, using the
// minimal number of bits z's value actually needs (mant.MinPrec()) rather
// than the Float's allocated precision, so trailing zero bits in the
// underlying representation do not inflate the mantissa. This backs the
// get_z_exp_we primitive row_addmul_we uses on its arbitrary-precision
// route. It returns (0, 0) for zero or NaN.
func (z *Float) ZExp(expoAdd int) (mantissa *bigz.Int, exponent int) {
	if z.nan || z.v.Sign() == 0 {
		return bigz.NewInt(0), 0
	}
	var mant big.Float
	e := z.v.MantExp(&mant)
	bits := mant.MinPrec()
	scaled := new(big.Float).SetPrec(bits)
	scaled.SetMantExp(&mant, int(bits))
	i := new(big.Int)
	scaled.Int(i)
	return bigz.NewFromBigInt(i), e - int(bits) + expoAdd
}

// siExpBits bounds the machine-word mantissa SiExp will produce, leaving
// headroom under int64's 63-bit magnitude for the multiply-by-row-entry the
// caller performs.
const siExpBits = 62

// SiExp decomposes z into a machine-word mantissa and exponent such that
// z * 2^expoAdd == mantissa * 2^exponent. row_addmul_we's routing treats
// exponent == 0 as "z is already a plain small integer scalar", so SiExp
// special-cases that form: whenever z*2^expoAdd is itself an exact integer
// that fits an int64, it is returned as (that integer, 0) rather than
// normalized further (e.g. -2 decomposes to (-2, 0), not (-1, 1)). Only
// when z*2^expoAdd is not already such an integer does SiExp fall back to
// a scaled mantissa, using the minimal number of bits z's value actually
// needs (mant.MinPrec(), not a fixed truncation) so the decomposition
// stays exact. ok is false, with mantissa and exponent both 0, when z
// needs more than siExpBits to represent exactly in either form; callers
// must fall back to ZExp's arbitrary-precision decomposition rather than
// silently truncating it. Zero decomposes exactly to (0, 0, true); NaN is
// never exact.
func (z *Float) SiExp(expoAdd int) (mantissa int64, exponent int, ok bool) {
	if z.nan {
		return 0, 0, false
	}
	if z.v.Sign() == 0 {
		return 0, 0, true
	}
	var mant big.Float
	e := z.v.MantExp(&mant)
	bits := mant.MinPrec()
	total := e + expoAdd

	if total >= 0 && bits <= uint(total) && total <= siExpBits {
		scaled := new(big.Float).SetPrec(uint(total))
		scaled.SetMantExp(&mant, total)
		i, _ := scaled.Int64()
		return i, 0, true
	}
	if bits > siExpBits {
		return 0, 0, false
	}
	scaled := new(big.Float).SetPrec(bits)
	scaled.SetMantExp(&mant, int(bits))
	i, _ := scaled.Int64()
	return i, total - int(bits), true
}
