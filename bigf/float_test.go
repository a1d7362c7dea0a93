package bigf

import (
	"math"
	"testing"

	"github.com/flintgso/latgso/bigz"
)

func TestNaNPropagation(t *testing.T) {
	nan := NaN()
	finite := NewFromInt64(3)

	if !nan.IsNaN() {
		t.Fatal("NaN() should carry the sentinel")
	}
	if finite.IsNaN() {
		t.Fatal("NewFromInt64(3) should not carry the sentinel")
	}

	for _, test := range []struct {
		name string
		got  *Float
	}{
		{"add", New().Add(nan, finite)},
		{"add-rhs", New().Add(finite, nan)},
		{"sub", New().Sub(nan, finite)},
		{"mul", New().Mul(nan, finite)},
		{"quo", New().Quo(finite, nan)},
		{"neg", New().Neg(nan)},
		{"sqrt", New().Sqrt(nan)},
	} {
		t.Run(test.name, func(t *testing.T) {
			if !test.got.IsNaN() {
				t.Errorf("%s of a NaN operand should stay NaN", test.name)
			}
		})
	}
}

func TestQuoDivisionByZero(t *testing.T) {
	z := New().Quo(NewFromInt64(1), NewFromInt64(0))
	if !z.IsNaN() {
		t.Error("division by zero should yield the NaN sentinel, not panic")
	}
}

func TestSetNaNThenSet(t *testing.T) {
	z := NaN()
	z.SetInt64(5)
	if z.IsNaN() {
		t.Error("SetInt64 should clear the NaN sentinel")
	}
	if z.Float64() != 5 {
		t.Errorf("Float64() = %v, want 5", z.Float64())
	}
}

func TestFloat64OfNaN(t *testing.T) {
	if !math.IsNaN(NaN().Float64()) {
		t.Error("Float64() of the sentinel should be math.NaN()")
	}
}

func TestSetIntExact(t *testing.T) {
	x := bigz.NewInt(12345)
	z := New().SetInt(x)
	if z.Float64() != 12345 {
		t.Errorf("SetInt round trip = %v, want 12345", z.Float64())
	}
}

func TestRoundToInt(t *testing.T) {
	for _, test := range []struct {
		x    float64
		want int64
	}{
		{2.4, 2},
		{2.5, 3},
		{2.6, 3},
		{-2.5, -3},
		{0, 0},
	} {
		got := New().SetFloat64(test.x).RoundToInt()
		if got.String() != bigz.NewInt(test.want).String() {
			t.Errorf("RoundToInt(%v) = %s, want %d", test.x, got.String(), test.want)
		}
	}
	if NaN().RoundToInt().String() != "0" {
		t.Error("RoundToInt of NaN should be 0")
	}
}

func TestSiExpZExpRoundTrip(t *testing.T) {
	z := NewFromInt64(12)
	si, e, ok := z.SiExp(0)
	if !ok {
		t.Fatal("SiExp(12) should report an exact decomposition")
	}
	got := float64(si) * math.Pow(2, float64(e))
	if got != 12 {
		t.Errorf("SiExp round trip = %v, want 12", got)
	}

	mant, e2 := z.ZExp(0)
	if e2 >= 0 {
		rebuilt := bigz.NewInt(0).Lsh(mant, uint(e2))
		if rebuilt.String() != "12" {
			t.Errorf("ZExp round trip = %s, want 12", rebuilt.String())
		}
	}
}

// TestSiExpHighPrecisionExactness decomposes 2^100+1, a value whose two set
// bits span 101 significant bits, well within the default 106-bit
// precision. A fixed-width truncation of the mantissa (to, say, 52 bits)
// silently drops the low-order +1 term; SiExp must instead report the
// decomposition as inexact and defer to ZExp, which has the precision to
// represent it exactly.
func TestSiExpHighPrecisionExactness(t *testing.T) {
	x := bigz.NewInt(0).Lsh(bigz.NewInt(1), 100)
	x.Add(x, bigz.NewInt(1))
	z := New().SetInt(x)

	if _, _, ok := z.SiExp(0); ok {
		t.Fatal("SiExp(2^100+1) should report inexact: it needs 101 significant bits, more than an int64 mantissa can hold")
	}

	mant, e := z.ZExp(0)
	rebuilt := bigz.NewInt(0).Lsh(mant, uint(e))
	if rebuilt.String() != x.String() {
		t.Errorf("ZExp round trip of 2^100+1 = %s, want %s", rebuilt.String(), x.String())
	}
}

func TestSiExpZeroAndNaN(t *testing.T) {
	if si, e, ok := NewFromInt64(0).SiExp(0); si != 0 || e != 0 || !ok {
		t.Errorf("SiExp(0) = (%d,%d,%v), want (0,0,true)", si, e, ok)
	}
	if si, e, ok := NaN().SiExp(0); si != 0 || e != 0 || ok {
		t.Errorf("SiExp(NaN) = (%d,%d,%v), want (0,0,false)", si, e, ok)
	}
}

func TestExp(t *testing.T) {
	got := NewFromInt64(0).Exp()
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("Exp(0) = %v, want 1", got)
	}
}

func TestScaleExp(t *testing.T) {
	z := New().ScaleExp(NewFromInt64(1), 3)
	if z.Float64() != 8 {
		t.Errorf("ScaleExp(1, 3) = %v, want 8", z.Float64())
	}
}

func TestCmp(t *testing.T) {
	if New().SetFloat64(1).Cmp(New().SetFloat64(2)) >= 0 {
		t.Error("1 should compare less than 2")
	}
}

func TestPrecisionGetSet(t *testing.T) {
	prev := GetPrec()
	old := SetPrec(64)
	if old != prev {
		t.Errorf("SetPrec returned %d, want previous %d", old, prev)
	}
	if GetPrec() != 64 {
		t.Errorf("GetPrec() = %d, want 64", GetPrec())
	}
	SetPrec(prev)
}
