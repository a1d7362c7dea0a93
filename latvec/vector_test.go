package latvec

import (
	"testing"

	"github.com/flintgso/latgso/bigz"
)

func vecFromInts(xs ...int64) *Vector {
	v := NewVector(len(xs))
	for j, x := range xs {
		v.Set(j, bigz.NewInt(x))
	}
	return v
}

func vecInts(v *Vector) []int64 {
	out := make([]int64, v.Len())
	for j := range out {
		out[j] = v.At(j).BigInt().Int64()
	}
	return out
}

func TestVectorAddSub(t *testing.T) {
	a := vecFromInts(1, 2, 3)
	b := vecFromInts(10, 20, 30)
	a.Add(b, 3)
	if got := vecInts(a); got[0] != 11 || got[1] != 22 || got[2] != 33 {
		t.Errorf("Add result = %v, want [11 22 33]", got)
	}
	a.Sub(b, 3)
	if got := vecInts(a); got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("Sub result = %v, want [1 2 3]", got)
	}
}

func TestVectorAddMulSi(t *testing.T) {
	a := vecFromInts(1, 1, 1)
	b := vecFromInts(2, 3, 4)
	a.AddMulSi(b, -2, 3)
	if got := vecInts(a); got[0] != -3 || got[1] != -5 || got[2] != -7 {
		t.Errorf("AddMulSi result = %v, want [-3 -5 -7]", got)
	}
}

func TestVectorAddMulSi2Exp(t *testing.T) {
	a := vecFromInts(0, 0)
	b := vecFromInts(1, 2)
	a.AddMulSi2Exp(b, 3, 2, 2) // += (3<<2)*b = 12*b
	if got := vecInts(a); got[0] != 12 || got[1] != 24 {
		t.Errorf("AddMulSi2Exp result = %v, want [12 24]", got)
	}
}

func TestVectorAddMul2Exp(t *testing.T) {
	a := vecFromInts(0, 0)
	b := vecFromInts(1, 2)
	a.AddMul2Exp(b, bigz.NewInt(3), 2, 2)
	if got := vecInts(a); got[0] != 12 || got[1] != 24 {
		t.Errorf("AddMul2Exp result = %v, want [12 24]", got)
	}
}

func TestVectorNNZ(t *testing.T) {
	v := vecFromInts(0, 5, 0, -3)
	if n := v.NNZ(4); n != 2 {
		t.Errorf("NNZ = %d, want 2", n)
	}
	if n := v.NNZ(2); n != 1 {
		t.Errorf("NNZ(2) = %d, want 1", n)
	}
}

func TestVectorResize(t *testing.T) {
	v := vecFromInts(1, 2)
	v.Resize(4)
	if v.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", v.Len())
	}
	if got := vecInts(v); got[0] != 1 || got[1] != 2 || got[2] != 0 || got[3] != 0 {
		t.Errorf("Resize result = %v, want [1 2 0 0]", got)
	}
	v.Resize(3) // shrinking is a no-op
	if v.Len() != 4 {
		t.Errorf("Resize should never shrink, Len() = %d", v.Len())
	}
}

func TestVectorCopyFrom(t *testing.T) {
	src := vecFromInts(1, 2, 3)
	dst := NewVector(0)
	dst.CopyFrom(src)
	src.Set(0, bigz.NewInt(99))
	if got := vecInts(dst); got[0] != 1 {
		t.Error("CopyFrom should not alias the source")
	}
}

func TestMatrixSwapAndRotate(t *testing.T) {
	m := NewMatrix(4, 1)
	for i := 0; i < 4; i++ {
		m.Row(i).Set(0, bigz.NewInt(int64(i)))
	}
	m.SwapRows(0, 3)
	if m.Row(0).At(0).BigInt().Int64() != 3 || m.Row(3).At(0).BigInt().Int64() != 0 {
		t.Error("SwapRows(0,3) failed")
	}

	m2 := NewMatrix(4, 1)
	for i := 0; i < 4; i++ {
		m2.Row(i).Set(0, bigz.NewInt(int64(i)))
	}
	m2.RotateRight(0, 2) // [0 1 2] -> [2 0 1]
	want := []int64{2, 0, 1, 3}
	for i, w := range want {
		if m2.Row(i).At(0).BigInt().Int64() != w {
			t.Errorf("RotateRight: row %d = %d, want %d", i, m2.Row(i).At(0).BigInt().Int64(), w)
		}
	}

	m3 := NewMatrix(4, 1)
	for i := 0; i < 4; i++ {
		m3.Row(i).Set(0, bigz.NewInt(int64(i)))
	}
	m3.RotateLeft(0, 2) // [0 1 2] -> [1 2 0]
	want = []int64{1, 2, 0, 3}
	for i, w := range want {
		if m3.Row(i).At(0).BigInt().Int64() != w {
			t.Errorf("RotateLeft: row %d = %d, want %d", i, m3.Row(i).At(0).BigInt().Int64(), w)
		}
	}
}

func TestMatrixResizeAndTruncate(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Resize(3, 4)
	if m.NRows() != 3 || m.NCols() != 4 {
		t.Fatalf("Resize: got %dx%d, want 3x4", m.NRows(), m.NCols())
	}
	m.Truncate(1)
	if m.NRows() != 1 {
		t.Errorf("Truncate: NRows() = %d, want 1", m.NRows())
	}
}
