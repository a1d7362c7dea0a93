package latvec

import (
	"testing"

	"github.com/flintgso/latgso/bigz"
)

func fillGram(d int) *Gram {
	g := NewGram(d)
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			g.SetSym(i, j, bigz.NewInt(int64(i*10+j)))
		}
	}
	return g
}

func TestGramSymSymmetric(t *testing.T) {
	g := fillGram(4)
	for i := 0; i < 4; i++ {
		for j := 0; j <= i; j++ {
			if g.Sym(i, j).Cmp(g.Sym(j, i)) != 0 {
				t.Errorf("Sym(%d,%d) != Sym(%d,%d)", i, j, j, i)
			}
		}
	}
}

func TestGramSwapRows(t *testing.T) {
	g := fillGram(5)
	before := make(map[[2]int]string)
	for i := 0; i < 5; i++ {
		for j := 0; j <= i; j++ {
			before[[2]int{i, j}] = g.Sym(i, j).String()
		}
	}
	g.SwapRows(1, 3)

	// After swapping rows/cols 1 and 3, Sym(a,b) post-swap should equal
	// Sym(sigma(a), sigma(b)) pre-swap, where sigma swaps 1 and 3.
	sigma := func(x int) int {
		switch x {
		case 1:
			return 3
		case 3:
			return 1
		default:
			return x
		}
	}
	for i := 0; i < 5; i++ {
		for j := 0; j <= i; j++ {
			a, b := sigma(i), sigma(j)
			if a < b {
				a, b = b, a
			}
			want := before[[2]int{a, b}]
			if got := g.Sym(i, j).String(); got != want {
				t.Errorf("Sym(%d,%d) after swap = %s, want %s", i, j, got, want)
			}
		}
	}
}

func TestGramSwapRowsRequiresOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SwapRows(3,1) should panic")
		}
	}()
	fillGram(5).SwapRows(3, 1)
}

func TestGramRotateRightIsCompositionOfSwaps(t *testing.T) {
	g := fillGram(5)
	want := fillGram(5)
	// RotateRight(0,2) should be equivalent to swapping (1,2) then (0,1).
	want.SwapRows(1, 2)
	want.SwapRows(0, 1)
	g.RotateRight(0, 2)
	for i := 0; i < 5; i++ {
		for j := 0; j <= i; j++ {
			if g.Sym(i, j).Cmp(want.Sym(i, j)) != 0 {
				t.Errorf("RotateRight mismatch at (%d,%d)", i, j)
			}
		}
	}
}

func TestGramResizeTruncate(t *testing.T) {
	g := NewGram(2)
	g.Resize(4)
	if g.NRows() != 4 {
		t.Fatalf("NRows() = %d, want 4", g.NRows())
	}
	if !g.Sym(3, 0).IsZero() {
		t.Error("newly resized rows should be zero-filled")
	}
	g.Truncate(1)
	if g.NRows() != 1 {
		t.Errorf("NRows() after Truncate(1) = %d, want 1", g.NRows())
	}
}
