package latvec

import "github.com/flintgso/latgso/bigz"

// Error is a latvec package error: a small closed set of sentinel string
// constants, comparable with == and errors.Is, in the style of mat64's
// type Error string / ErrShape.
type Error string

func (e Error) Error() string { return string(e) }

// ErrOrder is returned/panicked when an operation that requires i < j
// receives operands in the other order.
const ErrOrder = Error("latvec: expected i < j")

// Gram is a symmetric matrix stored only for j <= i. Sym normalizes an
// arbitrary (i,j) pair to the stored (max,min) location. It backs both the
// exact integer Gram g and, generically over any scalar type, is mirrored
// by the GSO engine's own triangular mu/r/gf storage.
type Gram struct {
	rows [][]*bigz.Int // rows[i] has length i+1
}

// NewGram returns a new d x d zero symmetric Gram matrix.
func NewGram(d int) *Gram {
	g := &Gram{rows: make([][]*bigz.Int, d)}
	for i := range g.rows {
		g.rows[i] = zeroRow(i + 1)
	}
	return g
}

func zeroRow(n int) []*bigz.Int {
	r := make([]*bigz.Int, n)
	for i := range r {
		r[i] = bigz.NewInt(0)
	}
	return r
}

// NRows returns the dimension of g.
func (g *Gram) NRows() int { return len(g.rows) }

// Sym returns g(max(i,j), min(i,j)), the canonical stored entry for the
// symmetric pair (i,j).
func (g *Gram) Sym(i, j int) *bigz.Int {
	if i < j {
		i, j = j, i
	}
	return g.rows[i][j]
}

// SetSym copies x into the canonical stored entry for (i,j).
func (g *Gram) SetSym(i, j int, x *bigz.Int) { g.Sym(i, j).Set(x) }

// Resize grows g to d rows, zero-filling the new rows.
func (g *Gram) Resize(d int) {
	if d <= len(g.rows) {
		return
	}
	grown := make([][]*bigz.Int, d)
	copy(grown, g.rows)
	for i := len(g.rows); i < d; i++ {
		grown[i] = zeroRow(i + 1)
	}
	g.rows = grown
}

// Truncate drops rows beyond the first d.
func (g *Gram) Truncate(d int) { g.rows = g.rows[:d] }

// SwapRows applies the symmetric rearrangement row_swap(i,j) performs on
// the Gram matrix, for i < j: g[i,k] <-> g[j,k]
// for k < i; g[k,i] <-> g[j,k] for i < k < j; g[k,i] <-> g[k,j] for
// k > j; g[i,i] <-> g[j,j].
func (g *Gram) SwapRows(i, j int) {
	if i >= j {
		panic(ErrOrder)
	}
	for k := 0; k < i; k++ {
		g.rows[i][k], g.rows[j][k] = g.rows[j][k], g.rows[i][k]
	}
	for k := i + 1; k < j; k++ {
		g.rows[k][i], g.rows[j][k] = g.rows[j][k], g.rows[k][i]
	}
	for k := j + 1; k < len(g.rows); k++ {
		g.rows[k][i], g.rows[k][j] = g.rows[k][j], g.rows[k][i]
	}
	g.rows[i][i], g.rows[j][j] = g.rows[j][j], g.rows[i][i]
}

// RotateRight performs the Gram-matrix side of move_row's right rotation
// of [first, last] (the new < old case): row/column last moves
// to index first. It is built from SwapRows rather than a hand-derived
// index transform: rotating a contiguous block right by one step is
// exactly the composition of adjacent transpositions (last-1,last),
// (last-2,last-1), ..., (first,first+1), and each of those is already a
// correct symmetric row+column swap.
func (g *Gram) RotateRight(first, last int) {
	for k := last; k > first; k-- {
		g.SwapRows(k-1, k)
	}
}

// RotateLeft performs the Gram-matrix side of move_row's left rotation of
// [first, last] (the new > old case): row/column first moves to
// index last. See RotateRight for why this is correct as a composition of
// adjacent swaps.
func (g *Gram) RotateLeft(first, last int) {
	for k := first; k < last; k++ {
		g.SwapRows(k, k+1)
	}
}
