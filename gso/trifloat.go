package gso

import "github.com/flintgso/latgso/bigf"

// triFloat is the Float analogue of latvec.Gram's triangular storage, used
// for the engine's mu, r and gf tables. mu is strictly lower
// (rowLen(i) = i); r and gf are lower-including-diagonal (rowLen(i) = i+1),
// exactly like latvec.Gram.
//
// Unlike g (latvec.Gram), these tables are never incrementally rearranged
// to stay exact: they are *derived* state recomputed lazily by
// update_gso_row, so a mutation only needs to invalidate the affected
// entries with the NaN sentinel (row_op_end and move_row both describe
// this as invalidation, and only give exact rearrangement formulas for g,
// never for mu/r/gf).
type triFloat struct {
	rows     [][]*bigf.Float
	diagonal bool
}

func newTriFloat(d int, diagonal bool) *triFloat {
	t := &triFloat{rows: make([][]*bigf.Float, d), diagonal: diagonal}
	for i := range t.rows {
		t.rows[i] = newNaNRow(t.rowLen(i))
	}
	return t
}

func (t *triFloat) rowLen(i int) int {
	if t.diagonal {
		return i + 1
	}
	return i
}

func newNaNRow(n int) []*bigf.Float {
	r := make([]*bigf.Float, n)
	for i := range r {
		r[i] = bigf.NaN()
	}
	return r
}

// At returns the stored entry at (i,j). Callers must respect the
// triangularity of the table (j < i for mu, j <= i for r/gf).
func (t *triFloat) At(i, j int) *bigf.Float { return t.rows[i][j] }

// Sym returns the canonical stored entry for the symmetric pair (i,j).
// Only meaningful for the diagonal (Gram-shaped) table gf.
func (t *triFloat) Sym(i, j int) *bigf.Float {
	if i < j {
		i, j = j, i
	}
	return t.rows[i][j]
}

// NRows returns the number of rows currently allocated.
func (t *triFloat) NRows() int { return len(t.rows) }

// Resize grows t to d rows, NaN-filling the new rows.
func (t *triFloat) Resize(d int) {
	if d <= len(t.rows) {
		return
	}
	grown := make([][]*bigf.Float, d)
	copy(grown, t.rows)
	for i := len(t.rows); i < d; i++ {
		grown[i] = newNaNRow(t.rowLen(i))
	}
	t.rows = grown
}

// ResizeRow truncates or NaN-extends row i so its length matches
// rowLen(i); used by move_row when a row's triangular length changes
// because it now sits at a different index.
func (t *triFloat) ResizeRow(i int) {
	want := t.rowLen(i)
	row := t.rows[i]
	switch {
	case len(row) > want:
		t.rows[i] = row[:want]
	case len(row) < want:
		grown := make([]*bigf.Float, want)
		copy(grown, row)
		for j := len(row); j < want; j++ {
			grown[j] = bigf.NaN()
		}
		t.rows[i] = grown
	}
}

// Truncate drops rows beyond the first d.
func (t *triFloat) Truncate(d int) { t.rows = t.rows[:d] }

// InvalidateFrom resets row i to the NaN sentinel from column `from`
// onward. Invalidation only ever widens the invalid suffix; it never
// re-validates a column.
func (t *triFloat) InvalidateFrom(i, from int) {
	if from < 0 {
		from = 0
	}
	row := t.rows[i]
	for j := from; j < len(row); j++ {
		row[j].SetNaN()
	}
}

// InvalidateAll resets row i entirely to the NaN sentinel.
func (t *triFloat) InvalidateAll(i int) { t.InvalidateFrom(i, 0) }

// rotateRight rotates the closed range [first, last] of s one step to the
// right: s[last] moves to first, and [first,last) shifts up by one.
func rotateRight[T any](s []T, first, last int) {
	if first >= last {
		return
	}
	tmp := s[last]
	copy(s[first+1:last+1], s[first:last])
	s[first] = tmp
}

// rotateLeft rotates the closed range [first, last] of s one step to the
// left: s[first] moves to last, and (first,last] shifts down by one.
func rotateLeft[T any](s []T, first, last int) {
	if first >= last {
		return
	}
	tmp := s[first]
	copy(s[first:last], s[first+1:last+1])
	s[last] = tmp
}
