package latvec

// Matrix is a row-addressable container of Vector rows: the storage used
// for the integer basis b and, when enabled, the transform u and its
// inverse transpose u_inv_t.
type Matrix struct {
	rows  []*Vector
	ncols int
}

// NewMatrix returns a new d x n zero matrix.
func NewMatrix(d, n int) *Matrix {
	m := &Matrix{rows: make([]*Vector, d), ncols: n}
	for i := range m.rows {
		m.rows[i] = NewVector(n)
	}
	return m
}

// NRows returns the number of rows.
func (m *Matrix) NRows() int { return len(m.rows) }

// NCols returns the number of columns rows are allocated for.
func (m *Matrix) NCols() int { return m.ncols }

// Row returns row i. The returned Vector aliases m's storage.
func (m *Matrix) Row(i int) *Vector { return m.rows[i] }

// SetRow replaces row i wholesale.
func (m *Matrix) SetRow(i int, v *Vector) { m.rows[i] = v }

// SwapRows exchanges rows i and j.
func (m *Matrix) SwapRows(i, j int) { m.rows[i], m.rows[j] = m.rows[j], m.rows[i] }

// RotateRight rotates the closed range [first, last] one step to the
// right: the row at last moves to first, and rows [first, last) shift up
// by one. This implements the new < old case of move_row.
func (m *Matrix) RotateRight(first, last int) {
	if first >= last {
		return
	}
	tmp := m.rows[last]
	copy(m.rows[first+1:last+1], m.rows[first:last])
	m.rows[first] = tmp
}

// RotateLeft rotates the closed range [first, last] one step to the left:
// the row at first moves to last, and rows (first, last] shift down by
// one. This implements the new > old case of move_row.
func (m *Matrix) RotateLeft(first, last int) {
	if first >= last {
		return
	}
	tmp := m.rows[first]
	copy(m.rows[first:last], m.rows[first+1:last+1])
	m.rows[last] = tmp
}

// Resize grows m to d rows of n columns. Existing rows are preserved and
// widened if n grows; it never shrinks either dimension (use Truncate for
// rows).
func (m *Matrix) Resize(d, n int) {
	if n > m.ncols {
		for _, r := range m.rows {
			r.Resize(n)
		}
		m.ncols = n
	}
	if d > len(m.rows) {
		grown := make([]*Vector, d)
		copy(grown, m.rows)
		for i := len(m.rows); i < d; i++ {
			grown[i] = NewVector(m.ncols)
		}
		m.rows = grown
	}
}

// Truncate drops rows beyond the first d, implementing remove_last_rows'
// effect on a row container.
func (m *Matrix) Truncate(d int) { m.rows = m.rows[:d] }
