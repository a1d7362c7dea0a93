// Package latvec provides the integer row-vector and matrix containers the
// GSO engine mutates in place: a prefix-addressable integer row vector and
// row-addressable matrix containers supporting swap and rotate, including
// the symmetric packed storage used for the exact integer Gram matrix.
package latvec

import "github.com/flintgso/latgso/bigz"

// Vector is an integer row vector of a lattice basis or transform. Column
// bounds ("n_cols") are external bookkeeping the GSO engine owns; Vector
// itself only guarantees that indices up to Len() are addressable.
//
// Vector and Matrix together are the row-addressable integer containers
// the GSO engine mutates in place; the symmetric packed storage used for
// the exact integer Gram matrix is the separate Gram type.
type Vector struct {
	data []*bigz.Int
}

// NewVector returns a new zero vector of length n.
func NewVector(n int) *Vector {
	v := &Vector{data: make([]*bigz.Int, n)}
	for i := range v.data {
		v.data[i] = bigz.NewInt(0)
	}
	return v
}

// Len returns the number of addressable entries.
func (v *Vector) Len() int { return len(v.data) }

// At returns the entry at column j.
func (v *Vector) At(j int) *bigz.Int { return v.data[j] }

// Set copies x into column j.
func (v *Vector) Set(j int, x *bigz.Int) { v.data[j].Set(x) }

// Resize grows v to n columns, zero-filling any new entries. It never
// shrinks v.
func (v *Vector) Resize(n int) {
	if n <= len(v.data) {
		return
	}
	grown := make([]*bigz.Int, n)
	copy(grown, v.data)
	for i := len(v.data); i < n; i++ {
		grown[i] = bigz.NewInt(0)
	}
	v.data = grown
}

// NNZ reports the number of nonzero entries among the first n columns.
func (v *Vector) NNZ(n int) int {
	c := 0
	for _, x := range v.data[:n] {
		if !x.IsZero() {
			c++
		}
	}
	return c
}

// Add sets v[0:n] += w[0:n].
func (v *Vector) Add(w *Vector, n int) {
	for j := 0; j < n; j++ {
		v.data[j].Add(v.data[j], w.data[j])
	}
}

// Sub sets v[0:n] -= w[0:n].
func (v *Vector) Sub(w *Vector, n int) {
	for j := 0; j < n; j++ {
		v.data[j].Sub(v.data[j], w.data[j])
	}
}

// AddMulSi sets v[0:n] += x * w[0:n] for a machine-word scalar x.
func (v *Vector) AddMulSi(w *Vector, x int64, n int) {
	for j := 0; j < n; j++ {
		v.data[j].AddMulInt64(w.data[j], x)
	}
}

// AddMulSi2Exp sets v[0:n] += (x << e) * w[0:n].
func (v *Vector) AddMulSi2Exp(w *Vector, x int64, e uint, n int) {
	scaled := bigz.NewInt(x)
	scaled.Lsh(scaled, e)
	for j := 0; j < n; j++ {
		v.data[j].AddMul(scaled, w.data[j])
	}
}

// AddMul2Exp sets v[0:n] += (X << e) * w[0:n] for an arbitrary-precision X.
func (v *Vector) AddMul2Exp(w *Vector, x *bigz.Int, e uint, n int) {
	scaled := bigz.NewInt(0)
	scaled.Lsh(x, e)
	for j := 0; j < n; j++ {
		v.data[j].AddMul(scaled, w.data[j])
	}
}

// CopyFrom makes v an independent copy of w, growing v if necessary.
func (v *Vector) CopyFrom(w *Vector) {
	v.Resize(w.Len())
	for j := range w.data {
		v.data[j].Set(w.data[j])
	}
}
