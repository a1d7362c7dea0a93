package gso

import "github.com/flintgso/latgso/latvec"

// MoveRow implements move_row(old,new): a logical rotation of every
// row-indexed piece of engine state, moving the row currently at old to
// index new and shifting the rows in between by one. old and new must
// both lie in [0, d).
func (g *GSO) MoveRow(old, newIdx int) {
	d := g.b.NRows()
	if old < 0 || old >= d || newIdx < 0 || newIdx >= d {
		panic(ErrIndexOutOfRange)
	}
	if old == newIdx {
		return
	}
	if old < newIdx {
		g.moveRowLeft(old, newIdx)
	} else {
		g.moveRowRight(newIdx, old)
	}
}

// moveRowRight handles new < old: right-rotate the closed range
// [newIdx, old] so the row at old lands at newIdx.
func (g *GSO) moveRowRight(newIdx, old int) {
	g.b.RotateRight(newIdx, old)
	if g.cfg.transformEnabled {
		g.u.RotateRight(newIdx, old)
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.RotateRight(newIdx, old)
	}
	if g.cfg.intGram {
		g.g.RotateRight(newIdx, old)
	} else {
		rotateRight(g.bf, newIdx, old)
		if g.cfg.rowExpoEnabled {
			rotateRight(g.rowExpo, newIdx, old)
		}
	}
	rotateRight(g.mu.rows, newIdx, old)
	rotateRight(g.r.rows, newIdx, old)
	rotateRight(g.gsoValidCols, newIdx, old)
	rotateRight(g.initRowSize, newIdx, old)
	for i := newIdx; i <= old; i++ {
		g.mu.ResizeRow(i)
		g.r.ResizeRow(i)
	}
	for i := newIdx; i < g.nKnownRows; i++ {
		if g.gsoValidCols[i] > newIdx {
			g.gsoValidCols[i] = newIdx
		}
		if !g.cfg.intGram {
			g.gf.InvalidateAll(i)
		}
	}
}

// moveRowLeft handles new > old: left-rotate the closed range [old,
// newIdx] so the row at old lands at newIdx. If newIdx reaches or passes
// the current n_known_rows, the row becomes "forgotten" again: n_known_rows
// retracts to old and init_row_size[newIdx] is recomputed from the row's
// current nonzero-column count.
func (g *GSO) moveRowLeft(old, newIdx int) {
	g.b.RotateLeft(old, newIdx)
	if g.cfg.transformEnabled {
		g.u.RotateLeft(old, newIdx)
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.RotateLeft(old, newIdx)
	}
	if g.cfg.intGram {
		g.g.RotateLeft(old, newIdx)
	} else {
		rotateLeft(g.bf, old, newIdx)
		if g.cfg.rowExpoEnabled {
			rotateLeft(g.rowExpo, old, newIdx)
		}
	}
	rotateLeft(g.mu.rows, old, newIdx)
	rotateLeft(g.r.rows, old, newIdx)
	rotateLeft(g.gsoValidCols, old, newIdx)
	rotateLeft(g.initRowSize, old, newIdx)
	for i := old; i <= newIdx; i++ {
		g.mu.ResizeRow(i)
		g.r.ResizeRow(i)
	}
	wasKnown := newIdx < g.nKnownRows
	for i := old; i < g.nKnownRows; i++ {
		if g.gsoValidCols[i] > old {
			g.gsoValidCols[i] = old
		}
		if !g.cfg.intGram {
			g.gf.InvalidateAll(i)
		}
	}
	if !wasKnown {
		g.nKnownRows = old
		if !g.colsLocked {
			g.nSourceRows = g.nKnownRows
		}
		nz := g.b.Row(newIdx).NNZ(g.b.NCols())
		if nz < 1 {
			nz = 1
		}
		g.initRowSize[newIdx] = nz
	}
}

// RemoveLastRows implements remove_last_rows(k): drops the trailing k
// rows of the basis (and every row-indexed table), shrinking d.
func (g *GSO) RemoveLastRows(k int) {
	d := g.b.NRows()
	if k < 0 || k > d {
		panic(ErrIndexOutOfRange)
	}
	newD := d - k

	g.b.Truncate(newD)
	if g.cfg.transformEnabled {
		g.u.Truncate(newD)
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.Truncate(newD)
	}
	if g.cfg.intGram {
		g.g.Truncate(newD)
	} else {
		g.bf = g.bf[:newD]
		if g.cfg.rowExpoEnabled {
			g.rowExpo = g.rowExpo[:newD]
		}
		g.gf.Truncate(newD)
	}
	g.mu.Truncate(newD)
	g.r.Truncate(newD)
	g.gsoValidCols = g.gsoValidCols[:newD]
	g.initRowSize = g.initRowSize[:newD]

	if g.nKnownRows > newD {
		g.nKnownRows = newD
	}
	if g.nSourceRows > newD {
		g.nSourceRows = newD
	}
}

// LockCols implements lock_cols: freezes n_known_cols so future
// discover_row calls no longer grow it. Forbidden under int_gram, and
// while already locked.
func (g *GSO) LockCols() {
	if g.cfg.intGram || g.colsLocked {
		panic(ErrColumnsLocked)
	}
	g.colsLocked = true
}

// UnlockCols implements unlock_cols: releases the freeze and restores
// n_known_rows to n_source_rows, the count of rows actually appended
// while unlocked.
func (g *GSO) UnlockCols() {
	if !g.colsLocked {
		panic(ErrNotUnlocked)
	}
	g.colsLocked = false
	g.nKnownRows = g.nSourceRows
}

// resizeAppend grows every row-indexed table by `extra` rows, used by
// ApplyTransform to stage its scratch rows.
func (g *GSO) resizeAppend(extra int) {
	d0 := g.b.NRows()
	n := g.b.NCols()
	newD := d0 + extra

	g.b.Resize(newD, n)
	if g.cfg.transformEnabled {
		g.u.Resize(newD, g.u.NCols())
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.Resize(newD, g.uInvT.NCols())
	}
	if g.cfg.intGram {
		g.g.Resize(newD)
	} else {
		for i := d0; i < newD; i++ {
			g.bf = append(g.bf, newNaNRow(n))
		}
		g.gf.Resize(newD)
		if g.cfg.rowExpoEnabled {
			g.rowExpo = append(g.rowExpo, make([]int, extra)...)
		}
	}
	g.mu.Resize(newD)
	g.r.Resize(newD)
	g.gsoValidCols = append(g.gsoValidCols, make([]int, extra)...)
	for i := d0; i < newD; i++ {
		g.initRowSize = append(g.initRowSize, n)
	}
}

// ApplyTransform implements apply_transform: appends t.NRows() scratch
// rows, each the integer linear combination of b[srcBase:] given by one
// row of t, then swaps the scratch rows into place starting at
// targetBase and drops the vacated tail. Inherits RowSwap's restriction
// against inv_transform_enabled.
func (g *GSO) ApplyTransform(t *latvec.Matrix, srcBase, targetBase int) {
	rows := t.NRows()
	if rows == 0 {
		return
	}
	d0 := g.b.NRows()
	g.resizeAppend(rows)

	g.RowOpBegin(d0, d0+rows)
	for i := 0; i < rows; i++ {
		dst := d0 + i
		for j := 0; j < t.NCols(); j++ {
			coeff := t.Row(i).At(j)
			if coeff.IsZero() {
				continue
			}
			g.RowAddMul2Exp(dst, srcBase+j, coeff, 0)
		}
	}
	g.RowOpEnd(d0, d0+rows)

	g.RowOpBegin(targetBase, targetBase+rows)
	for i := 0; i < rows; i++ {
		g.RowSwap(targetBase+i, d0+i)
	}
	g.RowOpEnd(targetBase, targetBase+rows)

	g.RemoveLastRows(rows)
}
