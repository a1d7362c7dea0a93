// Package gso implements the incremental Gram-Schmidt orthogonalization
// engine for integer lattice bases: given an ordered sequence of integer
// row vectors, it maintains the orthogonalization coefficients mu(i,j) and
// the squared Gram-Schmidt norms r(i,i), lazily and incrementally, across
// in-place row operations driven by an external reduction algorithm (LLL,
// BKZ and friends, which this package does not implement).
//
// The engine mediates between three representations of the basis: the
// exact integer rows (latvec.Matrix of bigz.Int), an optional exact
// integer Gram matrix, and a floating image used for the GSO recursion
// itself (bigf.Float, optionally held in a per-row scaled domain via
// row_expo). GSO is single-threaded: callers own exclusive access for the
// engine's lifetime.
package gso

import (
	"math"

	"github.com/flintgso/latgso/bigf"
	"github.com/flintgso/latgso/bigz"
	"github.com/flintgso/latgso/latvec"
)

// GSO is the incremental orthogonalization engine over an integer basis.
type GSO struct {
	cfg Config

	b     *latvec.Matrix
	u     *latvec.Matrix // nil unless cfg.transformEnabled
	uInvT *latvec.Matrix // nil unless cfg.invTransformEnabled

	bf      [][]*bigf.Float // nil when cfg.intGram; bf[i] has b.NCols() entries
	rowExpo []int           // nil unless cfg.rowExpoEnabled

	g  *latvec.Gram // nil unless cfg.intGram
	gf *triFloat    // nil when cfg.intGram; diagonal (Gram-shaped)

	mu *triFloat // strictly lower: mu.rows[i] has length i
	r  *triFloat // diagonal: r.rows[i] has length i+1

	nKnownRows   int
	nSourceRows  int
	nKnownCols   int
	initRowSize  []int
	gsoValidCols []int
	colsLocked   bool

	inRowOp               bool
	rowOpFirst, rowOpLast int
}

// New constructs a GSO engine over the integer basis b. b's dimensions at
// construction time fix d (rows) and the column allocation; New does not
// discover any rows — discovery happens lazily the first time a query
// touches a row.
func New(b *latvec.Matrix, opts ...Option) (*GSO, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	d, n := b.NRows(), b.NCols()

	g := &GSO{
		cfg:          cfg,
		b:            b,
		initRowSize:  make([]int, d),
		gsoValidCols: make([]int, d),
		colsLocked:   cfg.colsLocked,
		mu:           newTriFloat(d, false),
		r:            newTriFloat(d, true),
	}
	for i := range g.initRowSize {
		g.initRowSize[i] = n
	}

	if cfg.transformEnabled {
		g.u = latvec.NewMatrix(d, d)
		setIdentity(g.u)
	}
	if cfg.invTransformEnabled {
		g.uInvT = latvec.NewMatrix(d, d)
		setIdentity(g.uInvT)
	}
	if cfg.intGram {
		g.g = latvec.NewGram(d)
	} else {
		g.bf = make([][]*bigf.Float, d)
		for i := range g.bf {
			g.bf[i] = newNaNRow(n)
		}
		g.gf = newTriFloat(d, true)
		if cfg.rowExpoEnabled {
			g.rowExpo = make([]int, d)
		}
	}
	return g, nil
}

func setIdentity(m *latvec.Matrix) {
	for i := 0; i < m.NRows() && i < m.NCols(); i++ {
		m.Row(i).Set(i, bigz.NewInt(1))
	}
}

// D returns the current dimension (number of rows) of the basis.
func (g *GSO) D() int { return g.b.NRows() }

// BNRows returns b's row count, equal to D().
func (g *GSO) BNRows() int { return g.b.NRows() }

// BNCols returns b's column count.
func (g *GSO) BNCols() int { return g.b.NCols() }

// NKnownRows returns n_known_rows.
func (g *GSO) NKnownRows() int { return g.nKnownRows }

// NKnownCols returns n_known_cols.
func (g *GSO) NKnownCols() int { return g.nKnownCols }

// GSOValidCols returns gso_valid_cols[i], the width of the up-to-date
// mu/r prefix for row i.
func (g *GSO) GSOValidCols(i int) int { return g.gsoValidCols[i] }

// discoverRow brings every row up to and including i into the "known"
// state. n_known_rows only ever increases here; move_row,
// remove_last_rows and unlock_cols are the operations that can lower it.
func (g *GSO) discoverRow(i int) {
	for row := g.nKnownRows; row <= i; row++ {
		g.nKnownRows = row + 1
		if !g.colsLocked {
			g.nSourceRows = g.nKnownRows
			if g.initRowSize[row] > g.nKnownCols {
				g.nKnownCols = g.initRowSize[row]
			}
		}
		if g.cfg.intGram {
			g.initGramRowExact(row)
		} else {
			g.updateBf(row)
			g.gf.InvalidateAll(row)
		}
		g.gsoValidCols[row] = 0
	}
}

// initGramRowExact fills g[row, 0..row] with exact inner products, the
// int_gram branch of discover_row.
func (g *GSO) initGramRowExact(row int) {
	n := g.b.NCols()
	for j := 0; j <= row; j++ {
		g.g.SetSym(row, j, dotProduct(g.b.Row(row), g.b.Row(j), n))
	}
}

func dotProduct(a, c *latvec.Vector, n int) *bigz.Int {
	sum := bigz.NewInt(0)
	for k := 0; k < n; k++ {
		sum.AddMul(a.At(k), c.At(k))
	}
	return sum
}

// updateBf refreshes bf[i] from b[i]. When row_expo is enabled each column
// is converted via to_float_with_exponent and then renormalized to the
// row's maximum exponent; otherwise the conversion is exact to the
// precision of F.
func (g *GSO) updateBf(i int) {
	n := g.b.NCols()
	row := g.b.Row(i)
	if !g.cfg.rowExpoEnabled {
		for j := 0; j < n; j++ {
			g.bf[i][j] = bigf.New().SetInt(row.At(j))
		}
		return
	}
	mant := make([]float64, n)
	expo := make([]int, n)
	maxExpo := 0
	for j := 0; j < n; j++ {
		m, e := row.At(j).ToFloatWithExponent()
		mant[j], expo[j] = m, e
		if e > maxExpo {
			maxExpo = e
		}
	}
	g.rowExpo[i] = maxExpo
	for j := 0; j < n; j++ {
		g.bf[i][j] = bigf.New().SetFloat64(math.Ldexp(mant[j], expo[j]-maxExpo))
	}
}

// gram returns gram(i,j): the exact g(i,j) under int_gram, or the scaled
// floating gf(i,j), recomputing from bf and caching it if the NaN
// sentinel is present.
func (g *GSO) gram(i, j int) *bigf.Float {
	if g.cfg.intGram {
		return bigf.New().SetInt(g.g.Sym(i, j))
	}
	cell := g.gf.Sym(i, j)
	if cell.IsNaN() {
		cell.Set(g.computeGf(i, j))
	}
	return cell.Clone()
}

func (g *GSO) computeGf(i, j int) *bigf.Float {
	n := g.b.NCols()
	sum := bigf.New()
	prod := bigf.New()
	for k := 0; k < n; k++ {
		prod.Mul(g.bf[i][k], g.bf[j][k])
		sum.Add(sum, prod)
	}
	return sum
}

// UpdateGSORow implements update_gso_row(i, lastJ): it brings
// mu[i,0..lastJ] and r[i,0..lastJ] up to date, discovering row i
// first if needed. It returns false iff the recursion hits a non-finite
// mu (division by r(j,j) = 0), leaving gso_valid_cols[i] at the last
// successfully computed column. Calling it twice with the same bounds is
// a no-op the second time (gso_valid_cols already covers the range).
func (g *GSO) UpdateGSORow(i, lastJ int) bool {
	sourceRows := g.nSourceRows
	if i >= g.nKnownRows && !g.colsLocked {
		sourceRows = i + 1 // what discoverRow(i) will set n_source_rows to
	}
	if i < 0 || lastJ < 0 || lastJ >= sourceRows || lastJ > i {
		panic(ErrGSOPrecondition)
	}
	if i >= g.nKnownRows {
		g.discoverRow(i)
	}
	for j := g.gsoValidCols[i]; j <= lastJ; j++ {
		// The sum below reads mu(j,k) from row j. When j < i that is a
		// foreign row that must already be valid through its own
		// diagonal; when j == i it is this same row's data, already
		// fresh from the earlier iterations of this call.
		if j > 0 && j < i && g.gsoValidCols[j] < j {
			panic(ErrGSOPrecondition)
		}
		t := g.gram(i, j)
		for k := 0; k < j; k++ {
			prod := bigf.New().Mul(g.mu.At(j, k), g.r.At(i, k))
			t = bigf.New().Sub(t, prod)
		}
		g.r.At(i, j).Set(t)
		if i > j {
			if g.gsoValidCols[j] <= j {
				panic(ErrGSOPrecondition)
			}
			muVal := bigf.New().Quo(t, g.r.At(j, j))
			g.mu.At(i, j).Set(muVal)
			if muVal.IsNaN() {
				g.gsoValidCols[i] = j
				return false
			}
		}
	}
	g.gsoValidCols[i] = lastJ + 1
	return true
}

// ensureValid lazily extends row i's GSO prefix to cover column j, the
// implicit extension every read-only query performs. Earlier rows the
// recursion reads from are brought up to date through their diagonal first.
func (g *GSO) ensureValid(i, j int) {
	if j >= g.gsoValidCols[i] {
		for k := 0; k < i && k <= j; k++ {
			if g.gsoValidCols[k] <= k {
				g.UpdateGSORow(k, k)
			}
		}
		g.UpdateGSORow(i, j)
	}
}

// GetMuExp implements get_mu_exp(i,j): the stored coefficient together
// with the exponent to apply on top of it. Because mu(i,j) =
// r(i,j)/r(j,j) and r's stored scale is row_expo[i]+row_expo[j], mu's
// scale is their *difference*, row_expo[i]-row_expo[j] — see DESIGN.md for
// the derivation, which is a deliberate refinement of treating mu and r
// identically for exponent-scaling purposes.
func (g *GSO) GetMuExp(i, j int) (coeff float64, expo int) {
	g.ensureValid(i, j)
	v := g.mu.At(i, j).Float64()
	if g.cfg.rowExpoEnabled {
		return v, g.rowExpo[i] - g.rowExpo[j]
	}
	return v, 0
}

// GetRExp implements get_r_exp(i,j): the stored coefficient together with
// the exponent row_expo[i]+row_expo[j] to apply on top of it.
func (g *GSO) GetRExp(i, j int) (coeff float64, expo int) {
	g.ensureValid(i, j)
	v := g.r.At(i, j).Float64()
	if g.cfg.rowExpoEnabled {
		return v, g.rowExpo[i] + g.rowExpo[j]
	}
	return v, 0
}

// GetMu implements get_mu(i,j): the true-domain coefficient.
func (g *GSO) GetMu(i, j int) float64 {
	c, e := g.GetMuExp(i, j)
	return math.Ldexp(c, e)
}

// GetR implements get_r(i,j): the true-domain coefficient.
func (g *GSO) GetR(i, j int) float64 {
	c, e := g.GetRExp(i, j)
	return math.Ldexp(c, e)
}

// GetMaxMuExp implements get_max_mu_exp(i, nCols): the maximum, over
// j in [0, min(nCols,i)), of exponent(mu(i,j)) plus the mu exponent pair.
func (g *GSO) GetMaxMuExp(i, nCols int) int {
	limit := nCols
	if limit > i {
		limit = i
	}
	best := 0
	found := false
	for j := 0; j < limit; j++ {
		c, e := g.GetMuExp(i, j)
		_, fexp := math.Frexp(c)
		total := fexp + e
		if !found || total > best {
			best, found = total, true
		}
	}
	return best
}

// GetMaxGram implements get_max_gram(): the maximum diagonal entry of the
// Gram matrix in the true domain.
func (g *GSO) GetMaxGram() float64 {
	if g.nKnownRows == 0 {
		return 0
	}
	max := math.Inf(-1)
	for i := 0; i < g.nKnownRows; i++ {
		var v float64
		if g.cfg.intGram {
			v = bigf.New().SetInt(g.g.Sym(i, i)).Float64()
		} else {
			v = g.gram(i, i).Float64()
			if g.cfg.rowExpoEnabled {
				v = math.Ldexp(v, 2*g.rowExpo[i])
			}
		}
		if v > max {
			max = v
		}
	}
	return max
}

// GetMaxBstar implements get_max_bstar(): the maximum diagonal entry of r
// in the true domain, i.e. the longest Gram-Schmidt vector's squared norm.
func (g *GSO) GetMaxBstar() float64 {
	if g.nKnownRows == 0 {
		return 0
	}
	max := math.Inf(-1)
	for i := 0; i < g.nKnownRows; i++ {
		v := g.GetR(i, i)
		if v > max {
			max = v
		}
	}
	return max
}
