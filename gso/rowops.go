package gso

import (
	"github.com/flintgso/latgso/bigf"
	"github.com/flintgso/latgso/bigz"
)

// RowOpBegin opens a bracket over [first, last): every row mutator between
// a matching RowOpBegin/RowOpEnd pair must touch only rows in that range.
func (g *GSO) RowOpBegin(first, last int) {
	if g.inRowOp {
		panic(ErrAlreadyBracketed)
	}
	if first < 0 || last < first || last > g.b.NRows() {
		panic(ErrIndexOutOfRange)
	}
	g.inRowOp = true
	g.rowOpFirst, g.rowOpLast = first, last
}

// RowOpEnd closes the bracket opened by the matching RowOpBegin(first,
// last), refreshing the floating image and invalidating the GSO state
// every row in [first,last) and every row depending on it must now
// recompute.
func (g *GSO) RowOpEnd(first, last int) {
	if !g.inRowOp || first != g.rowOpFirst || last != g.rowOpLast {
		panic(ErrBracketMismatch)
	}
	g.inRowOp = false
	for i := first; i < last; i++ {
		if !g.cfg.intGram {
			g.updateBf(i)
			g.gf.InvalidateAll(i)
			for j := i + 1; j < g.gf.NRows(); j++ {
				g.gf.Sym(j, i).SetNaN()
			}
		}
		g.gsoValidCols[i] = 0
	}
	for i := last; i < g.nKnownRows; i++ {
		if g.gsoValidCols[i] > first {
			g.gsoValidCols[i] = first
		}
	}
}

func (g *GSO) requireBracketed() {
	if !g.inRowOp {
		panic(ErrUnbracketed)
	}
}

func (g *GSO) checkRowPair(i, j int) {
	if i < 0 || i >= g.b.NRows() || j < 0 || j >= g.b.NRows() {
		panic(ErrIndexOutOfRange)
	}
}

// updateGramAddMul applies the exact-Gram update shared by every
// b[i] += k*b[j] mutator (row_add/row_sub are the k = +-1 case;
// row_addmul_si, row_addmul_si_2exp and row_addmul_2exp differ only in how
// k is computed): g[i,i] += 2k*g[i,j] + k^2*g[j,j]; sym_g(i,k') +=
// k*sym_g(j,k') for k' != i. g[i,j] is read before the loop mutates it.
func (g *GSO) updateGramAddMul(i, j int, k *bigz.Int) {
	gii := g.g.Sym(i, i)
	gijOld := bigz.NewFromBigInt(g.g.Sym(i, j).BigInt())
	gjjOld := bigz.NewFromBigInt(g.g.Sym(j, j).BigInt())

	term1 := bigz.NewInt(0).Mul(gijOld, k)
	term1.Add(term1, term1)
	term2 := bigz.NewInt(0).Mul(gjjOld, k)
	term2.Mul(term2, k)
	gii.Add(gii, term1)
	gii.Add(gii, term2)

	for kk := 0; kk < g.nKnownRows; kk++ {
		if kk == i {
			continue
		}
		g.g.Sym(i, kk).AddMul(k, g.g.Sym(j, kk))
	}
}

// RowAdd implements row_add(i,j): b[i] += b[j], mirrored on the
// transform(s) and, under int_gram, on the Gram matrix.
func (g *GSO) RowAdd(i, j int) {
	g.requireBracketed()
	g.checkRowPair(i, j)
	n := g.b.NCols()
	if g.cfg.intGram {
		g.updateGramAddMul(i, j, bigz.NewInt(1))
	}
	g.b.Row(i).Add(g.b.Row(j), n)
	if g.cfg.transformEnabled {
		g.u.Row(i).Add(g.u.Row(j), g.u.NCols())
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.Row(j).Sub(g.uInvT.Row(i), g.uInvT.NCols())
	}
}

// RowSub implements row_sub(i,j): b[i] -= b[j], the mirror image of
// RowAdd.
func (g *GSO) RowSub(i, j int) {
	g.requireBracketed()
	g.checkRowPair(i, j)
	n := g.b.NCols()
	if g.cfg.intGram {
		g.updateGramAddMul(i, j, bigz.NewInt(-1))
	}
	g.b.Row(i).Sub(g.b.Row(j), n)
	if g.cfg.transformEnabled {
		g.u.Row(i).Sub(g.u.Row(j), g.u.NCols())
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.Row(j).Add(g.uInvT.Row(i), g.uInvT.NCols())
	}
}

// RowAddMulSI implements row_addmul_si(i,j,x): b[i] += x*b[j] for a
// machine-word scalar x.
func (g *GSO) RowAddMulSI(i, j int, x int64) {
	g.requireBracketed()
	g.checkRowPair(i, j)
	if x == 0 {
		return
	}
	n := g.b.NCols()
	if g.cfg.intGram {
		g.updateGramAddMul(i, j, bigz.NewInt(x))
	}
	g.b.Row(i).AddMulSi(g.b.Row(j), x, n)
	if g.cfg.transformEnabled {
		g.u.Row(i).AddMulSi(g.u.Row(j), x, g.u.NCols())
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.Row(j).AddMulSi(g.uInvT.Row(i), -x, g.uInvT.NCols())
	}
}

// RowAddMulSI2Exp implements row_addmul_si_2exp(i,j,x,e):
// b[i] += (x<<e)*b[j].
func (g *GSO) RowAddMulSI2Exp(i, j int, x int64, e uint) {
	g.requireBracketed()
	g.checkRowPair(i, j)
	if x == 0 {
		return
	}
	n := g.b.NCols()
	k := bigz.NewInt(0).Lsh(bigz.NewInt(x), e)
	if g.cfg.intGram {
		g.updateGramAddMul(i, j, k)
	}
	g.b.Row(i).AddMulSi2Exp(g.b.Row(j), x, e, n)
	if g.cfg.transformEnabled {
		g.u.Row(i).AddMulSi2Exp(g.u.Row(j), x, e, g.u.NCols())
	}
	if g.cfg.invTransformEnabled {
		g.uInvT.Row(j).AddMulSi2Exp(g.uInvT.Row(i), -x, e, g.uInvT.NCols())
	}
}

// RowAddMul2Exp implements row_addmul_2exp(i,j,x,e): b[i] += (x<<e)*b[j]
// for an arbitrary-precision multiplicand x.
func (g *GSO) RowAddMul2Exp(i, j int, x *bigz.Int, e uint) {
	g.requireBracketed()
	g.checkRowPair(i, j)
	if x.IsZero() {
		return
	}
	n := g.b.NCols()
	k := bigz.NewInt(0).Lsh(x, e)
	if g.cfg.intGram {
		g.updateGramAddMul(i, j, k)
	}
	g.b.Row(i).AddMul2Exp(g.b.Row(j), x, e, n)
	if g.cfg.transformEnabled {
		g.u.Row(i).AddMul2Exp(g.u.Row(j), x, e, g.u.NCols())
	}
	if g.cfg.invTransformEnabled {
		negX := bigz.NewInt(0).Neg(x)
		g.uInvT.Row(j).AddMul2Exp(g.uInvT.Row(i), negX, e, g.uInvT.NCols())
	}
}

// RowAddMulWE implements row_addmul_we(i,j,x,expoAdd): b[i] += (x*2^expoAdd)
// * b[j] for a floating multiplicand x. x is decomposed via SiExp into a
// machine-word (mantissa, expo); the four-way routing is literal:
//
//   - expo == 0 and mantissa == ±1: RowAdd / RowSub.
//   - expo == 0: RowAddMulSI.
//   - force_long: RowAddMulSI2Exp.
//   - otherwise: decompose via ZExp into an exact arbitrary-precision
//     mantissa and route to RowAddMul2Exp.
//
// When SiExp cannot produce an exact int64 mantissa (x needs more
// significant bits than a machine word holds), the first three branches
// are skipped entirely in favor of the ZExp route, since a machine-word
// decomposition of x would not be exact. Both RowAddMulSI2Exp and
// RowAddMul2Exp only take a left shift, so a negative decomposed exponent
// is folded back into the mantissa by rounding rather than represented
// directly.
func (g *GSO) RowAddMulWE(i, j int, x *bigf.Float, expoAdd int) {
	if x.IsNaN() || x.IsZero() {
		return
	}
	if si, e, ok := x.SiExp(expoAdd); ok {
		switch {
		case e == 0 && si == 1:
			g.RowAdd(i, j)
			return
		case e == 0 && si == -1:
			g.RowSub(i, j)
			return
		case e == 0:
			g.RowAddMulSI(i, j, si)
			return
		case g.cfg.rowOpForceLong:
			si, e = foldNegativeShiftSI(si, e)
			g.RowAddMulSI2Exp(i, j, si, uint(e))
			return
		}
	}
	z, e := x.ZExp(expoAdd)
	z, e = foldNegativeShiftZ(z, e)
	g.RowAddMul2Exp(i, j, z, uint(e))
}

// foldNegativeShiftSI rounds mantissa right by -exponent bits (half away
// from zero) to absorb a negative exponent, so the result can be expressed
// as mantissa<<e with e >= 0.
func foldNegativeShiftSI(mantissa int64, exponent int) (int64, int) {
	if exponent >= 0 {
		return mantissa, exponent
	}
	shift := uint(-exponent)
	if shift >= 63 {
		return 0, 0
	}
	abs := uint64(mantissa * sign64(mantissa))
	abs = (abs + 1<<(shift-1)) >> shift
	return int64(abs) * sign64(mantissa), 0
}

func sign64(x int64) int64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// foldNegativeShiftZ is the arbitrary-precision analogue of
// foldNegativeShiftSI: it rounds mantissa right by -exponent bits (half
// away from zero) so the result can be expressed as mantissa<<e, e >= 0.
func foldNegativeShiftZ(mantissa *bigz.Int, exponent int) (*bigz.Int, int) {
	if exponent >= 0 {
		return mantissa, exponent
	}
	shift := uint(-exponent)
	abs := bigz.NewInt(0).Set(mantissa)
	if mantissa.Sign() < 0 {
		abs.Neg(abs)
	}
	rounded := bigz.NewInt(0).Lsh(bigz.NewInt(1), shift-1)
	rounded.Add(rounded, abs)
	rounded.Rsh(rounded, shift)
	if mantissa.Sign() < 0 {
		rounded.Neg(rounded)
	}
	return rounded, 0
}

// RowSwap implements row_swap(i,j) for i < j: exchange b[i] and b[j] (and
// u[i], u[j]); under int_gram, apply the symmetric rearrangement to g,
// otherwise invalidate every gf entry the swap disturbs. Forbidden when
// inv_transform_enabled, which has no supported row_swap formula.
func (g *GSO) RowSwap(i, j int) {
	g.requireBracketed()
	if i >= j {
		panic(ErrOrder)
	}
	g.checkRowPair(i, j)
	if g.cfg.invTransformEnabled {
		panic(ErrRowSwapForbidden)
	}
	g.b.SwapRows(i, j)
	if g.cfg.transformEnabled {
		g.u.SwapRows(i, j)
	}
	if g.cfg.intGram {
		g.g.SwapRows(i, j)
	} else {
		g.bf[i], g.bf[j] = g.bf[j], g.bf[i]
		if g.cfg.rowExpoEnabled {
			g.rowExpo[i], g.rowExpo[j] = g.rowExpo[j], g.rowExpo[i]
		}
		for k := 0; k < g.gf.NRows(); k++ {
			if k == i || k == j {
				continue
			}
			g.gf.Sym(k, i).SetNaN()
			g.gf.Sym(k, j).SetNaN()
		}
		g.gf.InvalidateAll(i)
		g.gf.InvalidateAll(j)
	}
	g.mu.InvalidateAll(i)
	g.mu.InvalidateAll(j)
	g.r.InvalidateAll(i)
	g.r.InvalidateAll(j)
	g.gsoValidCols[i] = 0
	g.gsoValidCols[j] = 0
	for k := j + 1; k < g.nKnownRows; k++ {
		if g.gsoValidCols[k] > i {
			g.gsoValidCols[k] = i
		}
	}
}
