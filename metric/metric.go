// Package metric computes the derived quantities a reduction driver reads
// off an orthogonalized basis: log-determinant, root-determinant, the
// current profile slope, slide potential, and the Gaussian heuristic
// bound. Each is a thin, read-only function over a *gso.GSO — none of
// them mutate the engine beyond the lazy GSO extension any query triggers.
package metric

import (
	"math"

	"github.com/flintgso/latgso/gso"
)

// lnR returns ln(r(i,i)), computed as ln(coeff) + expo*ln(2) from the
// stored coefficient/exponent pair rather than from the folded true value,
// so the logarithm stays accurate across the wide dynamic range row_expo
// exists to absorb.
func lnR(g *gso.GSO, i int) float64 {
	coeff, expo := g.GetRExp(i, i)
	return math.Log(coeff) + float64(expo)*math.Ln2
}

// BasisProfile returns ln(r(i,i)) for i in [s,e), the raw series
// CurrentSlope regresses over. Exposed directly because a reduction
// driver commonly wants to plot or log the profile itself.
func BasisProfile(g *gso.GSO, s, e int) []float64 {
	profile := make([]float64, 0, e-s)
	for i := s; i < e; i++ {
		profile = append(profile, lnR(g, i))
	}
	return profile
}

// LogDet returns Σ_{i∈[s,e)} log(r(i,i)).
func LogDet(g *gso.GSO, s, e int) float64 {
	var sum float64
	for i := s; i < e; i++ {
		sum += lnR(g, i)
	}
	return sum
}

// RootDet returns exp(LogDet(s,e) / (e-s)), the geometric mean of the
// squared Gram-Schmidt norms r(i,i) over the window.
func RootDet(g *gso.GSO, s, e int) float64 {
	return math.Exp(LogDet(g, s, e) / float64(e-s))
}

// CurrentSlope returns the ordinary-least-squares slope of ln(r(i,i))
// against i over [s,e), in natural log.
func CurrentSlope(g *gso.GSO, s, e int) float64 {
	n := float64(e - s)
	var sumX, sumY, sumXY, sumXX float64
	for i := s; i < e; i++ {
		x := float64(i - s)
		y := lnR(g, i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

// SlidePotential returns Σ_{i=0}^{p-1} (p-i)·LogDet(s+i·block, s+(i+1)·block),
// where p = floor((e-s)/block). The window offset s is folded into each
// sub-block boundary (log_det(i·block,(i+1)·block) only makes sense
// relative to the window start, not lattice index 0, when s != 0).
func SlidePotential(g *gso.GSO, s, e, block int) float64 {
	p := (e - s) / block
	var total float64
	for i := 0; i < p; i++ {
		lo, hi := s+i*block, s+(i+1)*block
		total += float64(p-i) * LogDet(g, lo, hi)
	}
	return total
}

// GaussianHeuristic computes t = Gamma(block/2+1)^(2/block) / pi,
// multiplies by rootDet, scales by 2^-maxDistExpo, multiplies by factor,
// and writes the result into *maxDist if it is smaller than the current
// value. It returns the (possibly updated) *maxDist.
func GaussianHeuristic(maxDist *float64, maxDistExpo int, block int, rootDet, factor float64) float64 {
	t := math.Pow(math.Gamma(float64(block)/2+1), 2/float64(block)) / math.Pi
	bound := t * rootDet * math.Ldexp(1, -maxDistExpo) * factor
	if bound < *maxDist {
		*maxDist = bound
	}
	return *maxDist
}
