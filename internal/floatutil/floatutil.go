// Package floatutil holds small float64 helpers: approximate equality (used
// by the gso and metric test suites) and a
// finite check that also treats the bigf NaN sentinel's float64 projection
// (math.NaN()) as not-finite.
package floatutil

import "math"

// EqualWithinAbsOrRel reports whether a and b are equal to within absTol in
// absolute terms, or relTol relative to the larger magnitude. Mirrors the
// absolute-or-relative tolerance pattern used to compare floating GSO output
// against expected values across a wide dynamic range.
func EqualWithinAbsOrRel(a, b, absTol, relTol float64) bool {
	if a == b || math.Abs(a-b) <= absTol {
		return true
	}
	delta := math.Abs(a - b)
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return false
	}
	return delta/denom <= relTol
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
