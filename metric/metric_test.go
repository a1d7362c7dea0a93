package metric

import (
	"math"
	"testing"

	"github.com/flintgso/latgso/bigz"
	"github.com/flintgso/latgso/gso"
	"github.com/flintgso/latgso/internal/floatutil"
	"github.com/flintgso/latgso/latvec"
)

const tol = 1e-9

func approxEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !floatutil.EqualWithinAbsOrRel(got, want, tol, tol) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// orthogonalBasis returns a diagonal basis (4,1,1,... already orthogonal) so
// every metric has a closed form: r(i,i) = d_i^2, mu is identically zero.
func orthogonalBasis(diag ...int64) *gso.GSO {
	d := len(diag)
	m := latvec.NewMatrix(d, d)
	for i, v := range diag {
		m.Row(i).Set(i, bigz.NewInt(v))
	}
	g, err := gso.New(m)
	if err != nil {
		panic(err)
	}
	for i := 0; i < d; i++ {
		g.UpdateGSORow(i, i)
	}
	return g
}

func TestBasisProfile(t *testing.T) {
	g := orthogonalBasis(4, 1, 9)
	profile := BasisProfile(g, 0, 3)
	want := []float64{math.Log(16), math.Log(1), math.Log(81)}
	if len(profile) != 3 {
		t.Fatalf("len(profile) = %d, want 3", len(profile))
	}
	for i := range want {
		approxEqual(t, "profile", profile[i], want[i])
	}
}

func TestLogDet(t *testing.T) {
	g := orthogonalBasis(4, 1, 9)
	got := LogDet(g, 0, 3)
	want := math.Log(16) + math.Log(1) + math.Log(81)
	approxEqual(t, "LogDet", got, want)
}

func TestLogDetWindow(t *testing.T) {
	g := orthogonalBasis(4, 1, 9)
	got := LogDet(g, 1, 3)
	want := math.Log(1) + math.Log(81)
	approxEqual(t, "LogDet window", got, want)
}

func TestRootDet(t *testing.T) {
	g := orthogonalBasis(4, 4)
	got := RootDet(g, 0, 2)
	approxEqual(t, "RootDet", got, 16)
}

func TestCurrentSlopeFlat(t *testing.T) {
	// A constant profile has zero slope.
	g := orthogonalBasis(4, 4, 4, 4)
	got := CurrentSlope(g, 0, 4)
	approxEqual(t, "CurrentSlope of a flat profile", got, 0)
}

func TestCurrentSlopeSingleElement(t *testing.T) {
	g := orthogonalBasis(4)
	if got := CurrentSlope(g, 0, 1); got != 0 {
		t.Errorf("CurrentSlope over a single element = %v, want 0", got)
	}
}

func TestCurrentSlopeTrend(t *testing.T) {
	// r(i,i) = diag[i]^2, so ln(r(i,i)) = 2*ln(diag[i]). Choosing
	// diag[i] = exp(i+1) makes that series 2, 4, 6, 8: OLS slope exactly 2.
	// diag is scaled up before rounding so the integer quantization error
	// stays far below the tolerance below.
	const scale = 1e6
	g := orthogonalBasis(
		int64(math.Round(scale*math.Exp(1))),
		int64(math.Round(scale*math.Exp(2))),
		int64(math.Round(scale*math.Exp(3))),
		int64(math.Round(scale*math.Exp(4))),
	)
	got := CurrentSlope(g, 0, 4)
	if math.Abs(got-2) > 1e-4 {
		t.Errorf("CurrentSlope = %v, want approximately 2 (rounding r(i,i) to an integer loses some precision)", got)
	}
}

func TestSlidePotential(t *testing.T) {
	g := orthogonalBasis(4, 1, 9, 1)
	// block=2, p=2: total = 2*log_det(0,2) + 1*log_det(2,4).
	got := SlidePotential(g, 0, 4, 2)
	want := 2*(math.Log(16)+math.Log(1)) + 1*(math.Log(81)+math.Log(1))
	approxEqual(t, "SlidePotential", got, want)
}

func TestSlidePotentialWindowOffset(t *testing.T) {
	g := orthogonalBasis(1, 4, 1, 9, 1)
	// Windowed over [1,5) with block=2: identical to the unwindowed case
	// above once s=1 is folded into each sub-block boundary.
	got := SlidePotential(g, 1, 5, 2)
	want := 2*(math.Log(16)+math.Log(1)) + 1*(math.Log(81)+math.Log(1))
	approxEqual(t, "SlidePotential with a nonzero window start", got, want)
}

func TestGaussianHeuristicUpdatesWhenSmaller(t *testing.T) {
	maxDist := math.Inf(1)
	got := GaussianHeuristic(&maxDist, 0, 10, 1, 1)
	if got == math.Inf(1) {
		t.Fatal("GaussianHeuristic should replace an infinite bound")
	}
	if maxDist != got {
		t.Error("GaussianHeuristic should write through the pointer")
	}
}

func TestGaussianHeuristicKeepsSmallerExisting(t *testing.T) {
	maxDist := -1.0
	got := GaussianHeuristic(&maxDist, 0, 10, 1000, 1)
	if got != -1 {
		t.Errorf("GaussianHeuristic should not replace a bound already smaller than the candidate, got %v", got)
	}
}
