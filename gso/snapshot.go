package gso

// Snapshot is a read-only copy of the basis and its GSO tables, suitable
// for logging or test assertions without holding a reference into engine
// internals. It mirrors the pattern mat.Dense.CloneFrom uses to hand
// callers an independent copy of decomposition output.
type Snapshot struct {
	B  [][]string  // basis rows, decimal
	Mu [][]float64 // Mu[i] has length i
	R  [][]float64 // R[i] has length i+1
}

// Snapshot captures every row up to D(), lazily extending the GSO state
// as needed to fill in Mu and R.
func (g *GSO) Snapshot() Snapshot {
	d := g.b.NRows()
	n := g.b.NCols()
	s := Snapshot{B: make([][]string, d), Mu: make([][]float64, d), R: make([][]float64, d)}
	for i := 0; i < d; i++ {
		s.B[i] = make([]string, n)
		for j := 0; j < n; j++ {
			s.B[i][j] = g.b.Row(i).At(j).String()
		}
		s.Mu[i] = make([]float64, i)
		for j := 0; j < i; j++ {
			s.Mu[i][j] = g.GetMu(i, j)
		}
		s.R[i] = make([]float64, i+1)
		for j := 0; j <= i; j++ {
			s.R[i][j] = g.GetR(i, j)
		}
	}
	return s
}
