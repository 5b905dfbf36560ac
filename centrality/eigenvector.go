package centrality

import (
	"math"

	"github.com/katalvlaran/commtree/core"
)

// Power-iteration parameters. The tolerance bounds the L∞ change between
// sweeps; the budget is generous because convergence degrades on nearly
// bipartite graphs.
const (
	evTolerance = 1e-12
	evMaxSweeps = 10000
)

// Eigenvector computes eigenvector centrality for every vertex using
// power iteration on the adjacency matrix, scaled so the maximum
// component equals 1.
//
// A graph with no edges has the zero vector as its centrality.
// Returns ErrNoConvergence if the iteration budget is exhausted.
// Complexity: O(sweeps·(V+E)) time, O(V) memory.
func Eigenvector(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	x := make([]float64, n)
	if n == 0 {
		return x, nil
	}
	if g.EdgeCount() == 0 {
		return x, nil // zero matrix: centrality undefined, report zeros
	}

	// Start from the uniform vector; it has non-zero overlap with the
	// dominant eigenvector of a non-negative matrix.
	for i := range x {
		x[i] = 1
	}
	next := make([]float64, n)

	for sweep := 0; sweep < evMaxSweeps; sweep++ {
		// next = (A+I)·x — the +I shift keeps the Perron root strictly
		// dominant on bipartite graphs, where A alone oscillates.
		var peak float64
		for i := 0; i < n; i++ {
			sum := x[i]
			for _, j := range g.Neighbors(i) {
				sum += x[j]
			}
			next[i] = sum
			if a := math.Abs(sum); a > peak {
				peak = a
			}
		}
		// Scale so the largest component is 1, then test convergence.
		var diff float64
		for i := 0; i < n; i++ {
			next[i] /= peak
			if d := math.Abs(next[i] - x[i]); d > diff {
				diff = d
			}
		}
		x, next = next, x
		if diff < evTolerance {
			return x, nil
		}
	}

	return nil, ErrNoConvergence
}
