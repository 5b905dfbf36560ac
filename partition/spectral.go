package partition

import (
	"math"

	"github.com/katalvlaran/commtree/core"
)

// Shifted power-iteration parameters for the modularity matrix.
const (
	leTolerance = 1e-10
	leMaxSweeps = 100000
	// leSplitTol guards the indivisibility test: a split must improve
	// modularity by more than this to be accepted.
	leSplitTol = 1e-12
)

// leadingEigenvector partitions g with Newman's leading-eigenvector
// method: recursively bisect vertex groups by the sign pattern of the
// dominant eigenvector of the generalized modularity matrix B(S), until
// every group is indivisible (non-positive leading eigenvalue or no
// modularity gain).
//
// The matrix is never materialized; each multiplication uses
//
//	(B(S)·x)_i = Σ_{j∈S,j~i} x_j − k_i·(Σ_{j∈S} k_j x_j)/2m − r_i·x_i,
//
// where r_i is the row sum of B over S, subtracted so each bisection
// optimizes modularity of the split independently of the rest.
// Complexity: O(groups·sweeps·(V+E)) time, O(V) memory.
func leadingEigenvector(g *core.Graph) ([][]int, error) {
	n := g.VertexCount()
	if n == 0 {
		return nil, nil
	}
	m := g.EdgeCount()
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	if m == 0 {
		return [][]int{all}, nil // no edges: nothing to optimize
	}

	degs := g.Degrees()
	sp := &splitter{g: g, degs: degs, m2: 2 * float64(m)}

	// Explicit work stack of groups still to try splitting.
	var final [][]int
	stack := [][]int{all}
	for len(stack) > 0 {
		group := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		left, right, err := sp.bisect(group)
		if err != nil {
			return nil, err
		}
		if left == nil {
			final = append(final, group) // indivisible
			continue
		}
		stack = append(stack, right, left)
	}

	// Restore deterministic ordering: by smallest member.
	membership := make([]int, n)
	for c, group := range final {
		for _, v := range group {
			membership[v] = c
		}
	}

	return groupByMembership(membership), nil
}

// splitter carries the whole-graph quantities shared by every bisection.
type splitter struct {
	g    *core.Graph
	degs []int
	m2   float64 // 2m of the whole input graph
}

// bisect attempts to split group by the dominant eigenvector of B(group).
// It returns (nil, nil, nil) when the group is indivisible, otherwise the
// two sign classes. Groups of size < 2 are trivially indivisible.
func (sp *splitter) bisect(group []int) ([]int, []int, error) {
	k := len(group)
	if k < 2 {
		return nil, nil, nil
	}

	local := make(map[int]int, k) // graph index → position in group
	for p, v := range group {
		local[v] = p
	}

	// Row sums r_i of B over the group: deg_S(i) − k_i·K_S/2m.
	var groupDeg float64 // K_S = Σ_{j∈S} k_j
	for _, v := range group {
		groupDeg += float64(sp.degs[v])
	}
	row := make([]float64, k)
	inDeg := make([]float64, k) // neighbors inside the group
	for p, v := range group {
		for _, u := range sp.g.Neighbors(v) {
			if _, ok := local[u]; ok {
				inDeg[p]++
			}
		}
		row[p] = inDeg[p] - float64(sp.degs[v])*groupDeg/sp.m2
	}

	// Shift α ≥ ρ(B(S)) so that power iteration on B+αI converges to the
	// algebraically largest eigenvalue (Gershgorin bound on row sums).
	var alpha float64
	for p, v := range group {
		bound := inDeg[p] + float64(sp.degs[v])*groupDeg/sp.m2 + math.Abs(row[p])
		if bound > alpha {
			alpha = bound
		}
	}

	mul := func(x, dst []float64) {
		var kx float64 // Σ k_j·x_j over the group
		for p, v := range group {
			kx += float64(sp.degs[v]) * x[p]
		}
		for p, v := range group {
			var axp float64
			for _, u := range sp.g.Neighbors(v) {
				if q, ok := local[u]; ok {
					axp += x[q]
				}
			}
			dst[p] = axp - float64(sp.degs[v])*kx/sp.m2 - row[p]*x[p] + alpha*x[p]
		}
	}

	// Power iteration. The start vector breaks symmetry by position so
	// identical runs stay bit-identical.
	x := make([]float64, k)
	for p := range x {
		x[p] = 1 + float64(p%7)/8
	}
	next := make([]float64, k)
	lambda := 0.0
	converged := false
	for sweep := 0; sweep < leMaxSweeps; sweep++ {
		mul(x, next)
		var peak float64
		for p := range next {
			if a := math.Abs(next[p]); a > peak {
				peak = a
			}
		}
		if peak == 0 {
			return nil, nil, nil // B is the zero map on this group
		}
		var diff float64
		for p := range next {
			next[p] /= peak
			if d := math.Abs(next[p] - x[p]); d > diff {
				diff = d
			}
		}
		x, next = next, x
		lambda = peak - alpha
		if diff < leTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return nil, nil, ErrNoConvergence
	}

	// Non-positive leading eigenvalue: group is indivisible.
	if lambda <= leSplitTol {
		return nil, nil, nil
	}

	// Split by sign and verify the modularity gain ΔQ = sᵀB(S)s / 4m > 0.
	s := make([]float64, k)
	var left, right []int
	for p, v := range group {
		if x[p] >= 0 {
			s[p] = 1
			left = append(left, v)
		} else {
			s[p] = -1
			right = append(right, v)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return nil, nil, nil // eigenvector is single-signed
	}
	mul(s, next)
	var gain float64
	for p := range s {
		gain += s[p] * (next[p] - alpha*s[p])
	}
	gain /= 2 * sp.m2
	if gain <= leSplitTol {
		return nil, nil, nil
	}

	return left, right, nil
}
