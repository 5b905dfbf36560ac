package partition

import "github.com/katalvlaran/commtree/core"

// louvain runs greedy multilevel modularity optimization and returns the
// final (top-level) partition as blocks of original vertex indices.
//
// Each level performs local-moving sweeps until no vertex improves
// modularity, then contracts every community into a super-vertex whose
// internal weight becomes a self-loop, and repeats on the contracted
// graph. The level loop stops when contraction no longer merges anything.
//
// Determinism: vertices are scanned in ascending index order; a move
// requires a strictly positive gain, ties keep the lowest community id.
// Complexity: O(levels·sweeps·(V+E)) time, O(V+E) memory.
func louvain(g *core.Graph) [][]int {
	n := g.VertexCount()
	if n == 0 {
		return nil
	}

	// membership[v] = current community of original vertex v.
	membership := make([]int, n)
	for v := range membership {
		membership[v] = v
	}

	work := newWeightedFromCore(g)
	for {
		moved, local := work.localMoving()
		// Fold this level's assignment into the original membership.
		for v := range membership {
			membership[v] = local[membership[v]]
		}
		if !moved {
			break
		}
		contracted, k := work.contract(local)
		if k == work.n {
			break // nothing merged, a further level cannot improve
		}
		work = contracted
	}

	return groupByMembership(membership)
}

// weighted is the mutable working graph of the multilevel loop. Level 0
// copies the unweighted input; deeper levels carry aggregated weights
// and community self-loops.
type weighted struct {
	n     int
	nbr   [][]wedge // adjacency (excluding self-loops)
	loop  []float64 // self-loop weight per vertex
	deg   []float64 // weighted degree: Σ edge weights + 2·loop
	total float64   // m = total edge weight (loops included)
}

type wedge struct {
	to int
	w  float64
}

// newWeightedFromCore copies g into a weighted working graph with unit
// edge weights.
func newWeightedFromCore(g *core.Graph) *weighted {
	n := g.VertexCount()
	wg := &weighted{
		n:    n,
		nbr:  make([][]wedge, n),
		loop: make([]float64, n),
		deg:  make([]float64, n),
	}
	for v := 0; v < n; v++ {
		for _, u := range g.Neighbors(v) {
			wg.nbr[v] = append(wg.nbr[v], wedge{to: u, w: 1})
		}
		wg.deg[v] = float64(len(wg.nbr[v]))
	}
	wg.total = float64(g.EdgeCount())

	return wg
}

// localMoving greedily reassigns vertices to neighboring communities
// while any move strictly increases modularity. It returns whether any
// vertex ended up outside its own singleton community, plus the final
// community id per vertex (compacted to 0..k-1 in order of first use).
func (wg *weighted) localMoving() (bool, []int) {
	comm := make([]int, wg.n)     // vertex → community
	ctot := make([]float64, wg.n) // community → Σ degrees
	for v := 0; v < wg.n; v++ {
		comm[v] = v
		ctot[v] = wg.deg[v]
	}
	if wg.total == 0 {
		return false, compact(comm)
	}

	m2 := 2 * wg.total
	// links[c] accumulates edge weight between the scanned vertex and
	// community c within one step; touched lists the dirty entries.
	links := make([]float64, wg.n)
	var touched []int

	for improved := true; improved; {
		improved = false
		for v := 0; v < wg.n; v++ {
			// Weight from v to each adjacent community.
			touched = touched[:0]
			for _, e := range wg.nbr[v] {
				c := comm[e.to]
				if links[c] == 0 {
					touched = append(touched, c)
				}
				links[c] += e.w
			}

			own := comm[v]
			ctot[own] -= wg.deg[v] // detach v before evaluating gains

			// Gain of joining community c: links[c] - Σtot(c)·deg(v)/2m.
			// Staying put is the baseline with the same formula.
			best, bestGain := own, links[own]-ctot[own]*wg.deg[v]/m2
			for _, c := range touched {
				gain := links[c] - ctot[c]*wg.deg[v]/m2
				if gain > bestGain || (gain == bestGain && c < best) {
					best, bestGain = c, gain
				}
			}

			ctot[best] += wg.deg[v]
			comm[v] = best
			if best != own {
				improved = true
			}

			for _, c := range touched {
				links[c] = 0
			}
		}
	}

	moved := false
	for v, c := range comm {
		if c != v {
			moved = true
			break
		}
	}

	return moved, compact(comm)
}

// compact renumbers community ids to 0..k-1 in order of first appearance.
func compact(comm []int) []int {
	next := 0
	seen := make(map[int]int, len(comm))
	out := make([]int, len(comm))
	for v, c := range comm {
		id, ok := seen[c]
		if !ok {
			id = next
			seen[c] = id
			next++
		}
		out[v] = id
	}
	return out
}

// contract builds the next-level graph: one super-vertex per community,
// aggregated inter-community weights, intra-community weight as a
// self-loop. Returns the contracted graph and the community count.
func (wg *weighted) contract(comm []int) (*weighted, int) {
	k := 0
	for _, c := range comm {
		if c+1 > k {
			k = c + 1
		}
	}
	out := &weighted{
		n:     k,
		nbr:   make([][]wedge, k),
		loop:  make([]float64, k),
		deg:   make([]float64, k),
		total: wg.total,
	}

	members := make([][]int, k) // community → member vertices
	for v, c := range comm {
		members[c] = append(members[c], v)
	}

	agg := make([]float64, k) // reusable row accumulator
	for a := 0; a < k; a++ {
		var rowTouched []int
		for _, v := range members[a] {
			out.loop[a] += wg.loop[v]
			for _, e := range wg.nbr[v] {
				b := comm[e.to]
				if b == a {
					out.loop[a] += e.w / 2 // both endpoints scanned, halve
					continue
				}
				if agg[b] == 0 {
					rowTouched = append(rowTouched, b)
				}
				agg[b] += e.w
			}
		}
		for _, b := range rowTouched {
			out.nbr[a] = append(out.nbr[a], wedge{to: b, w: agg[b]})
			agg[b] = 0
		}
		var sum float64
		for _, e := range out.nbr[a] {
			sum += e.w
		}
		out.deg[a] = sum + 2*out.loop[a]
	}

	return out, k
}
