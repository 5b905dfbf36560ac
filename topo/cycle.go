package topo

import "github.com/katalvlaran/commtree/core"

// HasCycle reports whether g contains at least one cycle, i.e. whether g
// is not a forest. A nil or empty graph is cycle-free.
//
// The check unions the endpoints of every edge; an edge whose endpoints
// already share a root closes a cycle. Because core.Graph is simple
// (no loops, no parallel edges), this is exact.
// Complexity: O(V + E·α(V)) time, O(V) memory.
func HasCycle(g *core.Graph) bool {
	if g == nil {
		return false
	}
	uf := newUnionFind(g.VertexCount())
	for _, e := range g.Edges() {
		if !uf.union(e[0], e[1]) {
			return true // endpoints already connected: back edge
		}
	}

	return false
}

// unionFind is a classic disjoint-set forest with path halving and
// union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// find returns the root of x, halving the path on the way up.
func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets of a and b; it returns false when they already
// share a root (i.e. the edge {a,b} would close a cycle).
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]

	return true
}
