package core

import (
	"fmt"
	"sort"
)

// VertexCount reports the number of vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.labels) }

// EdgeCount reports the number of undirected edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Label returns the label of vertex i.
// Callers must pass a valid index; see Index for lookups by label.
func (g *Graph) Label(i int) string { return g.labels[i] }

// Labels returns a copy of all vertex labels in index order.
// Complexity: O(V)
func (g *Graph) Labels() []string {
	return append([]string(nil), g.labels...)
}

// Index returns the dense index of label, and whether it exists.
// Complexity: O(1)
func (g *Graph) Index(label string) (int, bool) {
	i, ok := g.index[label]
	return i, ok
}

// Degree returns the degree of vertex i, or ErrIndexRange.
// Complexity: O(1)
func (g *Graph) Degree(i int) (int, error) {
	if i < 0 || i >= len(g.adj) {
		return 0, fmt.Errorf("core: Degree(%d): %w", i, ErrIndexRange)
	}
	return len(g.adj[i]), nil
}

// Degrees returns the degree of every vertex in index order.
// Complexity: O(V)
func (g *Graph) Degrees() []int {
	degs := make([]int, len(g.adj))
	for i := range g.adj {
		degs[i] = len(g.adj[i])
	}
	return degs
}

// Neighbors returns the sorted neighbor indices of vertex i.
// The returned slice is owned by the Graph and must not be modified.
// Complexity: O(1)
func (g *Graph) Neighbors(i int) []int { return g.adj[i] }

// HasEdge reports whether the undirected edge {u, v} exists.
// Complexity: O(log d(u))
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= len(g.adj) || v >= len(g.adj) {
		return false
	}
	nb := g.adj[u]
	k := sort.SearchInts(nb, v)
	return k < len(nb) && nb[k] == v
}

// Edges returns a copy of the sorted edge list as {u, v} index pairs, u < v.
// Complexity: O(E)
func (g *Graph) Edges() [][2]int {
	return append([][2]int(nil), g.edges...)
}

// EdgeLabels returns the edge list as {fromLabel, toLabel} pairs, in the
// same deterministic order as Edges.
// Complexity: O(E)
func (g *Graph) EdgeLabels() [][2]string {
	out := make([][2]string, len(g.edges))
	for i, e := range g.edges {
		out[i] = [2]string{g.labels[e[0]], g.labels[e[1]]}
	}
	return out
}

// Induced builds the subgraph induced by the given vertex indices.
//
// Duplicates are collapsed; the subset is sorted ascending, and local
// indices 0..k-1 follow that order, preserving the parent's relative
// vertex order. The result is a fresh, independently owned Graph.
// Returns ErrEmptySubset or ErrIndexRange on bad input.
// Complexity: O(k·log k + Σ d(v))
func (g *Graph) Induced(vertices []int) (*Graph, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptySubset
	}
	subset := append([]int(nil), vertices...)
	sort.Ints(subset)
	// collapse duplicates in place
	w := 0
	for r := 0; r < len(subset); r++ {
		if r > 0 && subset[r] == subset[r-1] {
			continue
		}
		subset[w] = subset[r]
		w++
	}
	subset = subset[:w]

	local := make(map[int]int, len(subset)) // parent index → local index
	for li, pi := range subset {
		if pi < 0 || pi >= len(g.labels) {
			return nil, fmt.Errorf("core: Induced: vertex %d: %w", pi, ErrIndexRange)
		}
		local[pi] = li
	}

	sub := &Graph{
		labels:    make([]string, len(subset)),
		index:     make(map[string]int, len(subset)),
		adj:       make([][]int, len(subset)),
		parent:    g,
		parentIdx: subset,
	}
	for li, pi := range subset {
		sub.labels[li] = g.labels[pi]
		sub.index[g.labels[pi]] = li
	}
	for li, pi := range subset {
		for _, pnb := range g.adj[pi] {
			lnb, ok := local[pnb]
			if !ok {
				continue // neighbor outside the subset
			}
			sub.adj[li] = append(sub.adj[li], lnb)
			if li < lnb {
				sub.edges = append(sub.edges, [2]int{li, lnb})
			}
		}
	}
	// adjacency inherits parent order, already ascending per vertex;
	// edge list is emitted in ascending (u, v) order by construction.
	return sub, nil
}

// ParentIndex maps local vertex i of an induced subgraph back to its
// index in the parent graph. For a root graph it returns i unchanged.
func (g *Graph) ParentIndex(i int) int {
	if g.parentIdx == nil {
		return i
	}
	return g.parentIdx[i]
}
