package topo

import "github.com/katalvlaran/commtree/core"

// IsStar reports whether g is a star: exactly one center vertex adjacent
// to all V-1 others, and no other edges.
//
// Conditions checked, in order:
//  1. E == V-1 (a star is a tree);
//  2. a single vertex counts as a (degenerate) star;
//  3. exactly one vertex has degree V-1.
//
// Complexity: O(V) time, O(1) memory.
func IsStar(g *core.Graph) bool {
	if g == nil {
		return false
	}
	n := g.VertexCount()
	if g.EdgeCount() != n-1 {
		return false
	}
	if n == 1 {
		return true
	}

	centers := 0
	for _, d := range g.Degrees() {
		if d == n-1 {
			centers++
		}
	}

	return centers == 1
}
