package core

import (
	"fmt"
	"sort"
)

// NewBuilder returns an empty Builder.
// Complexity: O(1)
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// AddVertex registers label if it is not already present and returns its
// dense index. Adding an existing label is a no-op returning its index.
// Returns ErrEmptyLabel for the empty string.
// Complexity: O(1) amortized.
func (b *Builder) AddVertex(label string) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	if i, ok := b.index[label]; ok {
		return i, nil
	}
	i := len(b.labels)
	b.index[label] = i
	b.labels = append(b.labels, label)
	b.nbrs = append(b.nbrs, make(map[int]struct{}))

	return i, nil
}

// AddEdge registers the undirected edge {from, to}, creating either
// endpoint on first sight. Parallel edges collapse silently; self-loops
// are rejected with ErrSelfLoop.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(from, to string) error {
	if from == to {
		return fmt.Errorf("core: AddEdge(%q, %q): %w", from, to, ErrSelfLoop)
	}
	u, err := b.AddVertex(from)
	if err != nil {
		return err
	}
	v, err := b.AddVertex(to)
	if err != nil {
		return err
	}
	b.nbrs[u][v] = struct{}{}
	b.nbrs[v][u] = struct{}{}

	return nil
}

// Build freezes the accumulated vertices and edges into an immutable
// Graph. The Builder may be reused afterwards; the Graph owns copies.
// Complexity: O(V + E·log E)
func (b *Builder) Build() *Graph {
	n := len(b.labels)
	g := &Graph{
		labels: append([]string(nil), b.labels...),
		index:  make(map[string]int, n),
		adj:    make([][]int, n),
	}
	for label, i := range b.index {
		g.index[label] = i
	}
	for u := 0; u < n; u++ {
		nb := make([]int, 0, len(b.nbrs[u]))
		for v := range b.nbrs[u] {
			nb = append(nb, v)
			if u < v {
				g.edges = append(g.edges, [2]int{u, v})
			}
		}
		sort.Ints(nb)
		g.adj[u] = nb
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i][0] != g.edges[j][0] {
			return g.edges[i][0] < g.edges[j][0]
		}
		return g.edges[i][1] < g.edges[j][1]
	})

	return g
}
