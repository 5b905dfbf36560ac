// Package core defines the Graph and Builder types and their sentinel errors.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates a vertex label was the empty string.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrIndexRange indicates a vertex index outside [0, VertexCount).
	ErrIndexRange = errors.New("core: vertex index out of range")

	// ErrEmptySubset indicates Induced was called with an empty vertex set.
	ErrEmptySubset = errors.New("core: induced subset is empty")
)

// Graph is an immutable, undirected, unweighted simple graph.
//
// Vertices carry a stable string label and a dense integer index assigned
// in insertion order. Edges are stored once as {min, max} index pairs.
// All accessors return data in deterministic (sorted) order.
type Graph struct {
	labels []string       // index → label
	index  map[string]int // label → index
	adj    [][]int        // index → sorted neighbor indices
	edges  [][2]int       // sorted edge list, each edge u < v

	// parent is non-nil for induced subgraphs and maps local indices back
	// to the graph the subgraph was carved from.
	parent    *Graph
	parentIdx []int // local index → parent index
}

// Builder accumulates vertices and edges for a Graph.
//
// The zero value is not usable; create one with NewBuilder. A Builder is
// single-goroutine; the Graph it produces is safe to share.
type Builder struct {
	labels []string
	index  map[string]int
	nbrs   []map[int]struct{} // index → neighbor set (dedup)
}
