// Package core provides the immutable, undirected, unweighted Graph type
// that all commtree algorithms operate on.
//
// A Graph pairs stable string vertex labels with dense integer indices
// (0..n-1, assigned in insertion order) so that algorithm code can work
// on flat slices while callers keep referring to vertices by name.
//
// Graphs are immutable once built: construct them through a Builder,
// then share them freely across goroutines. Induced subgraphs created
// with Graph.Induced are new, independently owned values whose vertices
// are re-indexed densely; Label/ParentIndex bridge back to the parent.
//
// Why immutable?
//
//   - Decomposition visits every subgraph exactly once and never edits
//     it, so copy-on-build is cheaper than locking.
//   - Deterministic iteration — Neighbors and Edges are stored sorted,
//     so every traversal order is reproducible.
//
// Errors:
//
//	ErrEmptyLabel  - vertex label is the empty string.
//	ErrSelfLoop    - an edge's endpoints are the same vertex.
//	ErrIndexRange  - a vertex index is outside [0, VertexCount).
//	ErrEmptySubset - Induced was called with no vertices.
package core
