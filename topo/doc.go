// Package topo answers structural yes/no questions about a core.Graph.
//
// HasCycle is the forest test used as the first stopping condition of
// the community decomposition: an acyclic subgraph carries no further
// internal structure worth splitting. IsStar recognizes star topologies
// (one center adjacent to every other vertex).
//
// Both checks are pure and side-effect free.
//
// Complexity:
//
//   - HasCycle: O(V + E·α(V)) time, O(V) memory (union-find).
//   - IsStar:   O(V) time, O(1) memory.
package topo
