// Package partition produces vertex partitions of a core.Graph for the
// community decomposer.
//
// Two algorithms are provided behind one dispatch point, Communities:
//
//   - FastMultilevel — greedy multilevel modularity optimization
//     (Louvain): repeated local-moving sweeps followed by community
//     aggregation into super-vertices, until modularity stops improving.
//   - SpectralLeadingEigenvector — Newman's leading-eigenvector method:
//     recursive bisection by the sign pattern of the dominant
//     eigenvector of the (generalized) modularity matrix, computed
//     matrix-free by shifted power iteration.
//
// Both algorithms are deterministic: vertices are scanned in ascending
// index order, ties break toward the smaller community, and the returned
// blocks are ordered by their smallest member with members ascending.
// The union of the returned blocks always covers the vertex set exactly
// once; a graph the algorithm cannot split comes back as one block.
//
// Failures of the spectral iteration (ErrNoConvergence) are returned to
// the caller unfiltered — the decomposer treats them as fatal.
package partition
