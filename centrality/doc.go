// Package centrality computes topological and centrality metrics over a
// core.Graph: eigenvector, betweenness, and closeness centrality, local
// clustering coefficients, neighborhood connectivity, and the combined
// seven-metric vertex profile used by the community decomposer.
//
// All functions are pure: identical graph and vertex-set inputs yield
// bit-identical outputs across repeated calls. Iteration orders are
// fixed by the graph's dense vertex indices, and floating-point
// accumulation follows a single deterministic order.
//
// Conventions (matching the igraph ones the metric profile was defined
// against):
//
//   - Eigenvector centrality is scaled so the maximum component is 1.
//   - Betweenness counts each unordered vertex pair once.
//   - Closeness of v is (reachable-1)/Σ d(v,u) over reachable u;
//     an isolated vertex scores 0.
//   - Local clustering of a vertex with degree < 2 is 0.
//   - Neighborhood connectivity of an isolated vertex is 0.
//
// Properties assembles the seven-metric profile and applies the
// normalization denominator D = (n-1)(n-2)/2 to the eigenvector and
// betweenness values; graphs with fewer than 3 vertices receive the
// sentinel profile (-1,…,-1) rather than an error.
package centrality
