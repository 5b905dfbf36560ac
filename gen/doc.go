// Package gen builds small deterministic graphs — complete graphs,
// paths, cycles, stars, and the two-cliques-with-bridge fixture — used
// throughout the commtree tests and examples.
//
// All generators label vertices "v0", "v1", … in index order and emit
// edges in lexicographic (i, j) order, so repeated builds are identical.
// Every constructor validates its size parameter and returns only
// sentinel errors; none panic.
package gen
