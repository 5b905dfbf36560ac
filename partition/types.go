// Package partition defines the Algorithm selector, sentinel errors, and
// the Communities dispatch entry point.
package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/commtree/core"
)

// Sentinel errors for partitioning.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("partition: graph is nil")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm
	// selector; the wrapping error names the offending value.
	ErrUnknownAlgorithm = errors.New("partition: unknown algorithm")

	// ErrNoConvergence is returned when the spectral leading-eigenvector
	// iteration fails to converge within its budget.
	ErrNoConvergence = errors.New("partition: leading eigenvector did not converge")
)

// Algorithm selects the community-detection method.
type Algorithm int

const (
	// FastMultilevel is greedy multilevel modularity optimization (Louvain).
	FastMultilevel Algorithm = iota
	// SpectralLeadingEigenvector is Newman's leading-eigenvector method.
	SpectralLeadingEigenvector
)

// Canonical string names of the algorithms.
const (
	nameFastMultilevel = "fast-multilevel"
	nameSpectral       = "spectral-leading-eigenvector"
)

// String returns the canonical name of a.
func (a Algorithm) String() string {
	switch a {
	case FastMultilevel:
		return nameFastMultilevel
	case SpectralLeadingEigenvector:
		return nameSpectral
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a canonical name to its Algorithm, or returns
// ErrUnknownAlgorithm naming the offending value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case nameFastMultilevel:
		return FastMultilevel, nil
	case nameSpectral:
		return SpectralLeadingEigenvector, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Communities partitions the vertex set of g with the selected algorithm
// and returns the blocks as slices of vertex indices.
//
// Blocks are ordered by their smallest member, members ascending; their
// union covers every vertex exactly once. A graph the algorithm declines
// to split is returned as a single whole-graph block.
func Communities(g *core.Graph, algo Algorithm) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	switch algo {
	case FastMultilevel:
		return louvain(g), nil
	case SpectralLeadingEigenvector:
		return leadingEigenvector(g)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo.String())
	}
}

// groupByMembership converts a membership vector (vertex → community id)
// into ordered blocks: by smallest member, members ascending.
func groupByMembership(membership []int) [][]int {
	first := make(map[int]int) // community id → position in blocks
	var blocks [][]int
	for v, c := range membership {
		pos, ok := first[c]
		if !ok {
			pos = len(blocks)
			first[c] = pos
			blocks = append(blocks, nil)
		}
		blocks[pos] = append(blocks[pos], v)
	}
	return blocks
}
