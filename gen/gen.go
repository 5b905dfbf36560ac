package gen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/commtree/core"
)

// ErrTooFewVertices is returned when a generator's size parameter is
// below its minimum.
var ErrTooFewVertices = errors.New("gen: too few vertices")

// Minimum sizes per generator (no magic numbers at call sites).
const (
	minComplete = 1
	minPath     = 1
	minCycle    = 3
	minStar     = 2
	minClique   = 2
)

// label is the shared vertex naming scheme: "v<index>".
func label(i int) string { return fmt.Sprintf("v%d", i) }

// Complete builds the complete simple graph K_n (n ≥ 1).
func Complete(n int) (*core.Graph, error) {
	if n < minComplete {
		return nil, fmt.Errorf("gen: Complete(%d): %w", n, ErrTooFewVertices)
	}
	b := core.NewBuilder()
	if _, err := b.AddVertex(label(0)); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := b.AddEdge(label(i), label(j)); err != nil {
				return nil, err
			}
		}
	}
	return b.Build(), nil
}

// Path builds the path graph P_n: v0—v1—…—v(n-1) (n ≥ 1).
func Path(n int) (*core.Graph, error) {
	if n < minPath {
		return nil, fmt.Errorf("gen: Path(%d): %w", n, ErrTooFewVertices)
	}
	b := core.NewBuilder()
	if _, err := b.AddVertex(label(0)); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := b.AddEdge(label(i-1), label(i)); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Cycle builds the cycle graph C_n (n ≥ 3).
func Cycle(n int) (*core.Graph, error) {
	if n < minCycle {
		return nil, fmt.Errorf("gen: Cycle(%d): %w", n, ErrTooFewVertices)
	}
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		if err := b.AddEdge(label(i), label((i+1)%n)); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// Star builds the star S_n: center v0 adjacent to v1..v(n-1) (n ≥ 2).
func Star(n int) (*core.Graph, error) {
	if n < minStar {
		return nil, fmt.Errorf("gen: Star(%d): %w", n, ErrTooFewVertices)
	}
	b := core.NewBuilder()
	for i := 1; i < n; i++ {
		if err := b.AddEdge(label(0), label(i)); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// TwoCliquesBridge builds two disjoint K_k cliques joined by a single
// bridge edge (k ≥ 2): vertices v0..v(k-1) and v(k)..v(2k-1), bridged
// v(k-1)—v(k). The bridge endpoints have the two highest degrees, which
// makes the fixture convenient for key-regulator scenarios.
func TwoCliquesBridge(k int) (*core.Graph, error) {
	if k < minClique {
		return nil, fmt.Errorf("gen: TwoCliquesBridge(%d): %w", k, ErrTooFewVertices)
	}
	b := core.NewBuilder()
	for _, off := range []int{0, k} {
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if err := b.AddEdge(label(off+i), label(off+j)); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := b.AddEdge(label(k-1), label(k)); err != nil {
		return nil, err
	}
	return b.Build(), nil
}
