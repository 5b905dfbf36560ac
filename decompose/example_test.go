package decompose_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/commtree/decompose"
	"github.com/katalvlaran/commtree/gen"
)

// ExampleDecompose decomposes two 5-cliques joined by a bridge. The
// bridge endpoints carry the highest degree and are traced into their
// clique communities.
func ExampleDecompose() {
	g, err := gen.TwoCliquesBridge(5)
	if err != nil {
		panic(err)
	}

	res, err := decompose.Decompose(g, decompose.WithBinWidth(2))
	if err != nil {
		panic(err)
	}

	res.Root.Walk(func(n *decompose.Node) {
		fmt.Printf("%s: %d vertices, leaf=%v\n", n.Lineage, n.VertexCount, n.IsLeaf)
	})

	labels := make([]string, 0, len(res.Trace))
	for label := range res.Trace {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Printf("%s traced to %s\n", label, res.Trace[label])
	}

	// Output:
	// 0: 10 vertices, leaf=false
	// 1: 5 vertices, leaf=true
	// 2: 5 vertices, leaf=true
	// v4 traced to 1
	// v5 traced to 2
}
