package decompose

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/commtree/centrality"
	"github.com/katalvlaran/commtree/core"
	"github.com/katalvlaran/commtree/partition"
)

// Node is one community in the decomposition tree. It is owned
// exclusively by its parent; the root is owned by the Result.
type Node struct {
	// Name is the last lineage segment, or "root" for the root node.
	Name string

	// Lineage uniquely identifies the node's tree position ("0", "2_1_3").
	Lineage string

	// Depth is the recursion depth: 0 for the root, separator count + 1
	// otherwise.
	Depth int

	// VertexCount is the size of this community's subgraph.
	VertexCount int

	// IsLeaf marks terminal nodes: acyclic subgraph, at/below the
	// minimum-vertex threshold, or no surviving partition block.
	IsLeaf bool

	// HasKeyRegulator reports whether any key regulator survives in this
	// community.
	HasKeyRegulator bool

	// KeyRegulatorMetrics maps each surviving regulator label to its
	// seven-metric profile in this subgraph.
	KeyRegulatorMetrics map[string]centrality.Metrics

	// Children are the sub-communities in partition order (1-based
	// lineage indices follow slice order).
	Children []*Node
}

// Walk visits n and all its descendants depth-first in child order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the descendant (or n itself) with the given lineage, or
// nil when absent.
func (n *Node) Find(lineage string) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if node.Lineage == lineage {
			found = node
		}
	})
	return found
}

// Result is the full output of one decomposition run.
type Result struct {
	// Root of the decomposition tree.
	Root *Node

	// KeyRegulators maps each selected regulator label to its degree in
	// the root graph. Frozen after selection.
	KeyRegulators map[string]int

	// Trace maps each regulator label to the lineage of the deepest
	// visited subgraph still containing it.
	Trace map[string]string

	// LeafEdges maps leaf lineages (vertex count at/below MinVertices,
	// more than one edge) to their edge lists as label pairs.
	LeafEdges map[string][][2]string

	// InternalEdges maps interior-node lineages to their edge lists
	// (diagnostic snapshot consumed by exporters).
	InternalEdges map[string][][2]string

	// Subgraphs maps every visited lineage to its subgraph, the lookup
	// table external renderers key into.
	Subgraphs map[string]*core.Graph

	// Run parameters, echoed for exporters.
	Algorithm   partition.Algorithm
	MinVertices int
	BinWidth    int
}

// childLineage appends a 1-based child index to a parent lineage. The
// root's children drop the "0" prefix ("1", not "0_1").
func childLineage(parent string, index int) string {
	idx := strconv.Itoa(index)
	if parent == RootLineage {
		return idx
	}
	return parent + lineageSep + idx
}

// lineageDepth derives a node's depth from its lineage: the root is 0,
// everything else counts separators plus one.
func lineageDepth(lineage string) int {
	if lineage == RootLineage {
		return 0
	}
	return strings.Count(lineage, lineageSep) + 1
}

// lineageName is the display name of a lineage: its last segment, or
// "root" for the root.
func lineageName(lineage string) string {
	if lineage == RootLineage {
		return "root"
	}
	if i := strings.LastIndex(lineage, lineageSep); i >= 0 {
		return lineage[i+1:]
	}
	return lineage
}
