package decompose

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/commtree/centrality"
	"github.com/katalvlaran/commtree/core"
	"github.com/katalvlaran/commtree/partition"
	"github.com/katalvlaran/commtree/topo"
)

// Decompose recursively decomposes g into a hierarchy of nested
// communities and returns the tree, the key-regulator trace, and the
// leaf/internal edge-list maps. See the package documentation for the
// per-node algorithm.
//
// Returns ErrGraphNil, ErrBadBinWidth, ErrBadMinVertices or
// ErrBadMaxDepth for invalid input, ErrDepthExceeded when recursion
// passes MaxDepth, and propagates partitioner and centrality failures
// unfiltered (no partial result is salvaged).
func Decompose(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.BinWidth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadBinWidth, o.BinWidth)
	}
	if o.MinVertices < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadMinVertices, o.MinVertices)
	}
	if o.MaxDepth < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxDepth, o.MaxDepth)
	}
	if o.Partitioner == nil {
		algo := o.Algorithm
		o.Partitioner = func(sub *core.Graph) ([][]int, error) {
			return partition.Communities(sub, algo)
		}
	}

	d := &decomposer{opts: o, regulators: selectKeyRegulators(g, o.BinWidth)}

	root, acc, err := d.visit(g, RootLineage, 0)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Root:          root,
		KeyRegulators: d.regulators,
		Trace:         acc.trace,
		LeafEdges:     acc.leafEdges,
		InternalEdges: acc.internalEdges,
		Subgraphs:     acc.subgraphs,
		Algorithm:     o.Algorithm,
		MinVertices:   o.MinVertices,
		BinWidth:      o.BinWidth,
	}
	o.Logger.Info("decomposition complete",
		zap.Int("root_vertices", g.VertexCount()),
		zap.Int("subgraphs", len(res.Subgraphs)),
		zap.Int("leaf_communities", len(res.LeafEdges)),
		zap.String("algorithm", o.Algorithm.String()),
	)

	return res, nil
}

// selectKeyRegulators picks the w highest-degree vertices of the root
// graph, returning label → root degree. Vertices are ordered by degree
// ascending with a stable sort (original index order preserved among
// equal degrees) and the last w taken, so among equal degrees the larger
// index wins. When w exceeds the vertex count, every vertex is selected.
func selectKeyRegulators(g *core.Graph, w int) map[string]int {
	n := g.VertexCount()
	degs := g.Degrees()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return degs[order[a]] < degs[order[b]]
	})
	if w > n {
		w = n
	}

	out := make(map[string]int, w)
	for _, v := range order[n-w:] {
		out[g.Label(v)] = degs[v]
	}
	return out
}

// decomposer carries the per-run immutable state of the recursion.
type decomposer struct {
	opts       DecomposeOptions
	regulators map[string]int
}

// accumulator collects the side outputs of one subtree. Each visit owns
// its accumulator and merges its children's into it, so sibling subtrees
// never share mutable state.
type accumulator struct {
	trace         map[string]string
	leafEdges     map[string][][2]string
	internalEdges map[string][][2]string
	subgraphs     map[string]*core.Graph
}

func newAccumulator() *accumulator {
	return &accumulator{
		trace:         make(map[string]string),
		leafEdges:     make(map[string][][2]string),
		internalEdges: make(map[string][][2]string),
		subgraphs:     make(map[string]*core.Graph),
	}
}

// merge folds a child subtree's accumulator into acc. Trace entries from
// the child always win: the child visited strictly deeper lineages, and
// a regulator lives in at most one branch per level, so last-write-wins
// keyed by label preserves the deepest-wins invariant. The lineage-keyed
// maps are disjoint unions (every lineage is visited exactly once).
func (acc *accumulator) merge(child *accumulator) {
	for label, lineage := range child.trace {
		acc.trace[label] = lineage
	}
	for lineage, edges := range child.leafEdges {
		acc.leafEdges[lineage] = edges
	}
	for lineage, edges := range child.internalEdges {
		acc.internalEdges[lineage] = edges
	}
	for lineage, sub := range child.subgraphs {
		acc.subgraphs[lineage] = sub
	}
}

// visit handles one recursion step on subgraph g at the given lineage.
// It returns the subtree rooted there plus the subtree's accumulator.
func (d *decomposer) visit(g *core.Graph, lineage string, depth int) (*Node, *accumulator, error) {
	select {
	case <-d.opts.Ctx.Done():
		return nil, nil, d.opts.Ctx.Err()
	default:
	}
	if depth > d.opts.MaxDepth {
		return nil, nil, fmt.Errorf("%w: depth %d at lineage %q", ErrDepthExceeded, depth, lineage)
	}

	acc := newAccumulator()
	acc.subgraphs[lineage] = g

	// Regulators surviving in this subgraph, in ascending index order.
	var regIdx []int
	n := g.VertexCount()
	for i := 0; i < n; i++ {
		if _, ok := d.regulators[g.Label(i)]; ok {
			regIdx = append(regIdx, i)
			acc.trace[g.Label(i)] = lineage
		}
	}

	props, err := centrality.Properties(g, regIdx)
	if err != nil {
		return nil, nil, fmt.Errorf("decompose: lineage %q: %w", lineage, err)
	}
	metrics := make(map[string]centrality.Metrics, len(regIdx))
	for _, i := range regIdx {
		metrics[g.Label(i)] = props[i]
	}

	node := &Node{
		Name:                lineageName(lineage),
		Lineage:             lineage,
		Depth:               lineageDepth(lineage),
		VertexCount:         n,
		HasKeyRegulator:     len(regIdx) > 0,
		KeyRegulatorMetrics: metrics,
	}

	// Stop condition A: an acyclic subgraph has no internal structure
	// left to decompose.
	if !topo.HasCycle(g) {
		node.IsLeaf = true
		d.logNode(node, "acyclic")
		return node, acc, nil
	}

	// Stop condition B: at or below the minimum size. Edge lists with
	// more than one edge are kept for the leaf-community export.
	if n <= d.opts.MinVertices {
		node.IsLeaf = true
		if edges := g.EdgeLabels(); len(edges) > 1 {
			acc.leafEdges[lineage] = edges
		}
		d.logNode(node, "min_vertices")
		return node, acc, nil
	}

	// Interior node: snapshot its edge list for diagnostic export.
	acc.internalEdges[lineage] = g.EdgeLabels()

	blocks, err := d.opts.Partitioner(g)
	if err != nil {
		return nil, nil, fmt.Errorf("decompose: partition at lineage %q: %w", lineage, err)
	}

	// Discard a degenerate whole-graph block; recursing into it would
	// never shrink the vertex count.
	kept := blocks[:0]
	for _, b := range blocks {
		if len(b) != n {
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		// The partitioner could not split this community: terminal by
		// construction, marked as an explicit leaf.
		node.IsLeaf = true
		d.logNode(node, "indivisible")
		return node, acc, nil
	}

	for i, block := range kept {
		sub, err := g.Induced(block)
		if err != nil {
			return nil, nil, fmt.Errorf("decompose: induced subgraph at lineage %q: %w", lineage, err)
		}
		child, childAcc, err := d.visit(sub, childLineage(lineage, i+1), depth+1)
		if err != nil {
			return nil, nil, err
		}
		node.Children = append(node.Children, child)
		acc.merge(childAcc)
	}
	d.logNode(node, "split")

	return node, acc, nil
}

// logNode emits one structured event per visited node.
func (d *decomposer) logNode(n *Node, outcome string) {
	d.opts.Logger.Debug("visited community",
		zap.String("lineage", n.Lineage),
		zap.Int("depth", n.Depth),
		zap.Int("vertices", n.VertexCount),
		zap.Bool("leaf", n.IsLeaf),
		zap.Bool("has_key_regulator", n.HasKeyRegulator),
		zap.Int("children", len(n.Children)),
		zap.String("outcome", outcome),
	)
}
