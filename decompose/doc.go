// Package decompose recursively splits a graph into a hierarchy of
// nested communities, tracking a fixed set of high-degree "key
// regulator" vertices through the hierarchy and computing their
// normalized topological/centrality profile at every level.
//
// Decompose selects the BinWidth highest-degree vertices of the root
// graph once, then walks depth-first: each visit records the subgraph
// under its lineage, refreshes the regulators' deepest-visit trace,
// computes their metric profile, and either stops (acyclic subgraph, or
// at/below MinVertices) or partitions the subgraph and recurses into the
// induced community subgraphs.
//
// Lineage strings identify tree positions: the root is "0", its children
// "1", "2", …, and deeper nodes append "_<1-based index>" per level
// ("2_1_3"). A node's depth is its separator count plus one; the root is
// depth 0.
//
// Side outputs accumulate by return-and-merge — every recursive call
// returns its subtree plus partial maps which the parent merges — so
// sibling subtrees never share mutable state:
//
//   - Trace: regulator label → lineage of the deepest subgraph that
//     still contains it (deeper visits always overwrite shallower ones).
//   - LeafEdges: lineage → edge list, for leaves at/below MinVertices
//     with more than one edge.
//   - InternalEdges: lineage → edge list for interior nodes (diagnostic
//     snapshot for exporters).
//   - Subgraphs: lineage → *core.Graph, the lookup table exporters use.
//
// A partition block covering the whole subgraph is discarded; when
// nothing survives the filter the node is marked an explicit leaf.
// Recursion strictly shrinks the vertex count along every path, and a
// configurable MaxDepth bounds it defensively (ErrDepthExceeded).
//
// Decompose is single-threaded and pure except for optional zap logging;
// cancellation is available through WithContext.
package decompose
