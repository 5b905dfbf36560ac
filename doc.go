// Package commtree recursively decomposes a network into a tree of
// nested communities while tracing its key regulator vertices — the
// top-degree hubs — down to the deepest community that still holds them.
//
// 🚀 What does commtree do?
//
//	Feed it an edge list, get back a decomposition tree:
//		• Loading: delimiter-sniffing TSV/CSV edge-list reader
//		• Partitioning: fast multilevel (Louvain) & spectral leading-eigenvector
//		• Profiling: seven centrality metrics per key regulator, per community
//		• Tracing: deepest-community lineage for every key regulator
//		• Export: tree JSON, node-link network dumps, per-property CSVs
//
// ✨ Why commtree?
//
//   - Deterministic – identical input always yields identical trees
//   - Inspectable – every visited subgraph is kept and exportable
//   - Composable – inject your own community detector via options
//
// Everything is organized under flat topic packages:
//
//	core/       — immutable undirected Graph, Builder, induced subgraphs
//	topo/       — cycle and star-topology tests
//	centrality/ — eigenvector, betweenness, closeness & friends
//	partition/  — the two community-detection algorithms
//	decompose/  — the recursive engine, options, tree & trace types
//	edgelist/   — TSV/CSV loading
//	gen/        — deterministic graph generators for tests and demos
//	export/     — tree.json, leaf networks, subgraph & property dumps
//	config/     — YAML run configuration
//	cmd/        — the commtree CLI
//
// Quick ASCII example:
//
//	  K5────K5
//
//	two cliques joined by a bridge decompose into two leaf communities,
//	and the bridge endpoints (the highest-degree vertices) trace into
//	their respective cliques.
//
//	go get github.com/katalvlaran/commtree
package commtree
