// Package export renders a decompose.Result to disk for external
// consumers: the decomposition tree as JSON, leaf and interior community
// networks as node-link JSON and TSV edge lists, and per-property CSV
// dumps over every recorded subgraph.
//
// Directory layout under the chosen output directory:
//
//	tree.json
//	leaf_networks/
//	    leaf_nodes_json/<lineage>.json
//	    leaf_nodes_edgelist/<lineage>.tsv     (edgelist format only)
//	subgraphs/
//	    subgraphs_json/<lineage>.json
//	    subgraphs_tsv/<lineage>.tsv           (edgelist format only)
//	    prop_plots/<lineage>-<property>.csv
//
// Node-link JSON follows the networkx json_graph.node_link_data layout
// so downstream viewers keep working unchanged.
package export
