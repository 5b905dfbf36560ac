package export_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commtree/decompose"
	"github.com/katalvlaran/commtree/export"
	"github.com/katalvlaran/commtree/gen"
)

// bridgedCliques decomposes two k-cliques joined by a bridge with the
// regulator bin width fixed at 2 (the bridge endpoints).
func bridgedCliques(t *testing.T, k int) *decompose.Result {
	t.Helper()
	g, err := gen.TwoCliquesBridge(k)
	require.NoError(t, err)
	res, err := decompose.Decompose(g, decompose.WithBinWidth(2))
	require.NoError(t, err)
	return res
}

// readJSON unmarshals one file into a generic document.
func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

// TestWriteTree checks the tree payload: historical field names, run
// metadata on the root record, and the zipped regulator profiles.
func TestWriteTree(t *testing.T) {
	res := bridgedCliques(t, 5)
	dir := t.TempDir()
	require.NoError(t, export.WriteTree(dir, res, export.FormatEdgelist))

	doc := readJSON(t, filepath.Join(dir, "tree.json"))
	require.Equal(t, "root", doc["name"])
	require.Equal(t, "0", doc["lineage"])
	require.Equal(t, float64(0), doc["current_depth"])
	require.Equal(t, float64(10), doc["num_vertices"])
	require.Equal(t, false, doc["is_leaf_node"])
	require.Equal(t, true, doc["has_keyreg"])

	require.Equal(t, "fast-multilevel", doc["cf_algo"])
	require.Equal(t, "edgelist", doc["output_format"])
	require.Equal(t, float64(3), doc["subgraph_min_vertices"])
	require.Equal(t, float64(2), doc["key_regulator_bin_width"])
	require.Equal(t,
		map[string]any{"v4": "1", "v5": "2"},
		doc["key_reg_trace"])

	children, ok := doc["children"].([]any)
	require.True(t, ok)
	require.Len(t, children, 2)
	first := children[0].(map[string]any)
	require.Equal(t, "1", first["lineage"])
	require.Equal(t, float64(1), first["current_depth"])
	require.Equal(t, float64(5), first["num_vertices"])
	require.Equal(t, true, first["is_leaf_node"])

	regs := first["key_regs"].(map[string]any)
	require.Contains(t, regs, "v4")
	profile := regs["v4"].(map[string]any)
	require.Equal(t, float64(4), profile["current_degree"])
	require.Contains(t, profile, "eigen_vector_centrality")
	require.Contains(t, profile, "betweenness_centrality")
	require.Len(t, profile, 7)
}

// TestWriteTree_Errors covers the nil guard and the format check.
func TestWriteTree_Errors(t *testing.T) {
	dir := t.TempDir()
	require.ErrorIs(t, export.WriteTree(dir, nil, export.FormatJSON), export.ErrNilResult)

	res := bridgedCliques(t, 3)
	err := export.WriteTree(dir, res, "yaml")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
	require.Contains(t, err.Error(), `"yaml"`)
}

// TestWriteLeafNetworks checks the leaf community dumps from the
// triangle barbell, where both children stop on the minimum size.
func TestWriteLeafNetworks(t *testing.T) {
	res := bridgedCliques(t, 3)
	dir := t.TempDir()
	require.NoError(t, export.WriteLeafNetworks(dir, res, export.FormatEdgelist))

	doc := readJSON(t, filepath.Join(dir, "leaf_networks", "leaf_nodes_json", "1.json"))
	require.Equal(t, false, doc["directed"])
	require.Equal(t, false, doc["multigraph"])
	require.Len(t, doc["nodes"], 3)
	require.Len(t, doc["links"], 3)

	tsv, err := os.ReadFile(filepath.Join(dir, "leaf_networks", "leaf_nodes_edgelist", "2.tsv"))
	require.NoError(t, err)
	require.Equal(t, "v3\tv4\nv3\tv5\nv4\tv5\n", string(tsv))
}

// TestWriteLeafNetworks_JSONOnly checks that the json format skips the
// TSV directory.
func TestWriteLeafNetworks_JSONOnly(t *testing.T) {
	res := bridgedCliques(t, 3)
	dir := t.TempDir()
	require.NoError(t, export.WriteLeafNetworks(dir, res, export.FormatJSON))

	_, err := os.Stat(filepath.Join(dir, "leaf_networks", "leaf_nodes_json", "1.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "leaf_networks", "leaf_nodes_edgelist"))
	require.True(t, os.IsNotExist(err), "edgelist dir must not exist for json format")
}

// TestWriteSubgraphs checks the per-lineage network dumps and the
// property CSVs.
func TestWriteSubgraphs(t *testing.T) {
	res := bridgedCliques(t, 3)
	dir := t.TempDir()
	require.NoError(t, export.WriteSubgraphs(dir, res, export.FormatEdgelist))

	for _, lineage := range []string{"0", "1", "2"} {
		doc := readJSON(t, filepath.Join(dir, "subgraphs", "subgraphs_json", lineage+".json"))
		require.Contains(t, doc, "nodes")
		require.Contains(t, doc, "links")
	}
	rootDoc := readJSON(t, filepath.Join(dir, "subgraphs", "subgraphs_json", "0.json"))
	require.Len(t, rootDoc["nodes"], 6)
	require.Len(t, rootDoc["links"], 7)

	tsv, err := os.ReadFile(filepath.Join(dir, "subgraphs", "subgraphs_tsv", "0.tsv"))
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimRight(string(tsv), "\n"), "\n"), 7)

	// Every subgraph here has >= 3 vertices, so each dumps six property
	// columns (raw degree is the x-axis, never its own file).
	plots, err := filepath.Glob(filepath.Join(dir, "subgraphs", "prop_plots", "*.csv"))
	require.NoError(t, err)
	require.Len(t, plots, 18)
	for _, p := range plots {
		require.NotContains(t, filepath.Base(p), "current_degree")
	}

	// A triangle community: every vertex has degree 2 and clustering 1.
	data, err := os.ReadFile(filepath.Join(dir, "subgraphs", "prop_plots", "1-clustering_coefficient.csv"))
	require.NoError(t, err)
	require.Equal(t, "index,value\n2,1\n2,1\n2,1\n", string(data))
}

// TestWriteSubgraphs_Errors covers the guards shared with the other
// writers.
func TestWriteSubgraphs_Errors(t *testing.T) {
	dir := t.TempDir()
	require.ErrorIs(t, export.WriteSubgraphs(dir, nil, export.FormatJSON), export.ErrNilResult)
	require.ErrorIs(t, export.WriteLeafNetworks(dir, nil, export.FormatJSON), export.ErrNilResult)

	res := bridgedCliques(t, 3)
	require.ErrorIs(t, export.WriteSubgraphs(dir, res, "csv"), export.ErrUnknownFormat)
}
