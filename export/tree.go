package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/commtree/decompose"
)

// Output formats accepted by the writers.
const (
	FormatEdgelist = "edgelist"
	FormatJSON     = "json"
)

// ErrNilResult is returned when a writer receives a nil result.
var ErrNilResult = errors.New("export: nil result")

// ErrUnknownFormat is returned for a format other than "edgelist" or
// "json"; the wrapping error names the offending value.
var ErrUnknownFormat = errors.New("export: unknown output format")

// treeFileName is the tree payload file written under the output dir.
const treeFileName = "tree.json"

// nodeJSON mirrors one decomposition node with the historical field
// names downstream consumers expect.
type nodeJSON struct {
	Name         string                        `json:"name"`
	Lineage      string                        `json:"lineage"`
	CurrentDepth int                           `json:"current_depth"`
	NumVertices  int                           `json:"num_vertices"`
	HasKeyReg    bool                          `json:"has_keyreg"`
	IsLeafNode   bool                          `json:"is_leaf_node"`
	KeyRegs      map[string]map[string]float64 `json:"key_regs"`
	Children     []*nodeJSON                   `json:"children"`
}

// rootJSON is the tree root plus run metadata, flattened into one record.
type rootJSON struct {
	nodeJSON
	CfAlgo               string            `json:"cf_algo"`
	OutputFormat         string            `json:"output_format"`
	SubgraphMinVertices  int               `json:"subgraph_min_vertices"`
	KeyRegulatorBinWidth int               `json:"key_regulator_bin_width"`
	KeyRegTrace          map[string]string `json:"key_reg_trace"`
}

// WriteTree renders the decomposition tree (with run metadata on the
// root record) to <dir>/tree.json.
func WriteTree(dir string, res *decompose.Result, format string) error {
	if res == nil || res.Root == nil {
		return ErrNilResult
	}
	if err := checkFormat(format); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}

	root := rootJSON{
		nodeJSON:             *toNodeJSON(res.Root),
		CfAlgo:               res.Algorithm.String(),
		OutputFormat:         format,
		SubgraphMinVertices:  res.MinVertices,
		KeyRegulatorBinWidth: res.BinWidth,
		KeyRegTrace:          res.Trace,
	}
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal tree: %w", err)
	}
	path := filepath.Join(dir, treeFileName)
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	return nil
}

// toNodeJSON converts a tree node (and recursively its children) to the
// serialization shape, zipping each Metrics profile with its headings.
func toNodeJSON(n *decompose.Node) *nodeJSON {
	out := &nodeJSON{
		Name:         n.Name,
		Lineage:      n.Lineage,
		CurrentDepth: n.Depth,
		NumVertices:  n.VertexCount,
		HasKeyReg:    n.HasKeyRegulator,
		IsLeafNode:   n.IsLeaf,
		KeyRegs:      make(map[string]map[string]float64, len(n.KeyRegulatorMetrics)),
		Children:     make([]*nodeJSON, 0, len(n.Children)),
	}
	for labelName, m := range n.KeyRegulatorMetrics {
		out.KeyRegs[labelName] = zipMetrics(m.Slice())
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, toNodeJSON(c))
	}
	return out
}

// checkFormat validates an output-format selector.
func checkFormat(format string) error {
	switch format {
	case FormatEdgelist, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
