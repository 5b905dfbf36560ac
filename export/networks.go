package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/commtree/core"
	"github.com/katalvlaran/commtree/decompose"
)

// Subdirectory names mirroring the historical output layout.
const (
	leafNetworksDir = "leaf_networks"
	leafJSONDir     = "leaf_nodes_json"
	leafEdgelistDir = "leaf_nodes_edgelist"
	subgraphsDir    = "subgraphs"
	subgraphJSONDir = "subgraphs_json"
	subgraphTSVDir  = "subgraphs_tsv"
)

// nodeLink is the networkx json_graph.node_link_data document shape.
type nodeLink struct {
	Directed   bool       `json:"directed"`
	Multigraph bool       `json:"multigraph"`
	Graph      struct{}   `json:"graph"`
	Nodes      []nodeRef  `json:"nodes"`
	Links      []edgeLink `json:"links"`
}

type nodeRef struct {
	ID string `json:"id"`
}

type edgeLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// WriteLeafNetworks renders every recorded leaf community under
// <dir>/leaf_networks: node-link JSON always (interactive viewers rely
// on it), TSV edge lists additionally when format is "edgelist".
func WriteLeafNetworks(dir string, res *decompose.Result, format string) error {
	if res == nil {
		return ErrNilResult
	}
	if err := checkFormat(format); err != nil {
		return err
	}

	jsonDir := filepath.Join(dir, leafNetworksDir, leafJSONDir)
	if err := os.MkdirAll(jsonDir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", jsonDir, err)
	}
	for lineage, edges := range res.LeafEdges {
		if err := writeNodeLink(filepath.Join(jsonDir, lineage+".json"), edgesDoc(edges)); err != nil {
			return err
		}
	}

	if format != FormatEdgelist {
		return nil
	}
	tsvDir := filepath.Join(dir, leafNetworksDir, leafEdgelistDir)
	if err := os.MkdirAll(tsvDir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", tsvDir, err)
	}
	for lineage, edges := range res.LeafEdges {
		if err := writeTSV(filepath.Join(tsvDir, lineage+".tsv"), edges); err != nil {
			return err
		}
	}

	return nil
}

// WriteSubgraphs renders every visited subgraph (the root included)
// under <dir>/subgraphs: node-link JSON always, TSV edge lists for the
// edgelist format, and per-property CSV dumps (see props.go).
func WriteSubgraphs(dir string, res *decompose.Result, format string) error {
	if res == nil {
		return ErrNilResult
	}
	if err := checkFormat(format); err != nil {
		return err
	}

	jsonDir := filepath.Join(dir, subgraphsDir, subgraphJSONDir)
	if err := os.MkdirAll(jsonDir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", jsonDir, err)
	}
	for lineage, g := range res.Subgraphs {
		if err := writeNodeLink(filepath.Join(jsonDir, lineage+".json"), graphDoc(g)); err != nil {
			return err
		}
	}

	if format == FormatEdgelist {
		tsvDir := filepath.Join(dir, subgraphsDir, subgraphTSVDir)
		if err := os.MkdirAll(tsvDir, 0o755); err != nil {
			return fmt.Errorf("export: mkdir %s: %w", tsvDir, err)
		}
		for lineage, g := range res.Subgraphs {
			if err := writeTSV(filepath.Join(tsvDir, lineage+".tsv"), g.EdgeLabels()); err != nil {
				return err
			}
		}
	}

	return writePropPlots(dir, res)
}

// graphDoc builds a node-link document from a full subgraph, isolated
// vertices included.
func graphDoc(g *core.Graph) nodeLink {
	doc := nodeLink{Nodes: make([]nodeRef, 0, g.VertexCount())}
	for _, l := range g.Labels() {
		doc.Nodes = append(doc.Nodes, nodeRef{ID: l})
	}
	for _, e := range g.EdgeLabels() {
		doc.Links = append(doc.Links, edgeLink{Source: e[0], Target: e[1]})
	}
	return doc
}

// edgesDoc builds a node-link document from a bare edge list; vertices
// appear in first-seen order.
func edgesDoc(edges [][2]string) nodeLink {
	seen := make(map[string]struct{}, 2*len(edges))
	doc := nodeLink{Links: make([]edgeLink, 0, len(edges))}
	for _, e := range edges {
		for _, l := range e {
			if _, ok := seen[l]; !ok {
				seen[l] = struct{}{}
				doc.Nodes = append(doc.Nodes, nodeRef{ID: l})
			}
		}
		doc.Links = append(doc.Links, edgeLink{Source: e[0], Target: e[1]})
	}
	return doc
}

// writeNodeLink marshals one node-link document to path.
func writeNodeLink(path string, doc nodeLink) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("export: marshal %s: %w", path, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// writeTSV writes one edge per line as "<from>\t<to>".
func writeTSV(path string, edges [][2]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	for _, e := range edges {
		if _, err = fmt.Fprintf(f, "%s\t%s\n", e[0], e[1]); err != nil {
			f.Close()
			return fmt.Errorf("export: write %s: %w", path, err)
		}
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
