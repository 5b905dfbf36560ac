package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/commtree/centrality"
	"github.com/katalvlaran/commtree/core"
	"github.com/katalvlaran/commtree/decompose"
)

// propPlotsDir holds the per-property CSV dumps.
const propPlotsDir = "prop_plots"

// csvHeader is the fixed two-column header of every property CSV.
const csvHeader = "index,value"

// zipMetrics pairs a Metrics value slice with the canonical headings.
func zipMetrics(values []float64) map[string]float64 {
	headings := centrality.Headings()
	out := make(map[string]float64, len(headings))
	for i, h := range headings {
		out[h] = values[i]
	}
	return out
}

// writePropPlots dumps, for every recorded subgraph with at least 3
// vertices, one CSV per property: rows are (degree, value) pairs over
// all vertices, sorted ascending by degree with a stable sort. Degree
// itself is the x-axis of the historical plots, so it is not dumped as
// its own file.
func writePropPlots(dir string, res *decompose.Result) error {
	plotDir := filepath.Join(dir, subgraphsDir, propPlotsDir)
	if err := os.MkdirAll(plotDir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", plotDir, err)
	}

	headings := centrality.Headings()
	for lineage, g := range res.Subgraphs {
		if g.VertexCount() < centrality.MinPropertyVertices {
			continue
		}
		columns, err := propertyColumns(g)
		if err != nil {
			return fmt.Errorf("export: properties of %q: %w", lineage, err)
		}
		degs := g.Degrees()
		for p, values := range columns {
			path := filepath.Join(plotDir, fmt.Sprintf("%s-%s.csv", lineage, headings[p]))
			if err = writePropCSV(path, degs, values); err != nil {
				return err
			}
		}
	}

	return nil
}

// propertyColumns computes the six plotted property arrays (everything
// in the profile except raw degree) over all vertices of g.
func propertyColumns(g *core.Graph) ([][]float64, error) {
	n := g.VertexCount()
	denom := float64((n-1)*(n-2)) / 2

	eigen, err := centrality.Eigenvector(g)
	if err != nil {
		return nil, err
	}
	betw, err := centrality.Betweenness(g)
	if err != nil {
		return nil, err
	}
	clos, err := centrality.Closeness(g)
	if err != nil {
		return nil, err
	}
	clust, err := centrality.LocalClustering(g)
	if err != nil {
		return nil, err
	}
	nconn, err := centrality.NeighborhoodConnectivity(g)
	if err != nil {
		return nil, err
	}

	degs := g.Degrees()
	degCount := make(map[int]int, n)
	for _, d := range degs {
		degCount[d]++
	}
	degProb := make([]float64, n)
	for v, d := range degs {
		degProb[v] = float64(degCount[d]) / float64(n)
	}
	for v := range eigen {
		eigen[v] /= denom
		betw[v] /= denom
	}

	return [][]float64{eigen, betw, clos, degProb, clust, nconn}, nil
}

// writePropCSV writes one degree-sorted property column as CSV. The two
// columns are plain numbers, so no quoting is ever needed.
func writePropCSV(path string, degs []int, values []float64) error {
	order := make([]int, len(degs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return degs[order[a]] < degs[order[b]] })

	var sb strings.Builder
	sb.WriteString(csvHeader)
	sb.WriteByte('\n')
	for _, v := range order {
		sb.WriteString(strconv.Itoa(degs[v]))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(values[v], 'g', -1, 64))
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}

	return nil
}
