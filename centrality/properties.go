package centrality

import (
	"fmt"

	"github.com/katalvlaran/commtree/core"
)

// Properties computes the seven-metric profile for each requested vertex
// of g, keyed by vertex index.
//
// Rules:
//
//   - Fewer than MinPropertyVertices vertices: every requested vertex
//     receives SentinelMetrics — degenerate input, not an error.
//   - Eigenvector and betweenness centrality are divided by
//     D = (n-1)(n-2)/2, the maximum attainable raw value on n vertices.
//   - Closeness is reported unnormalized (already in [0,1]).
//   - DegreeProbability(v) = |{u : d(u) = d(v)}| / n, v included.
//
// The whole-graph metric arrays are computed once and shared across the
// requested vertices, so the cost does not grow with len(vertices).
// Returns ErrVertexRange for an out-of-range request and propagates
// ErrNoConvergence from the eigenvector iteration.
func Properties(g *core.Graph, vertices []int) (map[int]Metrics, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	out := make(map[int]Metrics, len(vertices))

	for _, v := range vertices {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("centrality: Properties: vertex %d: %w", v, ErrVertexRange)
		}
	}

	if n < MinPropertyVertices {
		for _, v := range vertices {
			out[v] = SentinelMetrics()
		}
		return out, nil
	}

	eigen, err := Eigenvector(g)
	if err != nil {
		return nil, fmt.Errorf("centrality: Properties: %w", err)
	}
	betw, err := Betweenness(g)
	if err != nil {
		return nil, err
	}
	clos, err := Closeness(g)
	if err != nil {
		return nil, err
	}
	clust, err := LocalClustering(g)
	if err != nil {
		return nil, err
	}
	nconn, err := NeighborhoodConnectivity(g)
	if err != nil {
		return nil, err
	}

	degs := g.Degrees()
	degCount := make(map[int]int, n) // degree → #vertices with it
	for _, d := range degs {
		degCount[d]++
	}

	// D caps raw eigenvector/betweenness values on an n-vertex graph.
	denom := float64((n-1)*(n-2)) / 2

	for _, v := range vertices {
		out[v] = Metrics{
			Eigenvector:              eigen[v] / denom,
			Betweenness:              betw[v] / denom,
			Closeness:                clos[v],
			DegreeProbability:        float64(degCount[degs[v]]) / float64(n),
			Clustering:               clust[v],
			NeighborhoodConnectivity: nconn[v],
			Degree:                   float64(degs[v]),
		}
	}

	return out, nil
}
