// Package centrality defines the Metrics profile and sentinel errors.
package centrality

import "errors"

// Sentinel errors for centrality computations.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrNoConvergence is returned when the eigenvector power iteration
	// fails to converge within its iteration budget.
	ErrNoConvergence = errors.New("centrality: power iteration did not converge")

	// ErrVertexRange is returned when a requested vertex index is outside
	// the graph.
	ErrVertexRange = errors.New("centrality: vertex index out of range")
)

// MinPropertyVertices is the smallest graph size for which the metric
// profile is defined; below it Properties returns SentinelMetrics.
const MinPropertyVertices = 3

// Metrics is the fixed seven-metric profile of one vertex.
//
// Eigenvector and Betweenness are normalized by D = (n-1)(n-2)/2;
// Degree is the raw integer degree stored as a float for uniformity.
type Metrics struct {
	Eigenvector              float64
	Betweenness              float64
	Closeness                float64
	DegreeProbability        float64
	Clustering               float64
	NeighborhoodConnectivity float64
	Degree                   float64
}

// Headings lists the metric names in profile order. The exporters use it
// to zip Metrics values with stable column names.
func Headings() []string {
	return []string{
		"eigen_vector_centrality",
		"betweenness_centrality",
		"closeness_centrality",
		"probability_degree_distribution",
		"clustering_coefficient",
		"neighborhood_connectivity",
		"current_degree",
	}
}

// Slice returns the metric values in Headings order.
func (m Metrics) Slice() []float64 {
	return []float64{
		m.Eigenvector,
		m.Betweenness,
		m.Closeness,
		m.DegreeProbability,
		m.Clustering,
		m.NeighborhoodConnectivity,
		m.Degree,
	}
}

// SentinelMetrics is the profile reported for every requested vertex of
// a graph with fewer than MinPropertyVertices vertices, where the
// centrality normalization degenerates.
func SentinelMetrics() Metrics {
	return Metrics{
		Eigenvector:              -1,
		Betweenness:              -1,
		Closeness:                -1,
		DegreeProbability:        -1,
		Clustering:               -1,
		NeighborhoodConnectivity: -1,
		Degree:                   -1,
	}
}
