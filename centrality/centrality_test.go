package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commtree/centrality"
	"github.com/katalvlaran/commtree/core"
	"github.com/katalvlaran/commtree/gen"
)

const delta = 1e-9

// buildTriangleWithTail returns the graph a-b-c-a plus pendant d on c.
func buildTriangleWithTail(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	return b.Build()
}

// TestProperties_Cycle5 pins the full profile on C5, where every metric
// has a closed form: raw betweenness is 1 (five distance-2 pairs, one
// interior vertex each), the eigenvector is uniform, and the distance
// sum from any vertex is 1+1+2+2 = 6. D = 4*3/2 = 6.
func TestProperties_Cycle5(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	props, err := centrality.Properties(g, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, props, 5)

	for v, m := range props {
		require.InDelta(t, 1.0/6, m.Eigenvector, delta, "eigenvector of v%d", v)
		require.InDelta(t, 1.0/6, m.Betweenness, delta, "betweenness of v%d", v)
		require.InDelta(t, 4.0/6, m.Closeness, delta, "closeness of v%d", v)
		require.Equal(t, 1.0, m.DegreeProbability, "degree probability of v%d", v)
		require.Equal(t, 0.0, m.Clustering, "clustering of v%d", v)
		require.Equal(t, 2.0, m.NeighborhoodConnectivity, "nconn of v%d", v)
		require.Equal(t, 2.0, m.Degree, "degree of v%d", v)
	}
}

// TestBetweenness_Star checks the raw (unnormalized) values on S4: the
// three leaf pairs each route through the center, the leaves carry no
// traffic.
func TestBetweenness_Star(t *testing.T) {
	g, err := gen.Star(4)
	require.NoError(t, err)

	betw, err := centrality.Betweenness(g)
	require.NoError(t, err)
	require.InDelta(t, 3.0, betw[0], delta, "center")
	for v := 1; v < 4; v++ {
		require.InDelta(t, 0.0, betw[v], delta, "leaf v%d", v)
	}
}

// TestProperties_Path3 checks the smallest non-degenerate graph, where
// D = 2*1/2 = 1 and the normalization is the identity.
func TestProperties_Path3(t *testing.T) {
	g, err := gen.Path(3)
	require.NoError(t, err)

	props, err := centrality.Properties(g, []int{0, 1, 2})
	require.NoError(t, err)

	center := props[1]
	require.InDelta(t, 1.0, center.Betweenness, delta)
	require.InDelta(t, 1.0, center.Eigenvector, delta)
	require.InDelta(t, 1.0, center.Closeness, delta)
	require.InDelta(t, 1.0/3, center.DegreeProbability, delta)
	require.Equal(t, 1.0, center.NeighborhoodConnectivity)
	require.Equal(t, 2.0, center.Degree)

	end := props[0]
	require.InDelta(t, 0.0, end.Betweenness, delta)
	// Dominant eigenvector of the path is (1, sqrt2, 1) before scaling.
	require.InDelta(t, 0.70710678118, end.Eigenvector, 1e-6)
	require.InDelta(t, 2.0/3, end.Closeness, delta)
	require.InDelta(t, 2.0/3, end.DegreeProbability, delta)
	require.Equal(t, 2.0, end.NeighborhoodConnectivity)
	require.Equal(t, 1.0, end.Degree)
}

// TestProperties_Sentinel checks the degenerate-size rule: below three
// vertices every requested vertex reports the -1 profile.
func TestProperties_Sentinel(t *testing.T) {
	g, err := gen.Path(2)
	require.NoError(t, err)

	props, err := centrality.Properties(g, []int{0, 1})
	require.NoError(t, err)
	require.Len(t, props, 2)
	require.Equal(t, centrality.SentinelMetrics(), props[0])
	require.Equal(t, centrality.SentinelMetrics(), props[1])
}

// TestProperties_VertexRange checks index validation before any work.
func TestProperties_VertexRange(t *testing.T) {
	g, err := gen.Cycle(5)
	require.NoError(t, err)

	_, err = centrality.Properties(g, []int{0, 9})
	require.ErrorIs(t, err, centrality.ErrVertexRange)
	_, err = centrality.Properties(g, []int{-1})
	require.ErrorIs(t, err, centrality.ErrVertexRange)
}

// TestNilGraph checks the shared nil guard of every metric.
func TestNilGraph(t *testing.T) {
	_, err := centrality.Eigenvector(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Betweenness(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Closeness(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.LocalClustering(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.NeighborhoodConnectivity(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
	_, err = centrality.Properties(nil, nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
}

// TestLocalMetrics_TriangleWithTail checks clustering and neighborhood
// connectivity where they differ per vertex.
func TestLocalMetrics_TriangleWithTail(t *testing.T) {
	g := buildTriangleWithTail(t)

	clust, err := centrality.LocalClustering(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, clust[0], delta, "a sits in one triangle with one neighbor pair")
	require.InDelta(t, 1.0, clust[1], delta)
	require.InDelta(t, 1.0/3, clust[2], delta, "c has three neighbors, one linked pair")
	require.Equal(t, 0.0, clust[3], "pendant d has degree 1")

	nconn, err := centrality.NeighborhoodConnectivity(g)
	require.NoError(t, err)
	require.InDelta(t, 2.5, nconn[0], delta) // neighbors b(2), c(3)
	require.InDelta(t, 5.0/3, nconn[2], delta)
	require.InDelta(t, 3.0, nconn[3], delta)
}

// TestCloseness_Disconnected checks the per-component scoring and the
// isolated-vertex zero.
func TestCloseness_Disconnected(t *testing.T) {
	b := core.NewBuilder()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"x", "y"}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	_, err := b.AddVertex("z")
	require.NoError(t, err)
	g := b.Build()

	clos, err := centrality.Closeness(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, clos[0], delta, "triangle vertex reaches both peers at distance 1")
	require.InDelta(t, 1.0, clos[3], delta, "edge endpoint within its own component")
	require.Equal(t, 0.0, clos[5], "isolated vertex")
}

// TestNeighborhoodConnectivity_Isolated checks the zero score of a
// degree-0 vertex through both entry points.
func TestNeighborhoodConnectivity_Isolated(t *testing.T) {
	b := core.NewBuilder()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	_, err := b.AddVertex("z")
	require.NoError(t, err)
	g := b.Build()

	nconn, err := centrality.NeighborhoodConnectivity(g)
	require.NoError(t, err)
	require.Equal(t, 0.0, nconn[3], "isolated vertex has no neighborhood")

	props, err := centrality.Properties(g, []int{3})
	require.NoError(t, err)
	require.Equal(t, 0.0, props[3].NeighborhoodConnectivity)
	require.Equal(t, 0.0, props[3].Degree)
	require.InDelta(t, 0.25, props[3].DegreeProbability, delta)
}

// TestProperties_Deterministic checks that repeated runs agree exactly.
func TestProperties_Deterministic(t *testing.T) {
	g, err := gen.TwoCliquesBridge(5)
	require.NoError(t, err)
	all := make([]int, g.VertexCount())
	for i := range all {
		all[i] = i
	}

	first, err := centrality.Properties(g, all)
	require.NoError(t, err)
	second, err := centrality.Properties(g, all)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestHeadingsSliceAlignment checks the zip contract used by exporters.
func TestHeadingsSliceAlignment(t *testing.T) {
	m := centrality.Metrics{
		Eigenvector:              1,
		Betweenness:              2,
		Closeness:                3,
		DegreeProbability:        4,
		Clustering:               5,
		NeighborhoodConnectivity: 6,
		Degree:                   7,
	}
	headings := centrality.Headings()
	values := m.Slice()
	require.Len(t, headings, 7)
	require.Len(t, values, 7)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, values)
	require.Equal(t, "eigen_vector_centrality", headings[0])
	require.Equal(t, "current_degree", headings[6])
}
