package centrality

import "github.com/katalvlaran/commtree/core"

// LocalClustering computes the local clustering coefficient of every
// vertex: triangles(v) / (d(v)·(d(v)-1)/2). Vertices with degree < 2
// have no potential triangle and score 0 (kept finite so downstream
// payloads stay JSON-encodable).
// Complexity: O(Σ d(v)²·log d) time, O(1) extra memory.
func LocalClustering(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	out := make([]float64, n)

	for v := 0; v < n; v++ {
		nb := g.Neighbors(v)
		d := len(nb)
		if d < 2 {
			continue
		}
		// Count edges among neighbors; each closes a triangle with v.
		links := 0
		for i := 0; i < d; i++ {
			for j := i + 1; j < d; j++ {
				if g.HasEdge(nb[i], nb[j]) {
					links++
				}
			}
		}
		out[v] = 2 * float64(links) / float64(d*(d-1))
	}

	return out, nil
}

// NeighborhoodConnectivity computes, for every vertex, the mean degree of
// its neighbors. An isolated vertex has no neighborhood and scores 0.
// Complexity: O(V + E) time, O(V) memory.
func NeighborhoodConnectivity(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	degs := g.Degrees()
	out := make([]float64, len(degs))

	for v := range out {
		nb := g.Neighbors(v)
		if len(nb) == 0 {
			continue
		}
		sum := 0
		for _, u := range nb {
			sum += degs[u]
		}
		out[v] = float64(sum) / float64(len(nb))
	}

	return out, nil
}
