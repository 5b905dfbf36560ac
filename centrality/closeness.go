package centrality

import "github.com/katalvlaran/commtree/core"

// Closeness computes closeness centrality for every vertex:
// (reachable-1) / Σ d(v,u), summing unweighted shortest-path distances
// over the vertices reachable from v. On a connected graph this is the
// classic (n-1)/Σd form, already in (0,1]; on a disconnected graph each
// vertex is scored within its own component. An isolated vertex scores 0.
// Complexity: O(V·(V+E)) time, O(V) memory.
func Closeness(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	out := make([]float64, n)
	dist := make([]int, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[s] = 0
		queue = append(queue[:0], s)

		var reach, sum int
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			reach++
			sum += dist[v]
			for _, w := range g.Neighbors(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
			}
		}
		if reach > 1 {
			out[s] = float64(reach-1) / float64(sum)
		}
	}

	return out, nil
}
