package centrality

import "github.com/katalvlaran/commtree/core"

// Betweenness computes raw (unnormalized) betweenness centrality for all
// vertices with Brandes' algorithm. Each unordered vertex pair is counted
// once, so the values match the usual undirected convention.
// Complexity: O(V·(V+E)) time, O(V+E) memory.
func Betweenness(g *core.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	cb := make([]float64, n)

	// Reusable per-source state.
	var (
		stack = make([]int, 0, n)
		pred  = make([][]int, n)
		sigma = make([]float64, n)
		dist  = make([]int, n)
		delta = make([]float64, n)
		queue = make([]int, 0, n)
	)

	for s := 0; s < n; s++ {
		// Phase 1: BFS from s, recording shortest-path counts and DAG
		// predecessors; stack holds vertices in non-decreasing distance.
		stack = stack[:0]
		queue = queue[:0]
		for i := 0; i < n; i++ {
			pred[i] = pred[i][:0]
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
		}
		sigma[s] = 1
		dist[s] = 0
		queue = append(queue, s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range g.Neighbors(v) {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					pred[w] = append(pred[w], v)
				}
			}
		}

		// Phase 2: back-propagate pair dependencies in reverse BFS order.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range pred[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// Every unordered pair was accumulated from both endpoints.
	for i := range cb {
		cb[i] /= 2
	}

	return cb, nil
}
