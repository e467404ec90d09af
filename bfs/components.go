package bfs

import "github.com/katalvlaran/tabula/core"

// Connected reports whether every vertex of g is reachable from the first
// one. The empty graph is connected.
// Complexity: O(V + E).
func Connected[V comparable](g core.View[V]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}
	res, err := BFS(g, vs[0])
	if err != nil {
		return false, err
	}
	return len(res.Order) == len(vs), nil
}

// Components splits the vertex set into connected components. Components
// appear in order of their first vertex; each lists vertices in BFS order.
// Complexity: O(V + E) plus one Vertices() scan per component start.
func Components[V comparable](g core.View[V]) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[V]bool, g.VertexCount())
	var out [][]V
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for _, u := range res.Order {
			seen[u] = true
		}
		out = append(out, res.Order)
	}
	return out, nil
}
