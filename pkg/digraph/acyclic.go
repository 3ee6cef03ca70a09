package digraph

// Acyclic reports whether g contains no directed cycle. Self-loops count as
// cycles. Detection uses depth-first search with white/gray/black coloring:
// an edge into a gray vertex (one still on the traversal stack) closes a
// cycle.
func (g Graph[V]) Acyclic() bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[V]int, len(g))
	for _, root := range g.Vertices() {
		if color[root] != white {
			continue
		}
		color[root] = gray
		stack := []frame[V]{{vertex: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if adj := g[top.vertex]; top.next < len(adj) {
				next := adj[top.next]
				top.next++
				switch color[next] {
				case white:
					color[next] = gray
					stack = append(stack, frame[V]{vertex: next})
				case gray:
					return false
				}
				continue
			}
			color[top.vertex] = black
			stack = stack[:len(stack)-1]
		}
	}
	return true
}
