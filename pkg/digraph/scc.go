package digraph

import (
	"cmp"
	"slices"
)

// StronglyConnected returns the strongly connected components of g computed
// with Kosaraju's two-pass algorithm.
//
// Each component is a maximal set of mutually reachable key-vertices,
// returned as an ascending-sorted slice. Together the components partition
// the key set of g: every key-vertex belongs to exactly one component.
// Vertices that appear only as edge targets are traversed for reachability
// but excluded from the result, since they have no recorded adjacency of
// their own. An empty graph yields a nil result.
//
// The order of components in the result follows the traversal and is not a
// contract - compare results as sets of components.
//
// # Algorithm
//
// The first pass runs a depth-first traversal from every unvisited
// key-vertex (in ascending order), marking vertices on entry and recording
// each vertex after all of its out-neighbors finish. This yields every
// visited vertex in increasing finish time. The second pass walks that
// record backwards over the transpose graph: each still-unvisited vertex
// popped in decreasing finish time seeds exactly one component, and the
// vertices reachable from it through reversed edges are precisely its
// strongly connected component.
//
// Both passes use explicit heap-allocated stacks, so recursion depth is
// never a concern regardless of graph shape. Time complexity is O(V+E);
// auxiliary space is O(V+E) including the transpose.
func (g Graph[V]) StronglyConnected() [][]V {
	if len(g) == 0 {
		return nil
	}

	visited := make(map[V]bool, len(g))
	order := make([]V, 0, len(g))
	for _, root := range g.Vertices() {
		if !visited[root] {
			fillOrder(g, root, visited, &order)
		}
	}

	t := g.Transpose()

	clear(visited)
	var components [][]V
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if visited[v] {
			continue
		}
		if _, ok := g[v]; !ok {
			// Target-only vertex: no adjacency of its own, never a
			// component seed.
			continue
		}
		component := collect(t, v, visited)
		slices.Sort(component)
		components = append(components, component)
	}
	return components
}

// frame tracks one in-progress vertex of the finish-order pass: the vertex
// itself and the index of its next unexplored out-neighbor.
type frame[V cmp.Ordered] struct {
	vertex V
	next   int
}

// fillOrder performs the finish-order pass from root, appending every newly
// reached vertex to order by increasing finish time. Vertices are marked in
// visited on entry (pre-order) and recorded once all out-neighbors have
// finished (post-order), which is what makes the decreasing-finish-time
// sweep of the second pass correct.
func fillOrder[V cmp.Ordered](g Graph[V], root V, visited map[V]bool, order *[]V) {
	visited[root] = true
	stack := []frame[V]{{vertex: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if adj := g[top.vertex]; top.next < len(adj) {
			next := adj[top.next]
			top.next++
			if !visited[next] {
				visited[next] = true
				stack = append(stack, frame[V]{vertex: next})
			}
			continue
		}
		*order = append(*order, top.vertex)
		stack = stack[:len(stack)-1]
	}
}

// collect gathers the component seeded at root by traversing the transpose
// graph t, marking every reached vertex in visited. The returned component
// is unsorted.
func collect[V cmp.Ordered](t Graph[V], root V, visited map[V]bool) []V {
	visited[root] = true
	component := []V{root}
	stack := []V{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range t[v] {
			if !visited[u] {
				visited[u] = true
				component = append(component, u)
				stack = append(stack, u)
			}
		}
	}
	return component
}
