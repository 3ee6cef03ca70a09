package digraph

import (
	"cmp"
	"maps"
	"slices"
)

// Graph is a directed graph stored as an adjacency map: each key-vertex maps
// to the ordered list of its out-neighbors. Edge targets do not have to be
// keys - looking up a missing vertex yields the empty adjacency, so such
// vertices simply have no recorded out-edges. Self-loops and parallel edges
// are permitted.
//
// The zero value (a nil map) is a valid empty graph.
type Graph[V cmp.Ordered] map[V][]V

// Vertices returns the key-vertices of g in ascending order.
// Vertices that appear only as edge targets are not included.
func (g Graph[V]) Vertices() []V {
	return slices.Sorted(maps.Keys(g))
}

// EdgeCount returns the total number of edges in g.
// Parallel edges are counted individually.
func (g Graph[V]) EdgeCount() int {
	total := 0
	for _, adj := range g {
		total += len(adj)
	}
	return total
}

// Transpose returns the reverse graph: for every edge u→v in g the result
// contains the edge v→u. Every key-vertex of g has an entry in the result,
// possibly with empty adjacency, so the transpose never loses isolated
// vertices.
func (g Graph[V]) Transpose() Graph[V] {
	t := make(Graph[V], len(g))
	for v := range g {
		t[v] = nil
	}
	for u, adj := range g {
		for _, v := range adj {
			t[v] = append(t[v], u)
		}
	}
	return t
}
