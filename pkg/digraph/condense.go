package digraph

import (
	"cmp"
	"slices"
)

// Condensation is the component graph of a directed graph: one node per
// strongly connected component, with an edge between two components whenever
// some original edge connects their members. The condensation of any finite
// directed graph is acyclic.
type Condensation[V cmp.Ordered] struct {
	components [][]V
	index      map[V]int
	edges      [][]int
}

// Condense computes the strongly connected components of g and the DAG they
// form. Component indices follow the order produced by
// [Graph.StronglyConnected]; target-only vertices are absent from the
// condensation just as they are absent from the components.
func (g Graph[V]) Condense() *Condensation[V] {
	components := g.StronglyConnected()

	index := make(map[V]int)
	for i, component := range components {
		for _, v := range component {
			index[v] = i
		}
	}

	edges := make([][]int, len(components))
	for u, adj := range g {
		src := index[u]
		for _, v := range adj {
			dst, ok := index[v]
			if !ok || dst == src {
				continue
			}
			edges[src] = append(edges[src], dst)
		}
	}
	for i := range edges {
		slices.Sort(edges[i])
		edges[i] = slices.Compact(edges[i])
	}

	return &Condensation[V]{components: components, index: index, edges: edges}
}

// Len returns the number of components.
func (c *Condensation[V]) Len() int { return len(c.components) }

// Components returns all components, each sorted ascending. The returned
// slices are the condensation's backing data - treat them as read-only.
func (c *Condensation[V]) Components() [][]V { return c.components }

// ComponentOf returns the index of the component containing v and true, or
// 0 and false if v is not a key-vertex of the original graph.
func (c *Condensation[V]) ComponentOf(v V) (int, bool) {
	i, ok := c.index[v]
	return i, ok
}

// Edges returns the indices of components reachable from component i by a
// single original-graph edge, sorted ascending with duplicates and
// self-edges removed. Returns nil if i is out of range.
func (c *Condensation[V]) Edges(i int) []int {
	if i < 0 || i >= len(c.edges) {
		return nil
	}
	return c.edges[i]
}
