// Package digraph analyzes directed graphs given as plain adjacency maps.
//
// # Overview
//
// A graph is a [Graph] value: a map from each vertex to the ordered list of
// its out-neighbors. There is no builder API and no hidden state - callers
// construct the map directly, and every analysis reads it without modifying
// it:
//
//	g := digraph.Graph[int]{
//	    0: {1},
//	    1: {2},
//	    2: {0},
//	}
//	components := g.StronglyConnected() // [[0 1 2]]
//
// Vertices can be any ordered, comparable type (ints, strings, ...).
// Self-loops and parallel edges are allowed. A vertex that appears only as
// an edge target, never as a map key, contributes no out-edges of its own.
//
// # Analyses
//
//   - [Graph.StronglyConnected]: strongly connected components via
//     Kosaraju's two-pass algorithm
//   - [Graph.Condense]: the component DAG (condensation)
//   - [Graph.Acyclic]: cycle detection
//   - [Graph.Transpose]: the reverse graph
//
// All run in O(V+E) time. Both depth-first passes of the component search
// use explicit heap-allocated stacks rather than call-stack recursion, so
// arbitrarily deep graphs (long dependency chains) cannot overflow the
// goroutine stack.
//
// # Determinism
//
// Each returned component is sorted in ascending vertex order, so two runs
// over the same graph always agree on component contents. The relative order
// of components in a result is an artifact of traversal order and is not
// part of the contract - callers comparing results should compare them as
// sets of components.
//
// # Concurrency
//
// Analyses allocate all working state per call and share nothing, so any
// number of goroutines can analyze the same graph concurrently as long as
// none of them mutates the underlying map.
package digraph
