// Package analysis wraps the digraph algorithms with structured progress
// logging and timing statistics. The core package stays free of logging
// dependencies; callers that want instrumented runs use a [Runner] here
// instead.
package analysis

import (
	"cmp"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/digraph/pkg/digraph"
)

// Runner executes graph analyses with structured logging.
//
// The Runner is stateless apart from the logger - it stores no analysis
// results, so multiple goroutines can safely share one Runner across
// different graphs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Stats summarizes one analysis run.
type Stats struct {
	VertexCount      int           // Key-vertices in the input graph
	EdgeCount        int           // Edges in the input graph (parallel edges counted)
	ComponentCount   int           // Strongly connected components found
	LargestComponent int           // Size of the largest component (0 for an empty graph)
	Duration         time.Duration // Wall-clock time of the analysis
}

// Result holds the outcome of one analysis run.
type Result[V cmp.Ordered] struct {
	Components   [][]V
	Condensation *digraph.Condensation[V]
	Stats        Stats
}

// Analyze computes the strongly connected components and condensation of g,
// logging a summary through r's logger. A nil Runner behaves like
// NewRunner(nil).
func Analyze[V cmp.Ordered](r *Runner, g digraph.Graph[V]) *Result[V] {
	if r == nil {
		r = NewRunner(nil)
	}

	start := time.Now()
	cond := g.Condense()
	components := cond.Components()

	largest := 0
	for _, component := range components {
		if len(component) > largest {
			largest = len(component)
		}
	}

	result := &Result[V]{
		Components:   components,
		Condensation: cond,
		Stats: Stats{
			VertexCount:      len(g),
			EdgeCount:        g.EdgeCount(),
			ComponentCount:   len(components),
			LargestComponent: largest,
			Duration:         time.Since(start),
		},
	}

	r.Logger.Info("computed components",
		"vertices", result.Stats.VertexCount,
		"edges", result.Stats.EdgeCount,
		"components", result.Stats.ComponentCount,
		"largest", result.Stats.LargestComponent,
		"duration", result.Stats.Duration)

	return result
}
