package core

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrPreconditionViolation is the class of every input that breaks the
	// algorithm's preconditions (bad vertex id, negative weight).
	ErrPreconditionViolation = errors.New("core: precondition violation")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = fmt.Errorf("%w: vertex id out of range", ErrPreconditionViolation)

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrPreconditionViolation)

	// ErrGraphFrozen indicates a mutation attempt after Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   int   // source vertex id
	To     int   // destination vertex id
	Weight int64 // non-negative cost
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-sizes the edge catalog for n edges.
// Panics on negative n.
func WithEdgeCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithEdgeCapacity(n<0)")
	}
	return func(g *Graph) {
		g.edgeCap = n
	}
}

// Graph is an adjacency-list graph over the dense vertex set [0, V).
//
// adjacency[v] holds the outgoing edges of v in insertion order.
// frozen flips once, from false to true, and is read atomically so solvers can
// freeze a graph that other goroutines are already reading.
type Graph struct {
	vertices  int
	edgeCount int
	edgeCap   int
	adjacency [][]Edge
	frozen    atomic.Bool
}

// NewGraph creates an empty graph with v vertices and no edges.
// Panics if v < 0.
// Complexity: O(V).
func NewGraph(v int, opts ...GraphOption) *Graph {
	if v < 0 {
		panic(fmt.Sprintf("core: NewGraph(v=%d): vertex count must be non-negative", v))
	}
	g := &Graph{vertices: v}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make([][]Edge, v)
	if g.edgeCap > 0 && v > 0 {
		// Spread the expected edges evenly; append grows the rest.
		per := g.edgeCap / v
		if per > 0 {
			for i := range g.adjacency {
				g.adjacency[i] = make([]Edge, 0, per)
			}
		}
	}

	return g
}
