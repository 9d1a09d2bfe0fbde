package core

import "fmt"

// AddEdge appends the directed edge from→to with weight w.
//
// Validation order:
//  1. graph not frozen (ErrGraphFrozen);
//  2. both endpoints in [0, V) (ErrVertexOutOfRange);
//  3. w >= 0 (ErrNegativeWeight).
//
// Self-loops and parallel edges are accepted; Dijkstra tolerates both.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, w int64) error {
	if g.frozen.Load() {
		return ErrGraphFrozen
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: edge %d→%d with V=%d", ErrVertexOutOfRange, from, to, g.vertices)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, w)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: w})
	g.edgeCount++

	return nil
}

// Freeze marks the graph read-only. Safe to call repeatedly.
func (g *Graph) Freeze() { g.frozen.Store(true) }

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool { return g.frozen.Load() }

// VertexCount returns V.
func (g *Graph) VertexCount() int { return g.vertices }

// EdgeCount returns the number of edges added so far.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasVertex reports whether v lies in [0, V).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.vertices }

// EdgesFrom returns the outgoing edges of v in insertion order.
//
// The returned slice aliases internal storage and must not be modified.
// An out-of-range v or a vertex with no outgoing edges yields an empty slice.
// Complexity: O(1).
func (g *Graph) EdgesFrom(v int) []Edge {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adjacency[v]
}

// Edges returns a copy of every edge, grouped by source vertex ascending and
// in insertion order within a source.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, adj := range g.adjacency {
		out = append(out, adj...)
	}

	return out
}

// OutDegree returns len(EdgesFrom(v)).
func (g *Graph) OutDegree(v int) int { return len(g.EdgesFrom(v)) }
