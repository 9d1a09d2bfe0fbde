// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// api.go — BuildGraph orchestrator and the Constructor contract.
//
// Design contract:
//   • One orchestrator: BuildGraph(n, bopts, cons...). Creates g over [0,n),
//     resolves cfg, runs cons in order, freezes g.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   • Constructors return sentinel errors, never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// Constructor adds a topology's edges to g, whose vertex set is already fixed.
// Constructors MUST validate their parameters against g.VertexCount() and
// emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices, applies cons in order and
// returns it frozen. Any constructor error is wrapped as "BuildGraph: %w".
//
// Complexity: O(n) plus the sum of the constructors' costs.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("BuildGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	g := core.NewGraph(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g.Freeze()

	return g, nil
}

// addEdge emits u→v with the next configured weight and, in bidirectional
// mode, v→u with the same weight.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	return addWeightedEdge(g, cfg, method, u, v, cfg.weight())
}

func addWeightedEdge(g *core.Graph, cfg builderConfig, method string, u, v int, w int64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}
	if cfg.bidirectional && u != v {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w: %w", method, v, u, w, ErrConstructFailed, err)
		}
	}

	return nil
}

// requireVertices fails with ErrTooFewVertices when the topology needs fewer
// than min vertices, or more than g has.
func requireVertices(g *core.Graph, method string, need, min int) error {
	if need < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, need, min, ErrTooFewVertices)
	}
	if need > g.VertexCount() {
		return fmt.Errorf("%s: needs %d vertices, graph has %d: %w", method, need, g.VertexCount(), ErrTooFewVertices)
	}

	return nil
}
