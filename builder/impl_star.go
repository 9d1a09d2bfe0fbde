// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_star.go — Star(n) and Complete(n) constructors.
//
// Contract:
//   • Star: n ≥ 2, center 0, emits 0 → i for i = 1..n-1 (a wide fan-out, the
//     shape that gives the concurrent relax step the most edges per pop).
//   • Complete: n ≥ 1, emits every ordered pair i → j with i ≠ j, i then j asc.
//
// Complexity: Star O(n); Complete O(n²).

package builder

import "github.com/katalvlaran/sssp/core"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that links the center 0 to every leaf 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodStar, n, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that emits all n·(n-1) directed arcs over
// [0, n). WithBidirectional is redundant here and doubles every arc.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
