// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_path.go — Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2, emits i-1 → i for i = 1..n-1.
//   • Cycle: n ≥ 3, emits the path plus (n-1) → 0.
//   • Both occupy vertices [0, n) and require n ≤ V.
//
// Complexity: O(n) edges, O(1) extra space.

package builder

import "github.com/katalvlaran/sssp/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodPath, n, minPathNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the directed cycle 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(g, cfg, methodCycle, n-1, 0)
	}
}
