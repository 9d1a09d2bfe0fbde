// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random_sparse.go — RandomSparse(p) constructor.
//
// Canonical model:
//   • Erdős–Rényi-like: each ordered pair (i, j), i ≠ j, over the whole vertex
//     set is included independently with probability p.
//   • Trial order: i asc, then j asc. Weights are drawn right after a
//     successful trial, so a fixed seed fixes both topology and weights.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(V²) trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling directed arcs over all of g's
// vertices with independent probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
