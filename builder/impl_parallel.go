// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_parallel.go — ParallelEdges(from, to, weights...) constructor.
//
// Emits one from → to arc per weight, in argument order, ignoring the
// configured WeightFn. Used to stage races between relax workers that target
// the same destination.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const methodParallelEdges = "ParallelEdges"

// ParallelEdges returns a Constructor adding len(weights) arcs from→to.
func ParallelEdges(from, to int, weights ...int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(weights) == 0 {
			return fmt.Errorf("%s: no weights: %w", methodParallelEdges, ErrTooFewVertices)
		}
		for _, w := range weights {
			if err := addWeightedEdge(g, cfg, methodParallelEdges, from, to, w); err != nil {
				return err
			}
		}

		return nil
	}
}
