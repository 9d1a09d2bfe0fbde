// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model:
//   • 4-neighborhood grid, vertex id r*cols + c (row-major).
//   • For each cell emit Right (r, c+1) then Bottom (r+1, c) when present.
//     Use WithBidirectional to make the grid walkable both ways.
//
// Complexity: O(rows*cols) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the vertex id of cell (r, c) in a grid with cols columns.
func GridID(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireVertices(g, methodGrid, rows*cols, minGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c, cols)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
