// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node UIDs are "r,c" (cfg.idFn is not used); attribute index is r*cols+c.
//   • Nodes are created row-major; each node then emits its right edge
//     (r,c)->(r,c+1) followed by its down edge (r,c)->(r+1,c), row-major.
//
// Complexity:
//   • Time: O(R*C) nodes + O(2*R*C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// Grid returns a Constructor that builds an R×C 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		cells := make([]core.Node, rows*cols)
		var err error
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				idx := r*cols + c
				if cells[idx], err = addNode(g, gridNodeID(r, c), idx, cfg, methodGrid); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					if err = link(g, u, cells[r*cols+c+1], cfg, methodGrid); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = link(g, u, cells[(r+1)*cols+c], cfg, methodGrid); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
