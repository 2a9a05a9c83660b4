// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Edge kind follows cfg (directional, with reverse, or bidirected).
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(n) for the node handles.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		nodes, err := addNodes(g, n, cfg, methodPath)
		if err != nil {
			return err
		}

		// Emit path edges from 0->1->2->...->(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err = link(g, nodes[i-1], nodes[i], cfg, methodPath); err != nil {
				return err
			}
		}

		return nil
	}
}
