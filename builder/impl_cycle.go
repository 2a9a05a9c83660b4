// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). Cycle(1) is a self-loop and Cycle(2)
//     a pair of opposite edges; the multigraph keeps both.
//   • Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges.
//   • Space: O(n) for the node handles.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// Cycle returns a Constructor that builds an n-node directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		nodes, err := addNodes(g, n, cfg, methodCycle)
		if err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err = link(g, nodes[i], nodes[(i+1)%n], cfg, methodCycle); err != nil {
				return err
			}
		}

		return nil
	}
}
