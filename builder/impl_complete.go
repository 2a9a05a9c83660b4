// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • One edge per unordered pair {i<j}, oriented i -> j, emitted in
//     lexicographic (i, j) order. With plain directional edges the result
//     is the transitive tournament (a DAG); WithBidirected gives K_n.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// Complete returns a Constructor that connects every pair of n nodes once.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		nodes, err := addNodes(g, n, cfg, methodComplete)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, nodes[i], nodes[j], cfg, methodComplete); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
