// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one hub plus n-1 leaves.
//   • The hub UID is CenterNodeID; leaves are cfg.idFn(0..n-2).
//   • Emits hub -> leaf edges in leaf index order.
//
// Complexity:
//   • Time: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

// Star returns a Constructor that builds a star with hub "Center".
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		// The hub takes attribute index n-1 so leaves keep 0..n-2.
		hub, err := addNode(g, CenterNodeID, n-1, cfg, methodStar)
		if err != nil {
			return err
		}
		leaves, err := addNodes(g, n-1, cfg, methodStar)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = link(g, hub, leaf, cfg, methodStar); err != nil {
				return err
			}
		}

		return nil
	}
}
