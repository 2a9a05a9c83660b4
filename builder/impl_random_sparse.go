// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j), i ≠ j: each
//     edge i -> j is included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlib/core"
)

const (
	probMin = 0.0
	probMax = 1.0
)

// RandomSparse returns a Constructor that samples a random directed graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters before any mutation.
		if n < MinRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes in index order.
		nodes, err := addNodes(g, n, cfg, methodRandomSparse)
		if err != nil {
			return err
		}

		// 3) One Bernoulli trial per ordered pair, fixed order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = link(g, nodes[i], nodes[j], cfg, methodRandomSparse); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
