// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil functions). Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphlib/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node UID generator: idx -> string.
// Panics on nil to surface programmer error early.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithNodeType sets the type label of created nodes. Empty means default.
func WithNodeType(t core.NodeType) BuilderOption {
	return func(c *builderConfig) {
		c.nodeType = t
	}
}

// WithEdgeType sets the type label of created edges. Empty means default.
func WithEdgeType(name string) BuilderOption {
	return func(c *builderConfig) {
		c.edgeType = name
	}
}

// WithReverse makes every directional edge carry its Reverse companion.
func WithReverse() BuilderOption {
	return func(c *builderConfig) {
		c.reverse = true
		c.bidirected = false
	}
}

// WithBidirected makes constructors emit Bidirectional pairs.
func WithBidirected() BuilderOption {
	return func(c *builderConfig) {
		c.bidirected = true
		c.reverse = false
	}
}

// WithNodeAttributes attaches fn(idx) to node idx right after creation.
// Panics on nil.
func WithNodeAttributes(fn func(idx int) []*core.Attribute) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeAttributes(nil)")
	}
	return func(c *builderConfig) {
		c.attrFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
