// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn        ("0","1","2",...)
//   • nodeType   = DefaultNodeType    ("Node")
//   • edgeType   = DefaultEdgeType    ("E")
//   • edge kind  = directional, no reverse companion
//   • rng        = nil                (pure/deterministic unless seeded)
//   • attrFn     = nil                (no node attributes)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphlib/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node UID strategy: index -> UID (deterministic).
	idFn IDFn
	// Type label of every created node.
	nodeType core.NodeType
	// Edge type label of every created edge.
	edgeType string
	// reverse adds the Reverse companion of each directional edge.
	reverse bool
	// bidirected creates Bidirectional pairs instead of directional edges.
	bidirected bool
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Attributes attached to node idx right after creation.
	attrFn func(idx int) []*core.Attribute
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order. Empty labels left by options fall back to defaults.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		nodeType: DefaultNodeType,
		edgeType: DefaultEdgeType,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.nodeType == "" {
		cfg.nodeType = DefaultNodeType
	}
	if cfg.edgeType == "" {
		cfg.edgeType = DefaultEdgeType
	}

	return cfg
}

// edgeTypes lists the edge types constructors emit under these options.
func (c builderConfig) edgeTypes() []core.EdgeType {
	switch {
	case c.bidirected:
		return []core.EdgeType{{Name: c.edgeType, Dir: core.Bidirectional}}
	case c.reverse:
		return []core.EdgeType{
			{Name: c.edgeType, Dir: core.Directional},
			{Name: c.edgeType, Dir: core.Reverse},
		}
	default:
		return []core.EdgeType{{Name: c.edgeType, Dir: core.Directional}}
	}
}

// BuiltEdgeTypes resolves bopts and returns the set of edge types the
// constructors will create, so callers can traverse a built graph with the
// matching filter.
func BuiltEdgeTypes(bopts ...BuilderOption) *core.EdgeTypeSet {
	return core.NewEdgeTypeSet(newBuilderConfig(bopts...).edgeTypes()...)
}
