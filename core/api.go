// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade for graph-wide metadata: header info, the string
//       table and the diagnostics logger.
// Policy:
//   - No algorithms here.
//   - Header keys are returned sorted; the file format writes them in that order.

package core

import (
	"log/slog"
	"sort"

	"github.com/katalvlaran/graphlib/strtable"
)

// SetHeaderInfo stores a key/value pair written into the file header.
//
// Implementation:
//   - Stage 1: Overwrite any previous value for key.
//
// Behavior highlights:
//   - Keys and values are free-form strings; typical keys are "type",
//     "version" and "language".
//
// Complexity:
//   - Time O(1), Space O(len(key)+len(value)).
func (g *Graph) SetHeaderInfo(key, value string) { g.header[key] = value }

// HeaderInfo returns the header value for key.
func (g *Graph) HeaderInfo(key string) (string, bool) {
	v, ok := g.header[key]
	return v, ok
}

// DeleteHeaderInfo removes key from the header.
func (g *Graph) DeleteHeaderInfo(key string) { delete(g.header, key) }

// ClearHeaderInfo removes every header entry.
func (g *Graph) ClearHeaderInfo() { g.header = make(map[string]string) }

// HeaderKeys returns the header keys sorted ascending.
//
// Determinism:
//   - Sorted lexicographically, independent of insertion order.
//
// Complexity:
//   - Time O(H log H), Space O(H).
func (g *Graph) HeaderKeys() []string {
	keys := make([]string, 0, len(g.header))
	for k := range g.header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// StrTable exposes the graph's string table. Node UIDs, node types and edge
// type labels are interned in it with strtable.StrToSave.
//
// Notes:
//   - Callers may intern their own strings; they are persisted only when
//     tagged StrToSave.
func (g *Graph) StrTable() *strtable.Table { return g.strs }

// Logger returns the diagnostics logger configured with WithLogger.
func (g *Graph) Logger() *slog.Logger { return g.log }
