// Package builder provides node UID schemes for graph constructors.
package builder

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// IDFn generates a node UID from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always
// returns the same non-empty string. Panics indicate programmer error.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix + decimal index, e.g. "N1", "N2", ... when
// prefix is "N" and base is 1. The fixture graphs use this scheme.
// Panics if idx < 0.
func PrefixIDFn(prefix string, base int) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(base+idx)
	}
}

// WithPrefixIDs sets the UID scheme to PrefixIDFn(prefix, base).
// Example: WithPrefixIDs("N", 1) → "N1","N2",...
func WithPrefixIDs(prefix string, base int) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix, base))
}

// WithSymbolIDs sets the UID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the UID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// UUIDIDFn returns name-based (SHA-1, version 5) UUIDs of the decimal index
// within namespace. The same namespace always yields the same UIDs.
// Panics if idx < 0.
func UUIDIDFn(namespace uuid.UUID) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("UUIDIDFn: idx must be ≥ 0, got %d", idx))
		}
		return uuid.NewSHA1(namespace, []byte(strconv.Itoa(idx))).String()
	}
}

// WithUUIDs sets the UID scheme to UUIDIDFn(namespace).
func WithUUIDs(namespace uuid.UUID) BuilderOption {
	return WithIDScheme(UUIDIDFn(namespace))
}
