package builder_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlib/builder"
)

// TestIDFns verifies each IDFn implementation both for correct outputs on valid inputs
// and for panics on invalid inputs.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		// DefaultIDFn: decimal conversion, never panics
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		// SymbolIDFn: uppercase letters A–Z, panics out of range
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_neg", builder.SymbolIDFn, -1, "", true},
		{"SymbolIDFn_tooHigh", builder.SymbolIDFn, 26, "", true},

		// ExcelColumnIDFn: Excel-style columns, panics on negative
		{"ExcelColumnIDFn_zero", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_endSingle", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_startDouble", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},

		// PrefixIDFn: prefix + (base+idx)
		{"PrefixIDFn_base1", builder.PrefixIDFn("N", 1), 0, "N1", false},
		{"PrefixIDFn_base0", builder.PrefixIDFn("v", 0), 12, "v12", false},
		{"PrefixIDFn_neg", builder.PrefixIDFn("v", 0), -1, "", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestOptions_PanicOnNil keeps option validation fail-fast.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithNodeAttributes(nil) })
}

func TestUUIDIDFn(t *testing.T) {
	fn := builder.UUIDIDFn(uuid.NameSpaceOID)

	first := fn(0)
	assert.Equal(t, first, fn(0), "stable for a given index")
	assert.NotEqual(t, first, fn(1))

	id, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())
	assert.Equal(t, uuid.NewSHA1(uuid.NameSpaceOID, []byte("0")), id)

	other := builder.UUIDIDFn(uuid.NameSpaceURL)
	assert.NotEqual(t, first, other(0), "namespace is part of the name")

	assert.Panics(t, func() { fn(-1) })

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithUUIDs(uuid.NameSpaceOID)}, builder.Path(3))
	require.NoError(t, err)
	assert.True(t, g.NodeExists(fn(2)))
}
