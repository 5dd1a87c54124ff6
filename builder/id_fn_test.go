package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvgen/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},

		{"HexIDFn_zero", builder.HexIDFn, 0, "0", false},
		{"HexIDFn_ten", builder.HexIDFn, 10, "a", false},
		{"HexIDFn_ff", builder.HexIDFn, 255, "ff", false},
		{"HexIDFn_neg", builder.HexIDFn, -1, "", true},

		{"ExcelColumnIDFn_A", builder.ExcelColumnIDFn, 0, "A", false},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_AAA", builder.ExcelColumnIDFn, 702, "AAA", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -3, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestIDSchemeByName verifies name resolution for textual configuration.
func TestIDSchemeByName(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]string{"": "11", "decimal": "11", "hex": "b", "excel": "L"} {
		fn, err := builder.IDSchemeByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, fn(11), name)
	}

	_, err := builder.IDSchemeByName("roman")
	require.ErrorIs(t, err, builder.ErrConfiguration)
}
