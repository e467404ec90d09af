package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tabula/builder"
)

func TestLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(int) string
		idx  int
		want string
	}{
		{"decimal", builder.DecimalLabel, 42, "42"},
		{"symbol first", builder.SymbolLabel, 0, "A"},
		{"symbol last", builder.SymbolLabel, 25, "Z"},
		{"symbol overflow", builder.SymbolLabel, 26, "AA"},
		{"alphanumeric", builder.AlphanumericLabel, 35, "z"},
		{"alphanumeric carry", builder.AlphanumericLabel, 36, "10"},
		{"excel", builder.ExcelColumnLabel, 27, "AB"},
		{"excel wide", builder.ExcelColumnLabel, 702, "AAA"},
		{"hex", builder.HexLabel, 255, "ff"},
		{"prefixed", builder.PrefixedLabel("v"), 7, "v7"},
		{"grid", builder.GridLabel(4), 9, "2,1"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.fn(tc.idx), tc.name)
	}

	assert.Panics(t, func() { builder.GridLabel(0) })
}
