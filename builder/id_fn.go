// Package builder provides the vertex ID schemes generators use to map node
// indices 0..n-1 to graph vertex IDs.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure and injective on the indices a generator uses.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(digits). Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// HexIDFn returns lowercase hexadecimal, e.g. 10→"a", 255→"ff".
// Panics if idx < 0.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// ExcelColumnIDFn returns the spreadsheet column name, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// idSchemes maps scheme names to ID functions for textual configuration.
var idSchemes = map[string]IDFn{
	"decimal": DefaultIDFn,
	"hex":     HexIDFn,
	"excel":   ExcelColumnIDFn,
}

// IDSchemeByName resolves a scheme name ("decimal", "hex", "excel").
// The empty name resolves to DefaultIDFn.
func IDSchemeByName(name string) (IDFn, error) {
	if name == "" {
		return DefaultIDFn, nil
	}
	fn, ok := idSchemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown id scheme %q: %w", name, ErrConfiguration)
	}

	return fn, nil
}
