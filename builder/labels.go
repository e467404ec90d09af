// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// labels.go — deterministic vertex label schemes.
//
// A label scheme maps a vertex index to a string and is meant to be passed as
// the payload function of BuildGraph, e.g. BuildGraph(SymbolLabel, opts, ...).
// Every scheme is pure: the same index always yields the same label. Indices
// handed out by core.Builder are never negative.

package builder

import (
	"strconv"
	"strings"
)

const alphabetSize = 26

// DecimalLabel returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabel returns an uppercase Latin letter for idx in [0..25], e.g.
// 0→"A", 25→"Z". Larger indices continue with ExcelColumnLabel ("AA", ...).
func SymbolLabel(idx int) string {
	if idx < alphabetSize {
		return string('A' + rune(idx))
	}

	return ExcelColumnLabel(idx)
}

// AlphanumericLabel returns a base-36 string, e.g. 10→"a", 36→"10".
func AlphanumericLabel(idx int) string {
	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnLabel returns the spreadsheet column name of idx, e.g. 0→"A",
// 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
func ExcelColumnLabel(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/alphabetSize - 1 {
		runes = append(runes, rune('A'+(i%alphabetSize)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexLabel returns the lowercase hexadecimal form of idx, e.g. 255→"ff".
func HexLabel(idx int) string {
	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedLabel returns a scheme producing prefix + decimal index, e.g.
// PrefixedLabel("v") yields "v0", "v1", ...
func PrefixedLabel(prefix string) func(int) string {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// GridLabel returns a scheme producing "r,c" coordinates for a row-major grid
// with the given number of columns. Panics if cols < MinGridDim.
func GridLabel(cols int) func(int) string {
	if cols < MinGridDim {
		panic("builder: GridLabel(cols<1)")
	}
	return func(idx int) string {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(idx / cols))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(idx % cols))
		return sb.String()
	}
}
