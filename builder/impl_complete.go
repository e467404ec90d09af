// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds n vertices with MaxDegree n-1.
//   • Emits every pair (i, j) with i < j in lexicographic order.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import "github.com/katalvlaran/tabula/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete[P any](n int) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		base, err := addVertices(b, MethodComplete, uniform(n, n-1)...)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connect(b, MethodComplete, base, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
