// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds n vertices with MaxDegree 2.
//   • Emits edges (i, i+1) for i ∈ [0..n-2], then the closing edge (n-1, 0).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(n) for the degree slice.

package builder

import "github.com/katalvlaran/tabula/core"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle[P any](n int) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		base, err := addVertices(b, MethodCycle, uniform(n, 2)...)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(b, MethodCycle, base, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
