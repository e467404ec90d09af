// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Endpoints get MaxDegree 1, inner vertices 2.
//   - Emits edges (i, i+1) in increasing i.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/tabula/core"

// Path returns a Constructor that builds the simple path P_n.
func Path[P any](n int) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}

		degrees := uniform(n, 2)
		degrees[0], degrees[n-1] = 1, 1
		base, err := addVertices(b, MethodPath, degrees...)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(b, MethodPath, base, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
