// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first vertex (MaxDegree n-1); leaves follow (MaxDegree 1).
//   - Emits spokes (hub, leaf) in increasing leaf index.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import "github.com/katalvlaran/tabula/core"

// Star returns a Constructor that builds a star K_{1,n-1}.
func Star[P any](n int) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		degrees := uniform(n, 1)
		degrees[0] = n - 1
		base, err := addVertices(b, MethodStar, degrees...)
		if err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err = connect(b, MethodStar, base, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
