// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side takes indices [0..n1-1] with MaxDegree n2, right side
//     [n1..n1+n2-1] with MaxDegree n1.
//   - Emits cross edges left-major: (0,n1), (0,n1+1), ..., (n1-1,n1+n2-1).
//
// Complexity:
//   - Time: O(n1+n2) vertices + O(n1*n2) edges.

package builder

import "github.com/katalvlaran/tabula/core"

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite[P any](n1, n2 int) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		degrees := append(uniform(n1, n2), uniform(n2, n1)...)
		base, err := addVertices(b, MethodCompleteBipartite, degrees...)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = connect(b, MethodCompleteBipartite, base, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
