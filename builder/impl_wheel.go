// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e. a rim cycle of size (n-1) plus a hub vertex.
//   • Therefore n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Rim vertices take indices [0..n-2] with MaxDegree 3; the hub is last
//     with MaxDegree n-1.
//   • Emits the rim in Cycle order, then spokes (hub, i) in increasing i.
//
// Complexity:
//   • Time: O(n) vertices + O(2n-2) edges.

package builder

import "github.com/katalvlaran/tabula/core"

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel[P any](n int) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}

		rim := n - 1
		degrees := uniform(n, 3)
		degrees[rim] = rim
		base, err := addVertices(b, MethodWheel, degrees...)
		if err != nil {
			return err
		}
		for i := 0; i < rim; i++ {
			if err = connect(b, MethodWheel, base, i, (i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err = connect(b, MethodWheel, base, rim, i); err != nil {
				return err
			}
		}

		return nil
	}
}
