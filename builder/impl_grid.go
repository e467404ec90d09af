// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood.
//   • Cell (r,c) has local index r*cols + c (row-major); pair with
//     GridLabel(cols) for "r,c" payloads.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • MaxDegree of each cell is its number of orthogonal neighbours.
//   • For each cell in row-major order, emits Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import "github.com/katalvlaran/tabula/core"

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid[P any](rows, cols int) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}

		degrees := make([]int, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				degrees = append(degrees, gridDegree(r, c, rows, cols))
			}
		}
		base, err := addVertices(b, MethodGrid, degrees...)
		if err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err = connect(b, MethodGrid, base, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(b, MethodGrid, base, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridDegree counts the in-bounds orthogonal neighbours of cell (r,c).
func gridDegree(r, c, rows, cols int) int {
	d := 0
	if r > 0 {
		d++
	}
	if r+1 < rows {
		d++
	}
	if c > 0 {
		d++
	}
	if c+1 < cols {
		d++
	}

	return d
}
