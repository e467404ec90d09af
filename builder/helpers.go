// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name for uniform reporting.
//   - Indices are local: helpers translate them by the builder's offset.
package builder

import (
	"fmt"

	"github.com/katalvlaran/tabula/core"
)

// addVertices appends one vertex per entry of degrees (its MaxDegree) and
// returns the builder index of the first one.
// Complexity: O(len(degrees)).
func addVertices[P any](b *core.Builder[P], method string, degrees ...int) (int, error) {
	base := b.VertexCount()
	for i, d := range degrees {
		if _, err := b.AddVertex(d); err != nil {
			return 0, fmt.Errorf("%s: AddVertex(#%d): %w", method, i, err)
		}
	}

	return base, nil
}

// uniform returns n copies of d.
func uniform(n, d int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = d
	}

	return out
}

// connect links two local indices after shifting them by base.
func connect[P any](b *core.Builder[P], method string, base, u, v int) error {
	if err := b.Connect(base+u, base+v); err != nil {
		return fmt.Errorf("%s: Connect(%d,%d): %w", method, u, v, err)
	}

	return nil
}
