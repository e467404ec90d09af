// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// params.go — generation parameters of the degree-constrained generator.

package builder

// Params configures one degree-constrained generation run. It is a plain
// value; the generator never mutates it.
//
// The vertex count is drawn from the half-open range [MinVertices, MaxVertices).
// Vertex 0 gets exactly FirstVertexDegree; every other vertex draws its target
// from [MinDegreePerVertex, MaxDegreePerVertex], with the last one nudged by
// one for handshake parity.
type Params struct {
	MinVertices        int `yaml:"min_vertices" validate:"min=2"`
	MaxVertices        int `yaml:"max_vertices" validate:"gtfield=MinVertices"`
	FirstVertexDegree  int `yaml:"first_vertex_degree" validate:"min=1"`
	MinDegreePerVertex int `yaml:"min_degree_per_vertex" validate:"min=1"`
	MaxDegreePerVertex int `yaml:"max_degree_per_vertex" validate:"gtefield=MinDegreePerVertex"`
}

// Validate checks the structural constraints of p. It does not check
// feasibility of the degrees for a particular vertex count; that is decided
// per draw and reported as ErrInfeasibleDegreeSequence.
//
// Errors: ErrInvalidParams.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}

	return nil
}
