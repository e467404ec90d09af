// SPDX-License-Identifier: MIT
// Package: tabula/core
//
// types.go — Vertex, Edge, Graph, View and the sentinel errors of the package.
//
// Errors:
//
//	ErrUsage               - graph mutated after Build, or a protocol driven out of phase.
//	ErrInvariantViolation  - a View breaks undirected simple-graph invariants.
//	ErrVertexNotFound      - requested vertex index does not exist.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - parallel edge requested.
//	ErrDegreeExceeded      - endpoint already holds MaxDegree neighbours.
//	ErrBadDegree           - negative MaxDegree.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrUsage indicates a caller bug: a frozen Graph or Builder was mutated,
	// or a call sequence was driven outside its defined phases.
	ErrUsage = errors.New("core: usage error")

	// ErrInvariantViolation indicates a View whose adjacency is not a valid
	// undirected simple graph (asymmetry, duplicates, loops, stray edges).
	ErrInvariantViolation = errors.New("core: graph invariant violation")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDegreeExceeded indicates an endpoint already holds MaxDegree neighbours.
	ErrDegreeExceeded = errors.New("core: max degree exceeded")

	// ErrBadDegree indicates a negative MaxDegree.
	ErrBadDegree = errors.New("core: max degree must be non-negative")
)

// Vertex is a node of a Graph.
//
// ID is the stable insertion index. MaxDegree is fixed at creation and bounds
// the neighbour list; neighbours are kept in edge-creation order.
type Vertex[P any] struct {
	id         int
	maxDegree  int
	neighbours []*Vertex[P]
	payload    P
}

// ID returns the stable insertion index of v inside its Graph.
func (v *Vertex[P]) ID() int { return v.id }

// MaxDegree returns the target degree fixed when v was created.
func (v *Vertex[P]) MaxDegree() int { return v.maxDegree }

// Degree returns the current number of neighbours.
func (v *Vertex[P]) Degree() int { return len(v.neighbours) }

// Payload returns the caller-supplied value attached at creation.
func (v *Vertex[P]) Payload() P { return v.payload }

// Neighbours returns a copy of v's neighbours in edge-creation order.
func (v *Vertex[P]) Neighbours() []*Vertex[P] {
	out := make([]*Vertex[P], len(v.neighbours))
	copy(out, v.neighbours)
	return out
}

// HasNeighbour reports whether u is adjacent to v.
// Complexity: O(deg v).
func (v *Vertex[P]) HasNeighbour(u *Vertex[P]) bool {
	for _, n := range v.neighbours {
		if n == u {
			return true
		}
	}
	return false
}

// String renders the vertex as "v<ID>".
func (v *Vertex[P]) String() string {
	return "v" + strconv.Itoa(v.id)
}

// Edge is one undirected pair. From is the endpoint that initiated the
// connection; the pair is otherwise unordered.
type Edge[V any] struct {
	From V
	To   V
}

// View is the minimal capability set shared by the generator output and the
// planarity oracle. Implementations must describe an undirected simple graph;
// Validate checks that at a package boundary.
type View[V comparable] interface {
	// VertexCount returns |V|.
	VertexCount() int
	// IsDirected reports the orientation policy; tabula graphs are undirected.
	IsDirected() bool
	// Vertices returns every vertex in a stable order.
	Vertices() []V
	// Edges returns one record per undirected pair.
	Edges() []Edge[V]
	// NeighboursOf returns the neighbours of v in a stable order.
	NeighboursOf(v V) []V
	// HasEdge reports whether a and b are adjacent.
	HasEdge(a, b V) bool
}

// Graph is the immutable result of a Builder.
//
// vertices holds insertion order (index == Vertex.ID); edges holds creation
// order. repaired lists vertices the generator left exactly two short.
type Graph[P any] struct {
	vertices []*Vertex[P]
	edges    []Edge[*Vertex[P]]
	repaired []*Vertex[P]
}

// compile-time check: *Graph[P] is a View over its own vertices.
var _ View[*Vertex[struct{}]] = (*Graph[struct{}])(nil)
