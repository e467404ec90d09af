// SPDX-License-Identifier: MIT
// Package: tabula/core
//
// builder.go — the single mutation path for Graph.
//
// Contract:
//   • Vertices get IDs 0..n-1 in AddVertex order.
//   • Connect is symmetric: both neighbour lists grow and ONE edge record is emitted.
//   • Connect rejects loops, parallel edges and full endpoints; it never panics.
//   • Build freezes the builder; any later call returns ErrUsage.
//
// Determinism:
//   • No maps are iterated; every order is the call order.

package core

import "fmt"

// Builder accumulates vertices and edges and freezes them into a Graph.
// A Builder is owned by a single goroutine until Build.
type Builder[P any] struct {
	g       *Graph[P]
	payload func(index int) P
	frozen  bool
}

// NewBuilder returns an empty Builder. payload, if non-nil, supplies the
// payload of each vertex from its index; nil leaves payloads at their zero value.
// Complexity: O(1).
func NewBuilder[P any](payload func(index int) P) *Builder[P] {
	return &Builder[P]{
		g:       &Graph[P]{},
		payload: payload,
	}
}

// AddVertex appends a vertex with the given target degree and returns it.
// Complexity: O(1) amortized.
func (b *Builder[P]) AddVertex(maxDegree int) (*Vertex[P], error) {
	if b.frozen {
		return nil, fmt.Errorf("AddVertex: builder already built: %w", ErrUsage)
	}
	if maxDegree < 0 {
		return nil, fmt.Errorf("AddVertex: maxDegree=%d: %w", maxDegree, ErrBadDegree)
	}

	id := len(b.g.vertices)
	v := &Vertex[P]{
		id:         id,
		maxDegree:  maxDegree,
		neighbours: make([]*Vertex[P], 0, maxDegree),
	}
	if b.payload != nil {
		v.payload = b.payload(id)
	}
	b.g.vertices = append(b.g.vertices, v)

	return v, nil
}

// VertexCount returns the number of vertices added so far.
func (b *Builder[P]) VertexCount() int { return len(b.g.vertices) }

// Vertex returns the vertex with index i.
func (b *Builder[P]) Vertex(i int) (*Vertex[P], error) {
	if i < 0 || i >= len(b.g.vertices) {
		return nil, fmt.Errorf("Vertex(%d): %w", i, ErrVertexNotFound)
	}
	return b.g.vertices[i], nil
}

// Partial exposes the graph under construction through its read-only facade.
// The result tracks every later Connect; constructors use it to inspect their
// own output before Build.
func (b *Builder[P]) Partial() *Graph[P] { return b.g }

// Adjacent reports whether vertices a and c are already connected.
// Out-of-range indices are never adjacent.
// Complexity: O(min(deg a, deg c)).
func (b *Builder[P]) Adjacent(a, c int) bool {
	n := len(b.g.vertices)
	if a < 0 || a >= n || c < 0 || c >= n {
		return false
	}
	return adjacent(b.g.vertices[a], b.g.vertices[c])
}

// Connect links vertices a and c symmetrically and records one edge a→c.
//
// Errors:
//   - ErrUsage after Build.
//   - ErrVertexNotFound for indices outside [0, VertexCount).
//   - ErrLoopNotAllowed for a == c.
//   - ErrMultiEdgeNotAllowed if the pair is already connected.
//   - ErrDegreeExceeded if either endpoint is at MaxDegree.
//
// Complexity: O(min(deg a, deg c)).
func (b *Builder[P]) Connect(a, c int) error {
	if b.frozen {
		return fmt.Errorf("Connect(%d,%d): builder already built: %w", a, c, ErrUsage)
	}
	n := len(b.g.vertices)
	if a < 0 || a >= n {
		return fmt.Errorf("Connect(%d,%d): %w", a, c, ErrVertexNotFound)
	}
	if c < 0 || c >= n {
		return fmt.Errorf("Connect(%d,%d): %w", a, c, ErrVertexNotFound)
	}
	if a == c {
		return fmt.Errorf("Connect(%d,%d): %w", a, c, ErrLoopNotAllowed)
	}

	u, w := b.g.vertices[a], b.g.vertices[c]
	if adjacent(u, w) {
		return fmt.Errorf("Connect(%d,%d): %w", a, c, ErrMultiEdgeNotAllowed)
	}
	if len(u.neighbours) >= u.maxDegree {
		return fmt.Errorf("Connect(%d,%d): %s holds %d: %w", a, c, u, u.maxDegree, ErrDegreeExceeded)
	}
	if len(w.neighbours) >= w.maxDegree {
		return fmt.Errorf("Connect(%d,%d): %s holds %d: %w", a, c, w, w.maxDegree, ErrDegreeExceeded)
	}

	u.neighbours = append(u.neighbours, w)
	w.neighbours = append(w.neighbours, u)
	b.g.edges = append(b.g.edges, Edge[*Vertex[P]]{From: u, To: w})

	return nil
}

// MarkRepaired records that vertex i was deliberately left short of its
// MaxDegree. Marking is idempotent.
func (b *Builder[P]) MarkRepaired(i int) error {
	if b.frozen {
		return fmt.Errorf("MarkRepaired(%d): builder already built: %w", i, ErrUsage)
	}
	v, err := b.Vertex(i)
	if err != nil {
		return fmt.Errorf("MarkRepaired: %w", err)
	}
	for _, r := range b.g.repaired {
		if r == v {
			return nil
		}
	}
	b.g.repaired = append(b.g.repaired, v)

	return nil
}

// Build freezes the builder and returns the Graph. Build may be called once.
func (b *Builder[P]) Build() (*Graph[P], error) {
	if b.frozen {
		return nil, fmt.Errorf("Build: builder already built: %w", ErrUsage)
	}
	b.frozen = true

	return b.g, nil
}

// adjacent scans the shorter neighbour list.
func adjacent[P any](u, w *Vertex[P]) bool {
	if len(w.neighbours) < len(u.neighbours) {
		u, w = w, u
	}
	return u.HasNeighbour(w)
}
