// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only facade of Graph: the View capability set plus degree and
//       identity helpers.
// Policy:
//   - No mutation after Build; AddVertex/AddEdge exist only to reject callers.
//   - Every slice returned is a fresh copy; callers may keep or modify it.

package core

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// fingerprintNamespace scopes Fingerprint UUIDs to tabula graphs.
var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/tabula/core"))

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph[P]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph[P]) EdgeCount() int { return len(g.edges) }

// IsDirected always reports false: tabula graphs are undirected.
func (g *Graph[P]) IsDirected() bool { return false }

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph[P]) Vertices() []*Vertex[P] {
	out := make([]*Vertex[P], len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Vertex returns the vertex with index i.
func (g *Graph[P]) Vertex(i int) (*Vertex[P], error) {
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("Vertex(%d): %w", i, ErrVertexNotFound)
	}
	return g.vertices[i], nil
}

// Edges returns one record per undirected pair in creation order.
// Complexity: O(E).
func (g *Graph[P]) Edges() []Edge[*Vertex[P]] {
	out := make([]Edge[*Vertex[P]], len(g.edges))
	copy(out, g.edges)
	return out
}

// NeighboursOf returns v's neighbours in edge-creation order, or nil when v
// does not belong to g.
// Complexity: O(deg v).
func (g *Graph[P]) NeighboursOf(v *Vertex[P]) []*Vertex[P] {
	if !g.owns(v) {
		return nil
	}
	return v.Neighbours()
}

// HasEdge reports whether a and b are adjacent in g. The relation is symmetric.
// Complexity: O(min(deg a, deg b)).
func (g *Graph[P]) HasEdge(a, b *Vertex[P]) bool {
	if !g.owns(a) || !g.owns(b) {
		return false
	}
	return adjacent(a, b)
}

// AddVertex is not supported: a Graph is immutable once built.
// It always returns ErrUsage.
func (g *Graph[P]) AddVertex(int) (*Vertex[P], error) {
	return nil, fmt.Errorf("AddVertex: graph is read-only after Build: %w", ErrUsage)
}

// AddEdge is not supported: a Graph is immutable once built.
// It always returns ErrUsage.
func (g *Graph[P]) AddEdge(from, to *Vertex[P]) error {
	return fmt.Errorf("AddEdge(%v,%v): graph is read-only after Build: %w", from, to, ErrUsage)
}

// DegreeSequence returns the realised degree of every vertex in index order.
// Complexity: O(V).
func (g *Graph[P]) DegreeSequence() []int {
	out := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = len(v.neighbours)
	}
	return out
}

// Repaired returns the vertices left exactly two endpoints short of their
// MaxDegree, in the order the repair happened.
func (g *Graph[P]) Repaired() []*Vertex[P] {
	out := make([]*Vertex[P], len(g.repaired))
	copy(out, g.repaired)
	return out
}

// Fingerprint returns a name-based UUID of the graph structure: vertex count,
// MaxDegree sequence and the sorted set of undirected index pairs. Two graphs
// with equal fingerprints are structurally identical (payloads and neighbour
// order are ignored).
// Complexity: O(E log E).
func (g *Graph[P]) Fingerprint() uuid.UUID {
	pairs := make([][2]int, len(g.edges))
	for i, e := range g.edges {
		a, b := e.From.id, e.To.id
		if a > b {
			a, b = b, a
		}
		pairs[i] = [2]int{a, b}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	buf := make([]byte, 0, 8*(1+len(g.vertices)+2*len(pairs)))
	buf = binary.BigEndian.AppendUint64(buf, uint64(len(g.vertices)))
	for _, v := range g.vertices {
		buf = binary.BigEndian.AppendUint64(buf, uint64(v.maxDegree))
	}
	for _, p := range pairs {
		buf = binary.BigEndian.AppendUint64(buf, uint64(p[0]))
		buf = binary.BigEndian.AppendUint64(buf, uint64(p[1]))
	}

	return uuid.NewSHA1(fingerprintNamespace, buf)
}

// owns reports whether v is a vertex of g.
func (g *Graph[P]) owns(v *Vertex[P]) bool {
	return v != nil && v.id >= 0 && v.id < len(g.vertices) && g.vertices[v.id] == v
}
