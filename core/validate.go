// SPDX-License-Identifier: MIT
// Package: tabula/core
//
// validate.go — boundary validation of an arbitrary View.
//
// Validate is what consumers (planarity oracle) call before trusting a View
// they did not build themselves. It never mutates the View.

package core

import "fmt"

// Validate checks that g describes an undirected simple graph whose three
// descriptions agree: neighbour lists, HasEdge and the edge records.
//
// Errors (all wrap ErrInvariantViolation):
//   - directed view, or VertexCount disagreeing with Vertices;
//   - duplicate vertices;
//   - self-loops or duplicate neighbours;
//   - neighbours outside the vertex set;
//   - asymmetric adjacency (b ∈ N(a) but a ∉ N(b));
//   - HasEdge disagreeing with the neighbour lists on any ordered pair;
//   - edge records that are loops, duplicated, unknown to adjacency, or that
//     do not cover every adjacent pair.
//
// Complexity: O(V + E) map work plus one HasEdge call per ordered vertex
// pair, O(V²) in total.
func Validate[V comparable](g View[V]) error {
	if g == nil {
		return fmt.Errorf("Validate: nil view: %w", ErrInvariantViolation)
	}
	if g.IsDirected() {
		return fmt.Errorf("Validate: directed view: %w", ErrInvariantViolation)
	}

	vs := g.Vertices()
	if n := g.VertexCount(); n != len(vs) {
		return fmt.Errorf("Validate: VertexCount()=%d but Vertices() has %d: %w", n, len(vs), ErrInvariantViolation)
	}

	// Stage 1: neighbour sets, loops, duplicates.
	adj := make(map[V]map[V]struct{}, len(vs))
	for _, v := range vs {
		if _, dup := adj[v]; dup {
			return fmt.Errorf("Validate: duplicate vertex %v: %w", v, ErrInvariantViolation)
		}
		adj[v] = nil
	}
	halfEdges := 0
	for _, v := range vs {
		nbrs := g.NeighboursOf(v)
		set := make(map[V]struct{}, len(nbrs))
		for _, u := range nbrs {
			if u == v {
				return fmt.Errorf("Validate: self-loop at %v: %w", v, ErrInvariantViolation)
			}
			if _, known := adj[u]; !known {
				return fmt.Errorf("Validate: %v has neighbour %v outside the vertex set: %w", v, u, ErrInvariantViolation)
			}
			if _, dup := set[u]; dup {
				return fmt.Errorf("Validate: %v lists %v twice: %w", v, u, ErrInvariantViolation)
			}
			set[u] = struct{}{}
		}
		adj[v] = set
		halfEdges += len(nbrs)
	}

	// Stage 2: symmetry of neighbour lists.
	for _, v := range vs {
		for u := range adj[v] {
			if _, back := adj[u][v]; !back {
				return fmt.Errorf("Validate: %v→%v has no mirror: %w", v, u, ErrInvariantViolation)
			}
		}
	}

	// Stage 3: HasEdge agrees with the neighbour lists on every ordered pair,
	// which also makes it symmetric and loop-free.
	for _, a := range vs {
		for _, b := range vs {
			_, listed := adj[a][b]
			if got := g.HasEdge(a, b); got != listed {
				return fmt.Errorf("Validate: HasEdge(%v,%v)=%t but neighbour lists say %t: %w",
					a, b, got, listed, ErrInvariantViolation)
			}
		}
	}

	// Stage 4: edge records cover adjacency exactly once.
	seen := make(map[[2]V]struct{}, halfEdges/2)
	for _, e := range g.Edges() {
		if e.From == e.To {
			return fmt.Errorf("Validate: edge record %v–%v is a loop: %w", e.From, e.To, ErrInvariantViolation)
		}
		if _, ok := adj[e.From][e.To]; !ok {
			return fmt.Errorf("Validate: edge record %v–%v absent from adjacency: %w", e.From, e.To, ErrInvariantViolation)
		}
		if _, dup := seen[[2]V{e.From, e.To}]; dup {
			return fmt.Errorf("Validate: edge %v–%v recorded twice: %w", e.From, e.To, ErrInvariantViolation)
		}
		seen[[2]V{e.From, e.To}] = struct{}{}
		seen[[2]V{e.To, e.From}] = struct{}{}
	}
	if len(seen) != halfEdges {
		return fmt.Errorf("Validate: %d edge records for %d adjacent pairs: %w",
			len(seen)/2, halfEdges/2, ErrInvariantViolation)
	}

	return nil
}
