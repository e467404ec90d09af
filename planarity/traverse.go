// SPDX-License-Identifier: MIT
// Package: tabula/planarity
//
// traverse.go — face enumeration over an Embedding.

package planarity

import (
	"fmt"

	"github.com/katalvlaran/tabula/core"
)

// TraverseFaces walks every face of emb exactly once and reports it to vis.
//
// Half-edges are taken by vertex order, then clockwise from each vertex's
// first neighbour; every unvisited one starts a new face. A face entered on
// half-edge (v,w) continues with (w, x) where x precedes v counter-clockwise
// around w, and ends when it returns to v along the half-edge before (v,w).
//
// Errors: ErrNilGraph for a nil emb or vis; core.ErrInvariantViolation if the
// rotation system repeats a half-edge (a corrupt embedding).
// Complexity: O(E).
func TraverseFaces[V comparable](emb *Embedding[V], vis FaceVisitor[V]) error {
	if emb == nil || vis == nil {
		return fmt.Errorf("TraverseFaces: %w", ErrNilGraph)
	}

	seen := make(map[arc]bool, 2*emb.edges)
	vis.BeginTraversal()
	for v := range emb.verts {
		for _, w := range emb.rot.rotation(v) {
			if seen[arc{v, w}] {
				continue
			}
			if err := walkFace(emb, vis, seen, v, w); err != nil {
				return fmt.Errorf("TraverseFaces: %w", err)
			}
		}
	}
	vis.EndTraversal()

	return nil
}

// walkFace reports the face to the left of half-edge (v,w).
func walkFace[V comparable](emb *Embedding[V], vis FaceVisitor[V], seen map[arc]bool, v, w int) error {
	rot := emb.rot
	incoming := rot.cw[v][w]

	vis.BeginFace()
	seen[arc{v, w}] = true
	vis.NextVertex(emb.verts[v])
	vis.NextEdge(core.Edge[V]{From: emb.verts[v], To: emb.verts[w]})

	prev, cur := v, w
	for cur != v || prev != incoming {
		vis.NextVertex(emb.verts[cur])
		prev, cur = cur, rot.ccw[cur][prev]
		if seen[arc{prev, cur}] {
			return fmt.Errorf("half-edge %d→%d walked twice: %w", prev, cur, core.ErrInvariantViolation)
		}
		seen[arc{prev, cur}] = true
		vis.NextEdge(core.Edge[V]{From: emb.verts[prev], To: emb.verts[cur]})
	}
	vis.EndFace()

	return nil
}
