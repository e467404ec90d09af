// SPDX-License-Identifier: MIT
// Package: tabula/planarity
//
// embedding.go — combinatorial embedding (rotation system).

package planarity

// rotationSystem stores, per vertex, the clockwise and counter-clockwise
// successor of every neighbour plus a designated first neighbour.
type rotationSystem struct {
	cw, ccw []map[int]int
	first   []int // -1 for a vertex without half-edges
}

func newRotationSystem(n int) *rotationSystem {
	r := &rotationSystem{
		cw:    make([]map[int]int, n),
		ccw:   make([]map[int]int, n),
		first: make([]int, n),
	}
	for v := 0; v < n; v++ {
		r.cw[v] = make(map[int]int)
		r.ccw[v] = make(map[int]int)
		r.first[v] = -1
	}
	return r
}

// addHalfEdgeCW inserts start→end clockwise right after ref. ref < 0 is only
// valid while start has no half-edges yet; end then becomes the first one.
func (r *rotationSystem) addHalfEdgeCW(start, end, ref int) {
	if ref < 0 {
		r.cw[start][end] = end
		r.ccw[start][end] = end
		r.first[start] = end
		return
	}
	next := r.cw[start][ref]
	r.cw[start][ref] = end
	r.cw[start][end] = next
	r.ccw[start][end] = ref
	r.ccw[start][next] = end
}

// addHalfEdgeCCW inserts start→end counter-clockwise right before ref.
func (r *rotationSystem) addHalfEdgeCCW(start, end, ref int) {
	if ref < 0 {
		r.addHalfEdgeCW(start, end, -1)
		return
	}
	r.addHalfEdgeCW(start, end, r.ccw[start][ref])
	if ref == r.first[start] {
		r.first[start] = end
	}
}

// addHalfEdgeFirst inserts start→end as the new first neighbour of start.
func (r *rotationSystem) addHalfEdgeFirst(start, end int) {
	r.addHalfEdgeCCW(start, end, r.first[start])
}

// rotation returns v's neighbours clockwise from its first neighbour.
func (r *rotationSystem) rotation(v int) []int {
	f := r.first[v]
	if f < 0 {
		return nil
	}
	out := make([]int, 0, len(r.cw[v]))
	for w := f; ; {
		out = append(out, w)
		w = r.cw[v][w]
		if w == f {
			break
		}
	}
	return out
}

// Embedding is a planar combinatorial embedding of a View: for every vertex
// the clockwise cyclic order of its neighbours. It is read-only and safe for
// concurrent readers.
type Embedding[V comparable] struct {
	verts []V
	index map[V]int
	rot   *rotationSystem
	edges int
}

// VertexCount returns the number of embedded vertices.
func (e *Embedding[V]) VertexCount() int { return len(e.verts) }

// EdgeCount returns the number of embedded undirected edges.
func (e *Embedding[V]) EdgeCount() int { return e.edges }

// Vertices returns the embedded vertices in the source View's order.
func (e *Embedding[V]) Vertices() []V {
	out := make([]V, len(e.verts))
	copy(out, e.verts)
	return out
}

// RotationAt returns v's neighbours in clockwise order, starting from a
// deterministic first neighbour. It returns nil for an unknown or isolated v.
func (e *Embedding[V]) RotationAt(v V) []V {
	i, ok := e.index[v]
	if !ok {
		return nil
	}
	idx := e.rot.rotation(i)
	if idx == nil {
		return nil
	}
	out := make([]V, len(idx))
	for k, w := range idx {
		out[k] = e.verts[w]
	}
	return out
}
