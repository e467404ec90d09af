// SPDX-License-Identifier: MIT
// Package: tabula/planarity
//
// lr.go — left-right planarity test over a dense index graph.
//
// Phases:
//   1. orientation: DFS assigns heights, orients every edge away from the
//      root (tree edges) or towards an ancestor (back edges), and computes
//      lowpt, lowpt2 and the nesting depth of each oriented edge.
//   2. testing: a second DFS in nesting-depth order maintains a stack of
//      conflict pairs of return-edge intervals; an unresolvable conflict
//      means the graph is not planar.
//   3. embedding: signed nesting depths give each vertex its clockwise
//      rotation, and a third DFS inserts the reverse half-edges.
//
// Determinism: neighbours are visited in input order and every sort is stable,
// so equal inputs give equal rotations.
//
// Complexity: O(V + E) map work, plus O(d log d) sorting per vertex.

package planarity

import "sort"

// arc is an oriented edge between dense vertex indices.
type arc struct{ from, to int }

// noArc stands for "no edge" in intervals and references.
var noArc = arc{-1, -1}

// interval is a range of return edges [low, high] on one side.
type interval struct{ low, high arc }

func emptyInterval() interval { return interval{low: noArc, high: noArc} }

func (i interval) empty() bool { return i.low == noArc && i.high == noArc }

// conflictPair holds two intervals whose return edges must sit on opposite sides.
type conflictPair struct{ left, right interval }

func newConflictPair() *conflictPair {
	return &conflictPair{left: emptyInterval(), right: emptyInterval()}
}

func (p *conflictPair) swap() { p.left, p.right = p.right, p.left }

// lrState carries all bookkeeping of one planarity run.
type lrState struct {
	n   int
	adj [][]int

	height     []int // -1 until visited
	parentEdge []arc
	roots      []int

	oriented map[arc]bool
	out      [][]int // oriented adjacency, later sorted by nesting depth

	lowpt, lowpt2, nesting map[arc]int
	lowptEdge              map[arc]arc
	ref                    map[arc]arc
	side                   map[arc]int

	stack       []*conflictPair
	stackBottom map[arc]*conflictPair

	leftRef, rightRef []int
	rot               *rotationSystem
}

func newLRState(adj [][]int) *lrState {
	n := len(adj)
	s := &lrState{
		n:           n,
		adj:         adj,
		height:      make([]int, n),
		parentEdge:  make([]arc, n),
		oriented:    make(map[arc]bool),
		out:         make([][]int, n),
		lowpt:       make(map[arc]int),
		lowpt2:      make(map[arc]int),
		nesting:     make(map[arc]int),
		lowptEdge:   make(map[arc]arc),
		ref:         make(map[arc]arc),
		side:        make(map[arc]int),
		stackBottom: make(map[arc]*conflictPair),
		leftRef:     make([]int, n),
		rightRef:    make([]int, n),
	}
	for i := range s.height {
		s.height[i] = -1
		s.parentEdge[i] = noArc
		s.leftRef[i] = -1
		s.rightRef[i] = -1
	}

	return s
}

// edgeCount returns the number of undirected edges in adj.
func edgeCount(adj [][]int) int {
	half := 0
	for _, nbrs := range adj {
		half += len(nbrs)
	}
	return half / 2
}

// run decides planarity and, when planar, returns the rotation system.
func (s *lrState) run() (*rotationSystem, bool) {
	if s.n > 2 && edgeCount(s.adj) > 3*s.n-6 {
		return nil, false
	}

	for v := 0; v < s.n; v++ {
		if s.height[v] < 0 {
			s.height[v] = 0
			s.roots = append(s.roots, v)
			s.orient(v)
		}
	}

	// Both sorts start from DFS discovery order so ties break the same way.
	discovered := make([][]int, s.n)
	for v, out := range s.out {
		discovered[v] = append([]int(nil), out...)
	}

	s.sortByNesting()
	for _, v := range s.roots {
		if !s.test(v) {
			return nil, false
		}
	}

	for v := 0; v < s.n; v++ {
		for _, w := range s.out[v] {
			e := arc{v, w}
			s.nesting[e] = s.sign(e) * s.nesting[e]
		}
	}
	s.out = discovered
	s.sortByNesting()

	s.rot = newRotationSystem(s.n)
	for v := 0; v < s.n; v++ {
		prev := -1
		for _, w := range s.out[v] {
			s.rot.addHalfEdgeCW(v, w, prev)
			prev = w
		}
	}
	for _, v := range s.roots {
		s.embed(v)
	}

	return s.rot, true
}

// sortByNesting orders each oriented adjacency list by nesting depth.
func (s *lrState) sortByNesting() {
	for v := 0; v < s.n; v++ {
		out := s.out[v]
		sort.SliceStable(out, func(i, j int) bool {
			return s.nesting[arc{v, out[i]}] < s.nesting[arc{v, out[j]}]
		})
	}
}

// orient is the first DFS.
func (s *lrState) orient(v int) {
	e := s.parentEdge[v]
	for _, w := range s.adj[v] {
		if s.oriented[arc{v, w}] || s.oriented[arc{w, v}] {
			continue
		}
		vw := arc{v, w}
		s.oriented[vw] = true
		s.out[v] = append(s.out[v], w)
		s.lowpt[vw] = s.height[v]
		s.lowpt2[vw] = s.height[v]

		if s.height[w] < 0 {
			s.parentEdge[w] = vw
			s.height[w] = s.height[v] + 1
			s.orient(w)
		} else {
			s.lowpt[vw] = s.height[w]
		}

		s.nesting[vw] = 2 * s.lowpt[vw]
		if s.lowpt2[vw] < s.height[v] {
			s.nesting[vw]++ // chordal
		}

		if e == noArc {
			continue
		}
		switch {
		case s.lowpt[vw] < s.lowpt[e]:
			s.lowpt2[e] = min(s.lowpt[e], s.lowpt2[vw])
			s.lowpt[e] = s.lowpt[vw]
		case s.lowpt[vw] > s.lowpt[e]:
			s.lowpt2[e] = min(s.lowpt2[e], s.lowpt[vw])
		default:
			s.lowpt2[e] = min(s.lowpt2[e], s.lowpt2[vw])
		}
	}
}

func (s *lrState) top() *conflictPair {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s *lrState) pop() *conflictPair {
	p := s.top()
	s.stack = s.stack[:len(s.stack)-1]
	return p
}

func (s *lrState) refOf(e arc) arc {
	if r, ok := s.ref[e]; ok {
		return r
	}
	return noArc
}

func (s *lrState) setRef(e, to arc) {
	if e != noArc {
		s.ref[e] = to
	}
}

func (s *lrState) sideOf(e arc) int {
	if d, ok := s.side[e]; ok {
		return d
	}
	return 1
}

func (s *lrState) conflicting(i interval, b arc) bool {
	return !i.empty() && s.lowpt[i.high] > s.lowpt[b]
}

func (s *lrState) lowest(p *conflictPair) int {
	if p.left.empty() {
		return s.lowpt[p.right.low]
	}
	if p.right.empty() {
		return s.lowpt[p.left.low]
	}
	return min(s.lowpt[p.left.low], s.lowpt[p.right.low])
}

// test is the second DFS.
func (s *lrState) test(v int) bool {
	e := s.parentEdge[v]
	for _, w := range s.out[v] {
		ei := arc{v, w}
		s.stackBottom[ei] = s.top()

		if ei == s.parentEdge[w] {
			if !s.test(w) {
				return false
			}
		} else {
			s.lowptEdge[ei] = ei
			s.stack = append(s.stack, &conflictPair{left: emptyInterval(), right: interval{low: ei, high: ei}})
		}

		if s.lowpt[ei] < s.height[v] {
			if w == s.out[v][0] {
				s.lowptEdge[e] = s.lowptEdge[ei]
			} else if !s.addConstraints(ei, e) {
				return false
			}
		}
	}

	if e != noArc {
		s.removeBackEdges(e)
	}

	return true
}

func (s *lrState) addConstraints(ei, e arc) bool {
	p := newConflictPair()

	// Merge return edges of ei into p.right.
	for {
		q := s.pop()
		if !q.left.empty() {
			q.swap()
		}
		if !q.left.empty() {
			return false
		}
		if s.lowpt[q.right.low] > s.lowpt[e] {
			if p.right.empty() {
				p.right = q.right
			} else {
				s.setRef(p.right.low, q.right.high)
			}
			p.right.low = q.right.low
		} else {
			s.setRef(q.right.low, s.lowptEdge[e])
		}
		if s.top() == s.stackBottom[ei] {
			break
		}
	}

	// Merge conflicting return edges of earlier siblings into p.left.
	for len(s.stack) > 0 && (s.conflicting(s.top().left, ei) || s.conflicting(s.top().right, ei)) {
		q := s.pop()
		if s.conflicting(q.right, ei) {
			q.swap()
		}
		if s.conflicting(q.right, ei) {
			return false
		}
		s.setRef(p.right.low, q.right.high)
		if q.right.low != noArc {
			p.right.low = q.right.low
		}
		if p.left.empty() {
			p.left = q.left
		} else {
			s.setRef(p.left.low, q.left.high)
		}
		p.left.low = q.left.low
	}

	if !(p.left.empty() && p.right.empty()) {
		s.stack = append(s.stack, p)
	}

	return true
}

func (s *lrState) removeBackEdges(e arc) {
	u := e.from

	for len(s.stack) > 0 && s.lowest(s.top()) == s.height[u] {
		p := s.pop()
		if p.left.low != noArc {
			s.side[p.left.low] = -1
		}
	}

	if len(s.stack) > 0 {
		p := s.pop()

		for p.left.high != noArc && p.left.high.to == u {
			p.left.high = s.refOf(p.left.high)
		}
		if p.left.high == noArc && p.left.low != noArc {
			s.setRef(p.left.low, p.right.low)
			s.side[p.left.low] = -1
			p.left.low = noArc
		}

		for p.right.high != noArc && p.right.high.to == u {
			p.right.high = s.refOf(p.right.high)
		}
		if p.right.high == noArc && p.right.low != noArc {
			s.setRef(p.right.low, p.left.low)
			s.side[p.right.low] = -1
			p.right.low = noArc
		}

		s.stack = append(s.stack, p)
	}

	// The side of e follows its highest return edge.
	if s.lowpt[e] < s.height[u] && len(s.stack) > 0 {
		hl, hr := s.top().left.high, s.top().right.high
		if hl != noArc && (hr == noArc || s.lowpt[hl] > s.lowpt[hr]) {
			s.setRef(e, hl)
		} else {
			s.setRef(e, hr)
		}
	}
}

// sign resolves the reference chain of e into an absolute side.
func (s *lrState) sign(e arc) int {
	if r := s.refOf(e); r != noArc {
		s.side[e] = s.sideOf(e) * s.sign(r)
		delete(s.ref, e)
	}
	return s.sideOf(e)
}

// embed is the third DFS.
func (s *lrState) embed(v int) {
	for _, w := range s.out[v] {
		ei := arc{v, w}
		if ei == s.parentEdge[w] {
			s.rot.addHalfEdgeFirst(w, v)
			s.leftRef[v] = w
			s.rightRef[v] = w
			s.embed(w)
			continue
		}
		if s.sideOf(ei) == 1 {
			s.rot.addHalfEdgeCW(w, v, s.rightRef[w])
		} else {
			s.rot.addHalfEdgeCCW(w, v, s.leftRef[w])
			s.leftRef[w] = v
		}
	}
}
