// SPDX-License-Identifier: MIT
// Package: tabula/planarity
//
// collector.go — FaceCollector, the order-preserving face accumulator.

package planarity

import (
	"fmt"

	"github.com/katalvlaran/tabula/core"
	"github.com/katalvlaran/tabula/seq"
)

// Orientation selects how a FaceCollector records a boundary walk.
type Orientation int

const (
	// Forward keeps vertices in NextVertex call order.
	Forward Orientation = iota
	// Reverse records each face in reverse call order by prepending.
	Reverse
)

type phase int

const (
	phaseIdle phase = iota
	phaseTraversing
	phaseInFace
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseTraversing:
		return "traversing"
	case phaseInFace:
		return "in-face"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// FaceCollector accumulates faces in EndFace order, each holding its vertices
// in NextVertex order (or reversed, for Reverse). It neither sorts nor dedups.
//
// Calls outside the protocol are ignored; the first one is kept as an
// ErrUsage error and reported by Faces.
type FaceCollector[V comparable] struct {
	orient Orientation
	phase  phase
	cur    *seq.List[V]
	faces  [][]V
	err    error
}

// NewFaceCollector returns an idle collector.
func NewFaceCollector[V comparable](o Orientation) *FaceCollector[V] {
	return &FaceCollector[V]{orient: o}
}

// BeginTraversal resets the collector to an empty face list.
func (c *FaceCollector[V]) BeginTraversal() {
	if !c.expect("BeginTraversal", phaseIdle) {
		return
	}
	c.faces = nil
	c.cur = nil
	c.err = nil
	c.phase = phaseTraversing
}

// BeginFace opens an empty face.
func (c *FaceCollector[V]) BeginFace() {
	if !c.expect("BeginFace", phaseTraversing) {
		return
	}
	c.cur = seq.New[V]()
	c.phase = phaseInFace
}

// NextVertex records v on the current face.
func (c *FaceCollector[V]) NextVertex(v V) {
	if !c.expect("NextVertex", phaseInFace) {
		return
	}
	if c.orient == Reverse {
		seq.PrependRange(c.cur, []V{v})
		return
	}
	seq.AppendRange(c.cur, []V{v})
}

// NextEdge only checks the phase; edges do not change the face.
func (c *FaceCollector[V]) NextEdge(core.Edge[V]) {
	c.expect("NextEdge", phaseInFace)
}

// EndFace commits the current face.
func (c *FaceCollector[V]) EndFace() {
	if !c.expect("EndFace", phaseInFace) {
		return
	}
	c.faces = append(c.faces, c.cur.Values())
	c.cur = nil
	c.phase = phaseTraversing
}

// EndTraversal ends the traversal; the collector is idle again.
func (c *FaceCollector[V]) EndTraversal() {
	if !c.expect("EndTraversal", phaseTraversing) {
		return
	}
	c.phase = phaseIdle
}

// Faces returns the committed faces and the first protocol violation, if
// any. A traversal that has not ended is reported as ErrUsage.
func (c *FaceCollector[V]) Faces() ([][]V, error) {
	out := make([][]V, len(c.faces))
	copy(out, c.faces)
	if c.err != nil {
		return out, c.err
	}
	if c.phase != phaseIdle {
		return out, fmt.Errorf("Faces: traversal still %s: %w", c.phase, core.ErrUsage)
	}
	return out, nil
}

// expect records a usage error unless the collector is in want.
func (c *FaceCollector[V]) expect(call string, want phase) bool {
	if c.phase == want {
		return true
	}
	if c.err == nil {
		c.err = fmt.Errorf("%s: called while %s, want %s: %w", call, c.phase, want, core.ErrUsage)
	}
	return false
}
