// SPDX-License-Identifier: MIT
// Package: tabula/planarity
//
// visitor.go — the face traversal callback protocol.

package planarity

import "github.com/katalvlaran/tabula/core"

// FaceVisitor receives one traversal of an embedding as the call sequence
//
//	BeginTraversal (BeginFace (NextVertex NextEdge)* EndFace)* EndTraversal
//
// Within a face, NextVertex(v) is followed by NextEdge for the half-edge
// leaving v along the boundary walk.
type FaceVisitor[V comparable] interface {
	BeginTraversal()
	BeginFace()
	NextVertex(v V)
	NextEdge(e core.Edge[V])
	EndFace()
	EndTraversal()
}

// NopVisitor implements every FaceVisitor callback as a no-op. Embed it and
// override only the phases of interest.
type NopVisitor[V comparable] struct{}

func (NopVisitor[V]) BeginTraversal()       {}
func (NopVisitor[V]) BeginFace()            {}
func (NopVisitor[V]) NextVertex(V)          {}
func (NopVisitor[V]) NextEdge(core.Edge[V]) {}
func (NopVisitor[V]) EndFace()              {}
func (NopVisitor[V]) EndTraversal()         {}

// VisitorFuncs adapts plain functions to FaceVisitor. A nil field is a no-op.
type VisitorFuncs[V comparable] struct {
	OnBeginTraversal func()
	OnBeginFace      func()
	OnVertex         func(v V)
	OnEdge           func(e core.Edge[V])
	OnEndFace        func()
	OnEndTraversal   func()
}

func (f VisitorFuncs[V]) BeginTraversal() {
	if f.OnBeginTraversal != nil {
		f.OnBeginTraversal()
	}
}

func (f VisitorFuncs[V]) BeginFace() {
	if f.OnBeginFace != nil {
		f.OnBeginFace()
	}
}

func (f VisitorFuncs[V]) NextVertex(v V) {
	if f.OnVertex != nil {
		f.OnVertex(v)
	}
}

func (f VisitorFuncs[V]) NextEdge(e core.Edge[V]) {
	if f.OnEdge != nil {
		f.OnEdge(e)
	}
}

func (f VisitorFuncs[V]) EndFace() {
	if f.OnEndFace != nil {
		f.OnEndFace()
	}
}

func (f VisitorFuncs[V]) EndTraversal() {
	if f.OnEndTraversal != nil {
		f.OnEndTraversal()
	}
}

// FaceCounter counts faces and ignores everything else.
type FaceCounter[V comparable] struct {
	NopVisitor[V]
	n int
}

// BeginTraversal resets the count.
func (c *FaceCounter[V]) BeginTraversal() { c.n = 0 }

// EndFace counts one face.
func (c *FaceCounter[V]) EndFace() { c.n++ }

// Count returns the number of faces seen in the last traversal.
func (c *FaceCounter[V]) Count() int { return c.n }

var (
	_ FaceVisitor[int] = NopVisitor[int]{}
	_ FaceVisitor[int] = VisitorFuncs[int]{}
	_ FaceVisitor[int] = (*FaceCounter[int])(nil)
	_ FaceVisitor[int] = (*FaceCollector[int])(nil)
)
