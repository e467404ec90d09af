// Package planarity decides whether an undirected simple graph is planar and,
// when it is, enumerates the faces of a planar embedding through a visitor
// protocol.
//
// What & Why:
//
//	IsPlanar validates any core.View at the boundary, translates it to dense
//	indices and runs the left-right planarity test. Embed keeps the rotation
//	system the test produces; TraverseFaces walks it face by face and drives
//	a FaceVisitor:
//
//	  BeginTraversal (BeginFace (NextVertex NextEdge)* EndFace)* EndTraversal
//
//	FaceCollector accumulates faces in call order; FaceCounter only counts.
//	Consumers that care about a few phases embed NopVisitor or fill in a
//	VisitorFuncs.
//
// Complexity:
//
//	IsPlanar, Embed: O(V + E) plus per-vertex sorting of neighbours.
//	TraverseFaces:   O(E); every half-edge is walked exactly once.
//
// Errors:
//
//	ErrNilGraph                - nil View, Embedding or visitor.
//	ErrNotPlanar               - Embed/Faces on a non-planar graph.
//	core.ErrInvariantViolation - the View is not an undirected simple graph.
//	core.ErrUsage              - a FaceCollector was driven out of phase.
package planarity
