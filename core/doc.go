// Package core provides the build-once, read-only Graph that every other
// tabula package consumes, together with the minimal View abstraction the
// planarity oracle is written against.
//
// The Graph G = (V,E) is always:
//
//   - Undirected: an edge A–B exists iff B ∈ N(A) and A ∈ N(B).
//   - Simple: no self-loops, no parallel edges.
//   - Degree-bounded: every Vertex carries a MaxDegree fixed at creation;
//     its neighbour list never grows past it.
//   - Immutable after Build: AddVertex/AddEdge on a Graph return ErrUsage.
//
// Construction goes through Builder:
//
//	b := core.NewBuilder[string](func(i int) string { return "v" + strconv.Itoa(i) })
//	a, _ := b.AddVertex(2)
//	c, _ := b.AddVertex(2)
//	_ = b.Connect(a.ID(), c.ID())
//	g, err := b.Build()
//
// Core Methods:
//
//	// View[V] (consumed by planarity and bfs)
//	VertexCount() int                    // O(1)
//	IsDirected() bool                    // always false
//	Vertices() []*Vertex[P]              // O(V), insertion order
//	Edges() []Edge[*Vertex[P]]           // O(E), creation order
//	NeighboursOf(v) []*Vertex[P]         // O(deg v), creation order
//	HasEdge(a, b) bool                   // O(min(deg a, deg b))
//
//	// Extras
//	EdgeCount() int                      // O(1)
//	Vertex(i int) (*Vertex[P], error)    // O(1)
//	DegreeSequence() []int               // O(V)
//	Repaired() []*Vertex[P]              // vertices left short by the generator repair
//	Fingerprint() uuid.UUID              // O(E log E), structural identity
//
//	// Boundary validation for any View
//	Validate(g View[V]) error            // O(V·deg² + E·deg)
//
// Errors:
//
//	ErrUsage              – mutation after Build, or protocol misuse by a caller
//	ErrInvariantViolation – asymmetric adjacency, duplicates, self-loops, directed views
//	ErrVertexNotFound     – index outside the vertex range
//	ErrLoopNotAllowed     – Connect(v, v)
//	ErrMultiEdgeNotAllowed – Connect on an existing pair
//	ErrDegreeExceeded     – Connect on a vertex already at MaxDegree
//	ErrBadDegree          – negative MaxDegree
package core
