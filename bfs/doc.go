// Package bfs provides breadth-first search over any core.View, returning
// unweighted distances, parent links and visit order, plus the connectivity
// checks the graph generator relies on.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort the walk with an error, and
//     cancellation through WithContext.
//
// Determinism
//
//	Neighbours are enqueued in View.NeighboursOf order, which for core.Graph
//	is edge-creation order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Connectivity
//
//	Connected(g) reports whether a BFS from the first vertex reaches every
//	vertex; Components(g) splits the vertex set into connected components in
//	first-seen order.
package bfs
