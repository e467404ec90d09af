// Package tabula builds random connected graphs with bounded vertex degrees
// and, when such a graph is planar, lists the faces of one planar embedding.
//
// 🚀 What is inside?
//
//   - core: immutable Graph, Vertex and Edge types, the read-only View
//     interface and a structural validator.
//   - builder: the degree-constrained generator (Generate, GenerateWithRetry)
//     plus deterministic fixtures: Cycle, Path, Star, Wheel, Complete,
//     CompleteBipartite, Grid.
//   - planarity: left-right planarity test, rotation-system embedding and
//     face traversal with pluggable visitors.
//   - bfs: breadth-first search and connectivity over any View.
//   - seq: ordered sequences with range append and prepend.
//   - config: YAML run configuration.
//   - metrics: Prometheus counters and histograms for runs and verdicts.
//   - cmd/tabula: command-line front end.
//
// ✨ Guarantees
//
//   - Deterministic: the same seed and parameters give the same graph, the
//     same embedding and the same face order.
//   - Every generated vertex stays within its target degree; a vertex the
//     greedy pass could not finish is left exactly two short and listed in
//     Graph.Repaired.
//   - Errors are sentinel values matched with errors.Is; nothing panics on bad
//     input except option constructors given nil.
//
// Quick example:
//
//	g, err := builder.GenerateWithRetry[struct{}](ctx, config.Default().Graph, 10,
//		builder.WithSeed(42))
//	if err != nil { ... }
//	faces, err := planarity.Faces[*core.Vertex[struct{}]](g)
//	if errors.Is(err, planarity.ErrNotPlanar) { ... }
//
//	go get github.com/katalvlaran/tabula
package tabula
