// Package builder constructs core graphs: the randomized degree-constrained
// generator and a set of deterministic fixtures, all composed through one
// orchestrator.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        runs Constructors in order against one core.Builder.
//     – Constructor[P]:    func(*core.Builder[P], builderConfig) error.
//     – BuilderOption:     WithSeed, WithRand, WithLogger, WithMetrics.
//   - Degree-constrained generation:
//     – Params:            vertex range and degree bounds, tag-validated.
//     – DegreeConstrained: greedy minimum-count matching with the
//     exactly-two-short repair and a BFS connectivity gate.
//     – Generate, GenerateWithRetry: one-call entry points.
//   - Fixtures (each vertex's MaxDegree is its final degree):
//     – Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - Label schemes usable as payload functions:
//     – DecimalLabel, SymbolLabel, AlphanumericLabel, ExcelColumnLabel,
//     HexLabel, PrefixedLabel, GridLabel.
//
// Guarantees:
//
//   - Determinism: same seed, Params and constructor order ⇒ identical graph,
//     down to neighbour order and Fingerprint.
//   - Fast-fail on invalid option values via panics in option constructors.
//   - Runtime failures are sentinel errors (ErrInfeasibleDegreeSequence,
//     ErrDisconnected, ErrInvalidParams, ...) and never come with a graph.
//
// Known approximation: a vertex the greedy pass leaves exactly two endpoints
// short is accepted as is and listed in Graph.Repaired. Its realised degree
// is MaxDegree-2. More than one vertex may be repaired in one run.
package builder
