// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(payload, bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the result.
//   - Functional options (BuilderOption) resolve into a builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors; never return a partial graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tabula/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only append: vertex indices added by earlier constructors are left alone.
//   - Preserve determinism for the same config and call order.
type Constructor[P any] func(b *core.Builder[P], cfg builderConfig) error

// BuildGraph creates a core.Builder whose vertex payloads come from payload
// (nil leaves them zero), resolves the builder configuration from bopts, and
// applies all constructors in order. The first constructor error is wrapped
// with "BuildGraph: %w" and returned with a nil graph.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph[P any](payload func(index int) P, bopts []BuilderOption, cons ...Constructor[P]) (*core.Graph[P], error) {
	return build(payload, newBuilderConfig(bopts...), cons...)
}

// build runs cons against a fresh core.Builder with an already resolved cfg.
// Retrying callers reuse one cfg so attempts share a single random stream.
func build[P any](payload func(index int) P, cfg builderConfig, cons ...Constructor[P]) (*core.Graph[P], error) {
	b := core.NewBuilder(payload)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Every fixture sets MaxDegree to the vertex's final degree, so its output
// passes the same degree contract as a generated graph.

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
//func Cycle[P any](n int) Constructor[P]

// Path builds a simple path P_n (n ≥ 2).
//func Path[P any](n int) Constructor[P]

// Star builds a star with hub at the first index and n-1 leaves (n ≥ 2).
//func Star[P any](n int) Constructor[P]

// Wheel builds W_n = C_{n-1} + hub (n ≥ 4); the hub is the last index.
//func Wheel[P any](n int) Constructor[P]

// Complete builds K_n (n ≥ 1).
//func Complete[P any](n int) Constructor[P]

// CompleteBipartite builds K_{n1,n2}; left side first (n1, n2 ≥ 1).
//func CompleteBipartite[P any](n1, n2 int) Constructor[P]

// Grid builds an R×C 4-neighbourhood grid in row-major order.
//func Grid[P any](rows, cols int) Constructor[P]

// DegreeConstrained runs the randomized degree-balanced generator.
// Requires cfg.rng != nil.
//func DegreeConstrained[P any](p Params) Constructor[P]
