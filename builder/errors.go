// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site ("<Method>: ...: %w").
//   • Algorithms never panic; panics are confined to WithX option constructors.
//   • A failed constructor returns no graph; BuildGraph never hands out a
//     partially built Graph.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, side of a
// bipartition) is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not complete: a nil
// constructor was supplied, or GenerateWithRetry exhausted its attempts. In
// the latter case the last attempt's error is joined to it.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless option or call argument that must
// surface as an error rather than a panic (e.g. attempts < 1).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrInvalidParams indicates a Params value that fails validation.
var ErrInvalidParams = errors.New("builder: invalid generation parameters")

// ErrInfeasibleDegreeSequence indicates that the drawn target degrees cannot
// be realised: a target exceeds vertexCount-1, or the greedy pass got stuck
// with a vertex more than two endpoints short.
var ErrInfeasibleDegreeSequence = errors.New("builder: infeasible degree sequence")

// ErrDisconnected indicates that the greedy pass satisfied every degree but
// left the graph split into several components.
var ErrDisconnected = errors.New("builder: generated graph is disconnected")
