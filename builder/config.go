// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • rng     = nil          (stochastic constructors return ErrNeedRandSource)
//   • logger  = discard      (no output unless WithLogger is given)
//   • metrics = nil          (Registry methods are nil-safe)

package builder

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/tabula/metrics"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; the rng pointer is shared, so one
// resolved config consumes a single random stream across constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Diagnostics sink; never nil after newBuilderConfig.
	logger *slog.Logger
	// Optional instruments; nil disables recording.
	metrics *metrics.Registry
}

// discardLogger drops every record.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
