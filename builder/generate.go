// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// generate.go — one-call entry points for the degree-constrained generator.

package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tabula/core"
)

// Generate builds a single degree-constrained graph with zero-value payloads.
// It is BuildGraph(nil, opts, DegreeConstrained[P](p)).
//
// Errors: ErrInvalidParams, ErrNeedRandSource, ErrInfeasibleDegreeSequence,
// ErrDisconnected. The graph is nil whenever err != nil.
func Generate[P any](p Params, opts ...BuilderOption) (*core.Graph[P], error) {
	return BuildGraph[P](nil, opts, DegreeConstrained[P](p))
}

// GenerateWithRetry repeats Generate until a draw succeeds or attempts run
// out. All attempts consume one random stream, so the result is still a pure
// function of the seed. Only ErrInfeasibleDegreeSequence and ErrDisconnected
// are retried; every other error returns immediately. ctx is checked before
// each attempt.
//
// Errors:
//   - ErrOptionViolation if attempts < 1.
//   - ctx.Err() (wrapped) on cancellation.
//   - ErrConstructFailed joined with the last draw's error on exhaustion.
func GenerateWithRetry[P any](ctx context.Context, p Params, attempts int, opts ...BuilderOption) (*core.Graph[P], error) {
	if attempts < 1 {
		return nil, fmt.Errorf("%s: attempts=%d: %w", MethodGenerateWithRetry, attempts, ErrOptionViolation)
	}

	cfg := newBuilderConfig(opts...)
	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: attempt %d: %w", MethodGenerateWithRetry, attempt, err)
		}

		g, err := build[P](nil, cfg, DegreeConstrained[P](p))
		if err == nil {
			cfg.metrics.RecordAttempts(attempt)
			return g, nil
		}
		if !retryable(err) {
			return nil, fmt.Errorf("%s: %w", MethodGenerateWithRetry, err)
		}

		last = err
		cfg.logger.Debug("generation attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
	}

	cfg.metrics.RecordAttempts(attempts)
	return nil, fmt.Errorf("%s: %d attempts: %w", MethodGenerateWithRetry, attempts, errors.Join(ErrConstructFailed, last))
}

// retryable reports whether a fresh draw could succeed where err failed.
func retryable(err error) bool {
	return errors.Is(err, ErrInfeasibleDegreeSequence) || errors.Is(err, ErrDisconnected)
}
