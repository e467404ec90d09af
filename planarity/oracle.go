// SPDX-License-Identifier: MIT
// Package: tabula/planarity
//
// oracle.go — boundary validation and the public planarity entry points.

package planarity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tabula/core"
	"github.com/katalvlaran/tabula/metrics"
)

var (
	// ErrNilGraph indicates a nil View, Embedding or visitor argument.
	ErrNilGraph = errors.New("planarity: graph is nil")

	// ErrNotPlanar indicates that no planar embedding exists.
	ErrNotPlanar = errors.New("planarity: graph is not planar")
)

// Option configures an oracle call.
type Option func(*options)

type options struct {
	metrics *metrics.Registry
}

// WithMetrics records verdicts and face counts into r. Panics on nil.
func WithMetrics(r *metrics.Registry) Option {
	if r == nil {
		panic("planarity: WithMetrics(nil)")
	}
	return func(o *options) {
		o.metrics = r
	}
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// dense is a View translated to indices 0..n-1 in Vertices() order.
type dense[V comparable] struct {
	verts []V
	index map[V]int
	adj   [][]int
}

// densify validates g and copies its adjacency. g is only read.
func densify[V comparable](g core.View[V]) (*dense[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := core.Validate(g); err != nil {
		return nil, err
	}

	verts := g.Vertices()
	d := &dense[V]{
		verts: verts,
		index: make(map[V]int, len(verts)),
		adj:   make([][]int, len(verts)),
	}
	for i, v := range verts {
		d.index[v] = i
	}
	for i, v := range verts {
		nbrs := g.NeighboursOf(v)
		d.adj[i] = make([]int, len(nbrs))
		for k, u := range nbrs {
			d.adj[i][k] = d.index[u]
		}
	}

	return d, nil
}

// IsPlanar reports whether g admits a planar embedding.
//
// Errors: ErrNilGraph, core.ErrInvariantViolation (checked before any work).
func IsPlanar[V comparable](g core.View[V], opts ...Option) (bool, error) {
	o := resolve(opts)
	d, err := densify(g)
	if err != nil {
		o.metrics.RecordPlanarity(metrics.VerdictInvalid)
		return false, fmt.Errorf("IsPlanar: %w", err)
	}

	_, ok := newLRState(d.adj).run()
	o.metrics.RecordPlanarity(verdict(ok))

	return ok, nil
}

// Embed returns a planar embedding of g.
//
// Errors: ErrNilGraph, core.ErrInvariantViolation, ErrNotPlanar.
func Embed[V comparable](g core.View[V], opts ...Option) (*Embedding[V], error) {
	o := resolve(opts)
	d, err := densify(g)
	if err != nil {
		o.metrics.RecordPlanarity(metrics.VerdictInvalid)
		return nil, fmt.Errorf("Embed: %w", err)
	}

	rot, ok := newLRState(d.adj).run()
	o.metrics.RecordPlanarity(verdict(ok))
	if !ok {
		return nil, fmt.Errorf("Embed: %d vertices, %d edges: %w", len(d.verts), edgeCount(d.adj), ErrNotPlanar)
	}

	return &Embedding[V]{
		verts: d.verts,
		index: d.index,
		rot:   rot,
		edges: edgeCount(d.adj),
	}, nil
}

// Faces embeds g and returns every face boundary in traversal order.
//
// Errors: as Embed.
func Faces[V comparable](g core.View[V], opts ...Option) ([][]V, error) {
	emb, err := Embed(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("Faces: %w", err)
	}

	c := NewFaceCollector[V](Forward)
	if err = TraverseFaces[V](emb, c); err != nil {
		return nil, fmt.Errorf("Faces: %w", err)
	}
	faces, err := c.Faces()
	if err != nil {
		return nil, fmt.Errorf("Faces: %w", err)
	}
	resolve(opts).metrics.RecordFaces(len(faces))

	return faces, nil
}

func verdict(planar bool) string {
	if planar {
		return metrics.VerdictPlanar
	}
	return metrics.VerdictNonPlanar
}
