// SPDX-License-Identifier: MIT
// Package metrics exposes Prometheus instruments for graph generation and
// planarity checks.
//
// Every Registry owns a private prometheus.Registry so independent runs (and
// parallel tests) never collide on metric names. All Record methods are safe
// on a nil *Registry, which lets callers leave metrics unconfigured.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcomes used as the "outcome" label.
const (
	OutcomeOK         = "ok"
	OutcomeInfeasible = "infeasible"
	OutcomeDisconnect = "disconnected"
	OutcomeError      = "error"
)

// Planarity verdicts used as the "verdict" label.
const (
	VerdictPlanar    = "planar"
	VerdictNonPlanar = "non_planar"
	VerdictInvalid   = "invalid"
)

// Registry holds all tabula instruments.
type Registry struct {
	GraphsGenerated    *prometheus.CounterVec
	DegreeRepairs      prometheus.Counter
	GenerationAttempts prometheus.Histogram
	PlanarityChecks    *prometheus.CounterVec
	FacesExtracted     prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with all instruments registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initGenerationMetrics()
	r.initPlanarityMetrics()
	return r
}

func (r *Registry) initGenerationMetrics() {
	r.GraphsGenerated = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabula_graphs_generated_total",
			Help: "Degree-constrained generation runs by outcome",
		},
		[]string{"outcome"},
	)

	r.DegreeRepairs = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "tabula_degree_repairs_total",
			Help: "Vertices left exactly two endpoints short by the deadlock repair",
		},
	)

	r.GenerationAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tabula_generation_attempts",
			Help:    "Attempts spent per GenerateWithRetry call",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
}

func (r *Registry) initPlanarityMetrics() {
	r.PlanarityChecks = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tabula_planarity_checks_total",
			Help: "Planarity checks by verdict",
		},
		[]string{"verdict"},
	)

	r.FacesExtracted = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tabula_faces_extracted",
			Help:    "Faces per extracted planar embedding",
			Buckets: prometheus.LinearBuckets(2, 2, 10),
		},
	)
}

// Prometheus returns the underlying registry for exposition.
func (r *Registry) Prometheus() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// RecordGeneration counts one generation run and the repairs it performed.
func (r *Registry) RecordGeneration(outcome string, repairs int) {
	if r == nil {
		return
	}
	r.GraphsGenerated.WithLabelValues(outcome).Inc()
	if repairs > 0 {
		r.DegreeRepairs.Add(float64(repairs))
	}
}

// RecordAttempts observes how many attempts a retrying generation used.
func (r *Registry) RecordAttempts(n int) {
	if r == nil {
		return
	}
	r.GenerationAttempts.Observe(float64(n))
}

// RecordPlanarity counts one planarity verdict.
func (r *Registry) RecordPlanarity(verdict string) {
	if r == nil {
		return
	}
	r.PlanarityChecks.WithLabelValues(verdict).Inc()
}

// RecordFaces observes the face count of one embedding.
func (r *Registry) RecordFaces(n int) {
	if r == nil {
		return
	}
	r.FacesExtracted.Observe(float64(n))
}
