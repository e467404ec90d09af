// SPDX-License-Identifier: MIT
// Package: tabula/builder
//
// impl_degree_constrained.go - randomized degree-balanced connected graphs.
//
// Contract:
//   - Requires cfg.rng (else ErrNeedRandSource) and valid Params (else ErrInvalidParams).
//   - Appends vertexCount ∈ [MinVertices, MaxVertices) vertices; vertex 0 targets
//     FirstVertexDegree, others draw from [MinDegreePerVertex, MaxDegreePerVertex],
//     and the last one is moved by one so the target sum is even.
//   - Each vertex's MaxDegree is its target. Connect never exceeds it.
//   - A vertex stuck exactly RepairSlack short is left short and marked repaired;
//     any other dead end is ErrInfeasibleDegreeSequence.
//   - The component must be connected (else ErrDisconnected).
//
// Complexity:
//   - Time: O(Σd · n · Δ) where Δ bounds an adjacency test; every inner
//     iteration rescans all n vertices for candidates.
//   - Space: O(n) besides the graph itself.
//
// Determinism:
//   - RNG draws: one Intn for the vertex count, one per vertex for its degree
//     (vertex 0's draw is consumed and discarded), one per placed edge.
//   - Same seed and Params ⇒ identical vertex order, neighbour order and edge list.

package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/tabula/bfs"
	"github.com/katalvlaran/tabula/core"
	"github.com/katalvlaran/tabula/metrics"
)

// DegreeConstrained returns a Constructor that appends one connected
// component built by the greedy minimum-count matching described above.
func DegreeConstrained[P any](p Params) Constructor[P] {
	return func(b *core.Builder[P], cfg builderConfig) error {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", MethodDegreeConstrained, err)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodDegreeConstrained, ErrNeedRandSource)
		}

		run := &degreeRun[P]{
			b:      b,
			rng:    cfg.rng,
			log:    cfg.logger,
			offset: b.VertexCount(),
		}
		err := run.execute(p)
		if err != nil {
			cfg.metrics.RecordGeneration(outcomeOf(err), 0)
			return fmt.Errorf("%s: %w", MethodDegreeConstrained, err)
		}
		cfg.metrics.RecordGeneration(metrics.OutcomeOK, len(run.repaired))

		cfg.logger.Info("degree-constrained graph generated",
			slog.Int("vertices", len(run.target)),
			slog.Int("repaired", len(run.repaired)))

		return nil
	}
}

// degreeRun holds the per-call state of one generation.
type degreeRun[P any] struct {
	b      *core.Builder[P]
	rng    *rand.Rand
	log    *slog.Logger
	offset int // builder index of local vertex 0

	target    []int // requested degree per local vertex
	goal      []int // target minus abandoned endpoints
	count     []int // placed neighbours per local vertex
	remaining int   // endpoints still to place or abandon
	repaired  []int
}

func (r *degreeRun[P]) execute(p Params) error {
	r.drawTargets(p)

	n := len(r.target)
	for i, d := range r.target {
		if d > n-1 {
			return fmt.Errorf("vertex %d needs %d neighbours among %d vertices: %w",
				i, d, n, ErrInfeasibleDegreeSequence)
		}
	}

	for _, d := range r.target {
		if _, err := r.b.AddVertex(d); err != nil {
			return err
		}
		r.remaining += d
	}
	r.goal = append([]int(nil), r.target...)
	r.count = make([]int, n)

	if err := r.connect(); err != nil {
		return err
	}

	return r.checkConnected()
}

// drawTargets picks the vertex count and every target degree.
func (r *degreeRun[P]) drawTargets(p Params) {
	n := p.MinVertices + r.rng.Intn(p.MaxVertices-p.MinVertices)
	span := p.MaxDegreePerVertex - p.MinDegreePerVertex + 1

	r.target = make([]int, n)
	total := 0
	for i := 0; i < n; i++ {
		d := p.MinDegreePerVertex + r.rng.Intn(span)
		switch i {
		case 0:
			d = p.FirstVertexDegree
		case n - 1:
			d = fixParity(total, d, p.MaxDegreePerVertex)
		}
		r.target[i] = d
		total += d
	}
}

// fixParity moves the last draw by one when it would leave the target sum odd:
// down when it already sits at max, up otherwise.
func fixParity(total, last, max int) int {
	if (total+last)%2 == 0 {
		return last
	}
	if last == max {
		return last - 1
	}

	return last + 1
}

// connect is the greedy pass. cur always holds the lowest-index vertex with
// unmet degree, so every vertex before it is already settled.
func (r *degreeRun[P]) connect() error {
	n := len(r.target)
	cand := make([]int, 0, n)

	for cur := r.nextUnmet(0); cur < n; cur = r.nextUnmet(cur + 1) {
		for r.count[cur] < r.goal[cur] {
			cand = r.candidates(cur, cand[:0])
			if len(cand) == 0 {
				if err := r.repair(cur); err != nil {
					return err
				}
				break
			}

			pick := cand[r.rng.Intn(len(cand))]
			if err := r.b.Connect(r.offset+cur, r.offset+pick); err != nil {
				return err
			}
			r.count[cur]++
			r.count[pick]++
			r.remaining -= 2
		}
	}

	if r.remaining != 0 {
		return fmt.Errorf("%d endpoints unaccounted for: %w", r.remaining, core.ErrInvariantViolation)
	}

	return nil
}

// candidates appends to dst every eligible partner of cur that has the
// minimum neighbour count among eligible partners.
func (r *degreeRun[P]) candidates(cur int, dst []int) []int {
	best := -1
	for j := range r.goal {
		if j == cur || r.count[j] >= r.goal[j] || r.b.Adjacent(r.offset+cur, r.offset+j) {
			continue
		}
		switch {
		case best < 0 || r.count[j] < best:
			best = r.count[j]
			dst = append(dst[:0], j)
		case r.count[j] == best:
			dst = append(dst, j)
		}
	}

	return dst
}

// repair abandons the last RepairSlack endpoints of cur, or fails.
func (r *degreeRun[P]) repair(cur int) error {
	short := r.goal[cur] - r.count[cur]
	if short != RepairSlack {
		r.log.Debug("greedy pass stuck",
			slog.Int("vertex", cur),
			slog.Int("short", short),
			slog.Int("remaining", r.remaining))
		return fmt.Errorf("vertex %d stuck %d short of %d: %w",
			cur, short, r.target[cur], ErrInfeasibleDegreeSequence)
	}

	if err := r.b.MarkRepaired(r.offset + cur); err != nil {
		return err
	}
	r.goal[cur] -= RepairSlack
	r.remaining -= RepairSlack
	r.repaired = append(r.repaired, cur)
	r.log.Debug("abandoned two endpoints",
		slog.Int("vertex", cur),
		slog.Int("target", r.target[cur]))

	return nil
}

// nextUnmet returns the first vertex at or after from that is below its goal,
// or len(goal) when none is.
func (r *degreeRun[P]) nextUnmet(from int) int {
	for i := from; i < len(r.goal); i++ {
		if r.count[i] < r.goal[i] {
			return i
		}
	}

	return len(r.goal)
}

// checkConnected walks the component from its first vertex with BFS. All
// neighbours of component vertices lie inside the component, so the walk
// reaches exactly the component when it is connected. On failure the pieces
// are counted for the error message.
func (r *degreeRun[P]) checkConnected() error {
	g := r.b.Partial()
	start, err := g.Vertex(r.offset)
	if err != nil {
		return err
	}
	res, err := bfs.BFS[*core.Vertex[P]](g, start)
	if err != nil {
		return err
	}
	reached := len(res.Order)
	if reached == len(r.target) {
		return nil
	}

	comps, err := bfs.Components[*core.Vertex[P]](g)
	if err != nil {
		return err
	}
	pieces := 0
	for _, c := range comps {
		if c[0].ID() >= r.offset {
			pieces++
		}
	}

	return fmt.Errorf("reached %d of %d vertices, %d components: %w",
		reached, len(r.target), pieces, ErrDisconnected)
}

// outcomeOf maps a generation error to its metrics label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrInfeasibleDegreeSequence):
		return metrics.OutcomeInfeasible
	case errors.Is(err, ErrDisconnected):
		return metrics.OutcomeDisconnect
	default:
		return metrics.OutcomeError
	}
}
