package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabula/core"
)

// newDegreeRun prepares a run over fresh vertices with the given targets,
// skipping the random draws.
func newDegreeRun(t *testing.T, targets ...int) *degreeRun[struct{}] {
	t.Helper()

	b := core.NewBuilder[struct{}](nil)
	r := &degreeRun[struct{}]{
		b:      b,
		rng:    rand.New(rand.NewSource(1)),
		log:    discardLogger,
		target: targets,
		goal:   append([]int(nil), targets...),
		count:  make([]int, len(targets)),
	}
	for _, d := range targets {
		_, err := b.AddVertex(d)
		require.NoError(t, err)
		r.remaining += d
	}
	return r
}

// link places one edge the way the greedy pass does.
func (r *degreeRun[P]) link(t *testing.T, a, c int) {
	t.Helper()
	require.NoError(t, r.b.Connect(r.offset+a, r.offset+c))
	r.count[a]++
	r.count[c]++
	r.remaining -= 2
}

func TestDegreeRun_CandidatesKeepMinimumCount(t *testing.T) {
	t.Parallel()

	r := newDegreeRun(t, 3, 3, 2, 2, 3)

	r.link(t, 0, 1)
	assert.Equal(t, []int{2, 3, 4}, r.candidates(0, nil), "self and adjacent vertices are skipped")

	r.link(t, 2, 3)
	assert.Equal(t, []int{4}, r.candidates(0, nil), "only the least connected partner remains")
	assert.Equal(t, []int{4}, r.candidates(1, nil))

	r.link(t, 4, 3) // vertex 3 is now full
	assert.Equal(t, []int{2, 4}, r.candidates(0, nil), "full vertices are skipped")
	assert.Equal(t, []int{0, 1, 4}, r.candidates(2, nil))
}

func TestDegreeRun_CandidatesIgnoreIneligibleMinimum(t *testing.T) {
	t.Parallel()

	// Vertex 1 has the lowest count but is adjacent to 0; it must not hide
	// the eligible partners.
	r := newDegreeRun(t, 3, 3, 3, 3, 3)
	r.link(t, 0, 1)
	r.link(t, 2, 3)
	r.link(t, 2, 4)
	r.link(t, 3, 4)
	assert.Equal(t, []int{2, 3, 4}, r.candidates(0, nil))
}

func TestDegreeRun_RepairExactlyTwoShort(t *testing.T) {
	t.Parallel()

	r := newDegreeRun(t, 3, 1, 2)
	r.link(t, 0, 1)
	before := r.remaining

	require.NoError(t, r.repair(0))
	assert.Equal(t, 1, r.goal[0])
	assert.Equal(t, 3, r.target[0], "target is kept")
	assert.Equal(t, before-RepairSlack, r.remaining)
	assert.Equal(t, []int{0}, r.repaired)
	assert.Equal(t, 2, r.nextUnmet(0), "repaired vertex counts as settled")

	g := r.b.Partial()
	require.Len(t, g.Repaired(), 1)
	assert.Equal(t, 0, g.Repaired()[0].ID())
}

func TestDegreeRun_RepairRejectsOtherShortfalls(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		targets []int
		cur     int
		want    string
	}{
		{"one short", []int{1, 2}, 1, "vertex 1 stuck 1 short of 2"},
		{"three short", []int{4, 1}, 0, "vertex 0 stuck 3 short of 4"},
	}
	for _, tc := range tests {
		r := newDegreeRun(t, tc.targets...)
		r.link(t, 0, 1)

		err := r.repair(tc.cur)
		require.ErrorIs(t, err, ErrInfeasibleDegreeSequence, tc.name)
		assert.Contains(t, err.Error(), tc.want, tc.name)
		assert.Empty(t, r.repaired, tc.name)
		assert.Empty(t, r.b.Partial().Repaired(), tc.name)
	}
}

func TestDegreeRun_CheckConnectedCountsComponents(t *testing.T) {
	t.Parallel()

	r := newDegreeRun(t, 2, 2, 2, 2, 2, 2)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}} {
		r.link(t, p[0], p[1])
	}
	err := r.checkConnected()
	require.ErrorIs(t, err, ErrDisconnected)
	assert.Contains(t, err.Error(), "reached 3 of 6 vertices, 2 components")
}

// TestDegreeRun_CheckConnectedAfterOtherConstructors ignores vertices that an
// earlier constructor appended.
func TestDegreeRun_CheckConnectedAfterOtherConstructors(t *testing.T) {
	t.Parallel()

	b := core.NewBuilder[struct{}](nil)
	for i := 0; i < 2; i++ {
		_, err := b.AddVertex(0)
		require.NoError(t, err)
	}
	r := &degreeRun[struct{}]{b: b, log: discardLogger, offset: b.VertexCount(), target: []int{1, 1, 1, 1}}
	for range r.target {
		_, err := b.AddVertex(1)
		require.NoError(t, err)
	}
	require.NoError(t, b.Connect(2, 3))
	require.NoError(t, b.Connect(4, 5))

	err := r.checkConnected()
	require.ErrorIs(t, err, ErrDisconnected)
	assert.Contains(t, err.Error(), "reached 2 of 4 vertices, 2 components")

	r.target = r.target[:2]
	assert.NoError(t, r.checkConnected(), "a two-vertex run sees only its own component")
}
