// File: builder_impl_test.go
// Package builder_test contains functional tests for the deterministic
// fixture constructors, verifying topology, counts and the degree contract.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabula/builder"
	"github.com/katalvlaran/tabula/core"
)

type pair struct{ U, V int }

// edgeSet returns the undirected index pairs of g, normalized so U < V.
func edgeSet[P any](g *core.Graph[P]) map[pair]bool {
	out := make(map[pair]bool, g.EdgeCount())
	for _, e := range g.Edges() {
		u, v := e.From.ID(), e.To.ID()
		if u > v {
			u, v = v, u
		}
		out[pair{u, v}] = true
	}
	return out
}

// assertSaturated checks every vertex ended exactly at its MaxDegree.
func assertSaturated[P any](t *testing.T, g *core.Graph[P]) {
	t.Helper()
	for _, v := range g.Vertices() {
		assert.Equal(t, v.MaxDegree(), v.Degree(), "vertex %s", v)
	}
	require.NoError(t, core.Validate[*core.Vertex[P]](g))
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor[string]
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph[string])
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle[string](5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				es := edgeSet(g)
				for i := 0; i < 4; i++ {
					assert.True(t, es[pair{i, i + 1}], "ring edge %d-%d", i, i+1)
				}
				assert.True(t, es[pair{0, 4}], "closing edge")
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path[string](4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{1, 2, 2, 1}, g.DegreeSequence())
			},
		},
		{
			name:  "Star(5)",
			ctor:  builder.Star[string](5),
			wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{4, 1, 1, 1, 1}, g.DegreeSequence())
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel[string](5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{3, 3, 3, 3, 4}, g.DegreeSequence())
				es := edgeSet(g)
				for i := 0; i < 4; i++ {
					assert.True(t, es[pair{i, 4}], "spoke %d", i)
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete[string](4),
			wantV: 4, wantE: 6,
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete[string](1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite[string](2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{3, 3, 2, 2, 2}, g.DegreeSequence())
				es := edgeSet(g)
				assert.False(t, es[pair{0, 1}], "no edge inside the left side")
				assert.False(t, es[pair{2, 3}], "no edge inside the right side")
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid[string](2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph[string]) {
				assert.Equal(t, []int{2, 3, 2, 2, 3, 2}, g.DegreeSequence())
				v, err := g.Vertex(4)
				require.NoError(t, err)
				assert.Equal(t, "1,1", v.Payload())
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(builder.GridLabel(3), nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assertSaturated(t, g)
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_TooSmall(t *testing.T) {
	t.Parallel()

	ctors := map[string]builder.Constructor[int]{
		"Cycle(2)":                builder.Cycle[int](2),
		"Path(1)":                 builder.Path[int](1),
		"Star(1)":                 builder.Star[int](1),
		"Wheel(3)":                builder.Wheel[int](3),
		"Complete(0)":             builder.Complete[int](0),
		"CompleteBipartite(0, 2)": builder.CompleteBipartite[int](0, 2),
		"Grid(0, 4)":              builder.Grid[int](0, 4),
		"Grid(3, 0)":              builder.Grid[int](3, 0),
	}
	for name, ctor := range ctors {
		g, err := builder.BuildGraph[int](nil, nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
		assert.Nil(t, g, name)
	}
}

// TestBuildGraph_Composition checks constructors append after each other
// without touching earlier indices.
func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(builder.DecimalLabel, nil,
		builder.Cycle[string](3),
		builder.Path[string](2),
	)
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())

	es := edgeSet(g)
	assert.True(t, es[pair{3, 4}], "path shifted behind the cycle")
	assert.Len(t, es, 4)
	assertSaturated(t, g)

	last, err := g.Vertex(4)
	require.NoError(t, err)
	assert.Equal(t, "4", last.Payload())
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph[int](nil, nil, builder.Cycle[int](3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.Nil(t, g)
}
