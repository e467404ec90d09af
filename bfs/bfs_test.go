package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabula/bfs"
	"github.com/katalvlaran/tabula/core"
)

type vtx = *core.Vertex[string]

// build creates a graph with n vertices and the given index pairs. Each
// vertex's MaxDegree is its final degree.
func build(t *testing.T, n int, pairs [][2]int) *core.Graph[string] {
	t.Helper()

	deg := make([]int, n)
	for _, p := range pairs {
		deg[p[0]]++
		deg[p[1]]++
	}
	b := core.NewBuilder(func(i int) string { return string(rune('A' + i)) })
	for i := 0; i < n; i++ {
		_, err := b.AddVertex(deg[i])
		require.NoError(t, err)
	}
	for _, p := range pairs {
		require.NoError(t, b.Connect(p[0], p[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func names(vs []vtx) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Payload()
	}
	return out
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.BFS[vtx](nil, nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, 2, [][2]int{{0, 1}})
	foreign := build(t, 1, nil).Vertices()[0]
	_, err = bfs.BFS[vtx](g, foreign)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	split := build(t, 3, [][2]int{{0, 1}})
	res, err := bfs.BFS[vtx](split, split.Vertices()[0])
	require.NoError(t, err)
	_, err = res.PathTo(split.Vertices()[2])
	assert.Error(t, err, "unreached vertex has no path")
}

// TestBFS_CycleAndDepths walks the square A–B–C–D–A.
func TestBFS_CycleAndDepths(t *testing.T) {
	t.Parallel()

	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	vs := g.Vertices()

	res, err := bfs.BFS[vtx](g, vs[0])
	require.NoError(t, err)

	// Neighbour order is creation order: A sees B then D.
	assert.Equal(t, []string{"A", "B", "D", "C"}, names(res.Order))
	assert.Equal(t, 2, res.Depth[vs[2]])

	path, err := res.PathTo(vs[2])
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names(path))
}

// TestBFS_OnVisit checks visit order, depths and error propagation.
func TestBFS_OnVisit(t *testing.T) {
	t.Parallel()

	g := build(t, 4, [][2]int{{0, 1}, {0, 2}, {2, 3}})
	vs := g.Vertices()

	var seen []string
	var depths []int
	_, err := bfs.BFS[vtx](g, vs[0], bfs.WithOnVisit(func(v vtx, d int) error {
		seen = append(seen, v.Payload())
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, seen)
	assert.Equal(t, []int{0, 1, 1, 2}, depths)

	stop := errors.New("stop")
	_, err = bfs.BFS[vtx](g, vs[0], bfs.WithOnVisit(func(v vtx, _ int) error {
		if v == vs[1] {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancelled returns the context error before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	t.Parallel()

	g := build(t, 2, [][2]int{{0, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := bfs.BFS[vtx](g, g.Vertices()[0], bfs.WithContext[vtx](ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Order)
}

func TestConnectedAndComponents(t *testing.T) {
	t.Parallel()

	joined := build(t, 3, [][2]int{{0, 1}, {1, 2}})
	ok, err := bfs.Connected[vtx](joined)
	require.NoError(t, err)
	assert.True(t, ok)

	split := build(t, 5, [][2]int{{0, 1}, {2, 3}})
	ok, err = bfs.Connected[vtx](split)
	require.NoError(t, err)
	assert.False(t, ok)

	comps, err := bfs.Components[vtx](split)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{"A", "B"}, names(comps[0]))
	assert.Equal(t, []string{"C", "D"}, names(comps[1]))
	assert.Equal(t, []string{"E"}, names(comps[2]))

	empty := build(t, 0, nil)
	ok, err = bfs.Connected[vtx](empty)
	require.NoError(t, err)
	assert.True(t, ok)
}
