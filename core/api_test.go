// SPDX-License-Identifier: MIT
// Package core_test verifies the read-only Graph facade.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabula/core"
)

// triangle builds K3 with edges 0–1, 1–2, 2–0.
func triangle(t *testing.T) *core.Graph[string] {
	t.Helper()

	b := core.NewBuilder(func(i int) string { return string(rune('A' + i)) })
	for i := 0; i < 3; i++ {
		_, err := b.AddVertex(2)
		require.NoError(t, err)
	}
	require.NoError(t, b.Connect(0, 1))
	require.NoError(t, b.Connect(1, 2))
	require.NoError(t, b.Connect(2, 0))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestGraph_ViewContract(t *testing.T) {
	t.Parallel()

	g := triangle(t)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.IsDirected())

	vs := g.Vertices()
	for i, v := range vs {
		assert.Equal(t, i, v.ID(), "index order")
	}
	a, b, c := vs[0], vs[1], vs[2]

	// Neighbours keep edge-creation order.
	assert.Equal(t, []*core.Vertex[string]{b, c}, g.NeighboursOf(a))
	assert.Equal(t, []*core.Vertex[string]{a, c}, g.NeighboursOf(b))
	assert.Equal(t, []*core.Vertex[string]{b, a}, g.NeighboursOf(c))

	for _, u := range vs {
		for _, w := range vs {
			assert.Equal(t, g.HasEdge(u, w), g.HasEdge(w, u), "HasEdge symmetry")
		}
		assert.False(t, g.HasEdge(u, u))
	}

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, core.Edge[*core.Vertex[string]]{From: a, To: b}, edges[0])
	assert.Equal(t, core.Edge[*core.Vertex[string]]{From: c, To: a}, edges[2])

	require.NoError(t, core.Validate[*core.Vertex[string]](g))
}

func TestGraph_ReadOnly(t *testing.T) {
	t.Parallel()

	g := triangle(t)
	_, err := g.AddVertex(1)
	assert.ErrorIs(t, err, core.ErrUsage)

	vs := g.Vertices()
	assert.ErrorIs(t, g.AddEdge(vs[0], vs[1]), core.ErrUsage)

	// Returned slices are copies.
	vs[0] = nil
	nbrs := g.NeighboursOf(g.Vertices()[0])
	nbrs[0] = nil
	assert.NotNil(t, g.Vertices()[0])
	assert.NotNil(t, g.NeighboursOf(g.Vertices()[0])[0])
}

func TestGraph_ForeignVertex(t *testing.T) {
	t.Parallel()

	g := triangle(t)
	other := triangle(t)
	foreign := other.Vertices()[0]

	assert.Nil(t, g.NeighboursOf(foreign))
	assert.False(t, g.HasEdge(foreign, g.Vertices()[1]))

	_, err := g.Vertex(7)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Fingerprint(t *testing.T) {
	t.Parallel()

	g1, g2 := triangle(t), triangle(t)
	assert.Equal(t, g1.Fingerprint(), g2.Fingerprint(), "same structure")

	// Same pairs created in another order and direction.
	b := core.NewBuilder[string](nil)
	for i := 0; i < 3; i++ {
		_, err := b.AddVertex(2)
		require.NoError(t, err)
	}
	require.NoError(t, b.Connect(2, 1))
	require.NoError(t, b.Connect(0, 2))
	require.NoError(t, b.Connect(1, 0))
	g3, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, g1.Fingerprint(), g3.Fingerprint(), "payload and order are ignored")

	// A path differs.
	p := core.NewBuilder[string](nil)
	for i := 0; i < 3; i++ {
		_, err := p.AddVertex(2)
		require.NoError(t, err)
	}
	require.NoError(t, p.Connect(0, 1))
	require.NoError(t, p.Connect(1, 2))
	g4, err := p.Build()
	require.NoError(t, err)
	assert.NotEqual(t, g1.Fingerprint(), g4.Fingerprint())
}
