package planarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabula/core"
	"github.com/katalvlaran/tabula/planarity"
)

// script drives v through two faces A-B-C and D-E.
func script(v planarity.FaceVisitor[string]) {
	v.BeginTraversal()
	v.BeginFace()
	v.NextVertex("A")
	v.NextVertex("B")
	v.NextVertex("C")
	v.EndFace()
	v.BeginFace()
	v.NextVertex("D")
	v.NextEdge(core.Edge[string]{From: "D", To: "E"})
	v.NextVertex("E")
	v.EndFace()
	v.EndTraversal()
}

func TestFaceCollector_Ordering(t *testing.T) {
	t.Parallel()

	c := planarity.NewFaceCollector[string](planarity.Forward)
	script(c)
	faces, err := c.Faces()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"D", "E"}}, faces)
}

func TestFaceCollector_Reverse(t *testing.T) {
	t.Parallel()

	c := planarity.NewFaceCollector[string](planarity.Reverse)
	script(c)
	faces, err := c.Faces()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"C", "B", "A"}, {"E", "D"}}, faces)
}

func TestFaceCollector_ResetOnNewTraversal(t *testing.T) {
	t.Parallel()

	c := planarity.NewFaceCollector[string](planarity.Forward)
	script(c)
	c.BeginTraversal()
	c.BeginFace()
	c.NextVertex("Z")
	c.EndFace()
	c.EndTraversal()

	faces, err := c.Faces()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Z"}}, faces)
}

func TestFaceCollector_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		drive func(c *planarity.FaceCollector[string])
	}{
		{"vertex before traversal", func(c *planarity.FaceCollector[string]) {
			c.NextVertex("A")
		}},
		{"vertex between faces", func(c *planarity.FaceCollector[string]) {
			c.BeginTraversal()
			c.NextVertex("A")
			c.EndTraversal()
		}},
		{"edge outside face", func(c *planarity.FaceCollector[string]) {
			c.BeginTraversal()
			c.NextEdge(core.Edge[string]{From: "A", To: "B"})
			c.EndTraversal()
		}},
		{"nested face", func(c *planarity.FaceCollector[string]) {
			c.BeginTraversal()
			c.BeginFace()
			c.BeginFace()
		}},
		{"end traversal inside face", func(c *planarity.FaceCollector[string]) {
			c.BeginTraversal()
			c.BeginFace()
			c.EndTraversal()
		}},
		{"double begin", func(c *planarity.FaceCollector[string]) {
			c.BeginTraversal()
			c.BeginTraversal()
		}},
		{"unfinished traversal", func(c *planarity.FaceCollector[string]) {
			c.BeginTraversal()
			c.BeginFace()
			c.NextVertex("A")
			c.EndFace()
		}},
		{"end face without face", func(c *planarity.FaceCollector[string]) {
			c.BeginTraversal()
			c.EndFace()
			c.EndTraversal()
		}},
	}

	for _, tc := range tests {
		c := planarity.NewFaceCollector[string](planarity.Forward)
		tc.drive(c)
		_, err := c.Faces()
		assert.ErrorIs(t, err, core.ErrUsage, tc.name)
	}
}

// TestFaceCollector_FirstErrorWins keeps the first violation even after the
// traversal recovers.
func TestFaceCollector_FirstErrorWins(t *testing.T) {
	t.Parallel()

	c := planarity.NewFaceCollector[string](planarity.Forward)
	c.BeginTraversal()
	c.NextVertex("A")
	c.EndFace()
	c.BeginFace()
	c.NextVertex("B")
	c.EndFace()
	c.EndTraversal()

	faces, err := c.Faces()
	require.ErrorIs(t, err, core.ErrUsage)
	assert.Contains(t, err.Error(), "NextVertex")
	assert.Equal(t, [][]string{{"B"}}, faces, "valid calls still commit")
}

func TestFaceCounter(t *testing.T) {
	t.Parallel()

	var c planarity.FaceCounter[string]
	script(&c)
	assert.Equal(t, 2, c.Count())
	script(&c)
	assert.Equal(t, 2, c.Count(), "count resets per traversal")
}

func TestVisitorFuncs(t *testing.T) {
	t.Parallel()

	var vertices []string
	edges := 0
	v := planarity.VisitorFuncs[string]{
		OnVertex: func(s string) { vertices = append(vertices, s) },
		OnEdge:   func(core.Edge[string]) { edges++ },
	}
	assert.NotPanics(t, func() { script(v) })
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, vertices)
	assert.Equal(t, 1, edges)
}

// lengths is a visitor that overrides a single phase.
type lengths struct {
	planarity.NopVisitor[string]
	cur int
	out []int
}

func (l *lengths) NextVertex(string) { l.cur++ }
func (l *lengths) EndFace()          { l.out = append(l.out, l.cur); l.cur = 0 }

func TestNopVisitor_Embedding(t *testing.T) {
	t.Parallel()

	l := &lengths{}
	script(l)
	assert.Equal(t, []int{3, 2}, l.out)
}
