package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hypergo/hyper"
)

func TestPopulate(t *testing.T) {
	rng := NewRNG(4711)

	g := hyper.New[int]()

	shape := Shape{
		Nodes:      8,
		Edges:      4,
		ExtraLinks: 2,
		Graphs:     1,
		Nested:     &Shape{Nodes: 3, Edges: 1},
	}

	out, err := Populate(rng, g, shape)
	require.NoError(t, err)

	assert.Len(t, out.Nodes, 8)
	assert.Len(t, out.Edges, 4)
	assert.Len(t, out.Links, 2)
	assert.Len(t, out.Graphs, 1)

	for _, id := range out.Nodes {
		assert.True(t, g.ContainsNode(id))
	}

	for _, id := range out.Edges {
		assert.True(t, g.ContainsEdge(id))
	}

	require.NoError(t, g.Validate(context.Background()))
}

func TestPopulate_Deterministic(t *testing.T) {
	shape := Shape{Nodes: 16, Edges: 8, ExtraLinks: 4}

	a := hyper.New[int]()
	_, err := Populate(NewRNG(42), a, shape)
	require.NoError(t, err)

	b := hyper.New[int]()
	_, err = Populate(NewRNG(42), b, shape)
	require.NoError(t, err)

	assert.Equal(t, a.IDs(), b.IDs())
	assert.Equal(t, a.State(), b.State())
}

func TestPopulate_RejectsImpossibleShape(t *testing.T) {
	g := hyper.New[int]()

	_, err := Populate(NewRNG(1), g, Shape{Nodes: 1, Edges: 1})
	require.Error(t, err)
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(99)

	first := rng.Intn(1000)

	rng.Reset()

	assert.Equal(t, first, rng.Intn(1000))
	assert.Equal(t, int64(99), rng.Seed())
}
