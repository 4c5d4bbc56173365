package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitrite/core"
)

func TestSnapshot_Queries(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{{U: 2, V: 0}, {U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)
	s := g.Snapshot()

	require.NoError(t, s.Validate())
	assert.Equal(t, 4, s.Order())
	assert.Equal(t, 4, s.Size())
	assert.Equal(t, []int{0, 1, 3}, s.Neighbors(2))
	assert.Equal(t, 3, s.Degree(2))
	assert.True(t, s.HasEdge(3, 2))
	assert.False(t, s.HasEdge(0, 3))
	assert.Nil(t, s.Neighbors(9))
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 2, V: 3}}, s.Edges())
}

// TestSnapshot_Immutable ensures later mutations do not leak into a snapshot.
func TestSnapshot_Immutable(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	s := g.Snapshot()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 5))

	assert.Equal(t, 3, s.Order())
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.HasEdge(1, 2))
}

func TestSnapshot_Validate(t *testing.T) {
	loop := core.NewGraph(core.WithLoops())
	require.NoError(t, loop.AddEdge(0, 1))
	require.NoError(t, loop.AddEdge(1, 1))
	err := loop.Snapshot().Validate()
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	multi := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, multi.AddEdge(0, 1))
	require.NoError(t, multi.AddEdge(1, 0))
	err = multi.Snapshot().Validate()
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	directed := core.NewGraph(core.WithDirected(true))
	require.NoError(t, directed.AddEdge(0, 1))
	err = directed.Snapshot().Validate()
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrDirectedGraph)

	var zero core.Snapshot
	assert.NoError(t, zero.Validate())
	assert.Equal(t, 0, zero.Order())
}
