package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitrite/core"
)

// TestAddEdge_GrowsDenseRange verifies that AddEdge extends the vertex range.
func TestAddEdge_GrowsDenseRange(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 4))
	assert.Equal(t, 5, g.Order())
	assert.True(t, g.HasVertex(3)) // isolated but in range
	assert.False(t, g.HasVertex(5))
	assert.True(t, g.HasEdge(0, 4))
	assert.True(t, g.HasEdge(4, 0)) // undirected mirror
}

// TestAddEdge_Policies covers loop, multi-edge and range rejections.
func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(-1, 2), core.ErrVertexOutOfRange)
	require.NoError(t, g.AddEdge(0, 1))
	assert.ErrorIs(t, g.AddEdge(1, 0), core.ErrMultiEdgeNotAllowed)

	lenient := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, lenient.AddEdge(2, 2))
	require.NoError(t, lenient.AddEdge(0, 1))
	require.NoError(t, lenient.AddEdge(0, 1))
	assert.Equal(t, 3, lenient.Size())
	nbrs, err := lenient.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, nbrs) // loop stored once
}

// TestDirected_OneWay ensures directed edges are not mirrored.
func TestDirected_OneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0)) // antiparallel is not a duplicate
	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge(0, 1))

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

// TestNeighbors_SortedAndErrors checks ordering and out-of-range handling.
func TestNeighbors_SortedAndErrors(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []int{5, 2, 7, 1} {
		require.NoError(t, g.AddEdge(3, v))
	}
	nbrs, err := g.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5, 7}, nbrs)

	_, err = g.Neighbors(42)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestEdges_Normalized verifies sorting and U<=V normalization.
func TestEdges_Normalized(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(3, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(2, 1))
	assert.Equal(t, []core.Edge{{U: 0, V: 2}, {U: 1, V: 2}, {U: 1, V: 3}}, g.Edges())
}

// TestFromEdges covers the happy path and each rejection.
func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.Size())

	tests := []struct {
		name  string
		n     int
		edges []core.Edge
		want  error
	}{
		{"SelfLoop", 3, []core.Edge{{U: 0, V: 1}, {U: 2, V: 2}}, core.ErrLoopNotAllowed},
		{"Duplicate", 3, []core.Edge{{U: 0, V: 1}, {U: 1, V: 0}}, core.ErrMultiEdgeNotAllowed},
		{"OutOfRange", 3, []core.Edge{{U: 0, V: 3}}, core.ErrVertexOutOfRange},
		{"Negative", 3, []core.Edge{{U: -1, V: 0}}, core.ErrVertexOutOfRange},
		{"NegativeOrder", -1, nil, core.ErrVertexOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.FromEdges(tc.n, tc.edges)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidGraph)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFromAdjacency covers symmetric lists and the asymmetric rejection.
func TestFromAdjacency(t *testing.T) {
	g, err := core.FromAdjacency([][]int{{1, 2}, {0, 2}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}}, g.Edges())

	_, err = core.FromAdjacency([][]int{{1}, {}})
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrAsymmetricAdjacency)

	_, err = core.FromAdjacency([][]int{{0}})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = core.FromAdjacency([][]int{{1, 1}, {0, 0}})
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = core.FromAdjacency([][]int{{3}})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.FromAdjacency(nil, core.WithDirected(true))
	assert.ErrorIs(t, err, core.ErrDirectedGraph)
}

// TestStats reports sizes and isolated vertices.
func TestStats(t *testing.T) {
	g, err := core.FromEdges(5, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}})
	require.NoError(t, err)
	st := g.Stats()
	assert.Equal(t, 5, st.VertexCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.Equal(t, 3, st.MaxDegree)
	assert.Equal(t, 1, st.Isolated)
	assert.False(t, st.Directed)
}

// TestClone_Independent ensures a clone does not share storage.
func TestClone_Independent(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2))
	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, 2, c.Size())

	empty := g.CloneEmpty()
	assert.Equal(t, 3, empty.Order())
	assert.Equal(t, 0, empty.Size())
}

// TestUndirectedView collapses antiparallel edges and drops loops.
func TestUndirectedView(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 2))

	u := core.UndirectedView(g)
	assert.False(t, u.Directed())
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, u.Edges())
	assert.Equal(t, 4, g.Size()) // source untouched
}
