package hull_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitrite/builder"
	"github.com/katalvlaran/vitrite/hull"
	"github.com/katalvlaran/vitrite/rings"
)

func TestPolyhedra_Cube(t *testing.T) {
	s := builder.MustSnapshot(builder.PlatonicSolid(builder.Cube, false))
	ps, err := hull.Polyhedra(context.Background(), s, ringsOf(t, s, 4))
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ps[0].IDs())
}

func TestPolyhedra_Lattice(t *testing.T) {
	if testing.Short() {
		t.Skip("lattice enumeration in -short mode")
	}
	s := builder.MustSnapshot(builder.CubicLattice(5, 5, 5))
	rs := ringsOf(t, s, 4)
	require.Len(t, rs, 375)

	ps, err := hull.Polyhedra(context.Background(), s, rs)
	require.NoError(t, err)
	require.Len(t, ps, 125)
	seen := make(map[int]int)
	for _, p := range ps {
		assert.Len(t, p.Cells, 6)
		assert.Len(t, p.Vertices, 8)
		assert.Equal(t, 2, p.Euler())
		for _, id := range p.IDs() {
			seen[id]++
		}
	}
	// every square bounds exactly two unit cells
	assert.Len(t, seen, 375)
	for id, n := range seen {
		assert.Equal(t, 2, n, "ring %d", id)
	}
}

func TestPolyhedra_ExtraRingSplitsCell(t *testing.T) {
	// the hexagon 1-2-3-7-4-5 lies on cube vertices and cuts the cube
	// into two halves around the corners 0 and 6
	s := builder.MustSnapshot(builder.PlatonicSolid(builder.Cube, false))
	hex := rings.Ring{1, 2, 3, 7, 4, 5}
	rs := rings.Dedup(append([]rings.Ring{hex}, ringsOf(t, s, 4)...))
	require.Len(t, rs, 7)

	ps, err := hull.Polyhedra(context.Background(), s, rs)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	for _, p := range ps {
		assert.Len(t, p.Cells, 4)
		assert.Contains(t, p.IDs(), 6)
		assert.Len(t, p.Vertices, 7)
	}
	assert.Contains(t, ps[0].Vertices, 0)
	assert.Contains(t, ps[1].Vertices, 6)
}

func TestPolyhedra_EnclosingShellRejected(t *testing.T) {
	// three nested cubes joined by rungs; the middle shell separates the
	// inner cube from the outer one, so it is not a proper cell
	g, err := builder.BuildGraph(nil, nil,
		builder.PlatonicSolid(builder.Cube, false),
		builder.PlatonicSolid(builder.Cube, false),
		builder.PlatonicSolid(builder.Cube, false),
	)
	require.NoError(t, err)
	for v := 0; v < 16; v++ {
		require.NoError(t, g.AddEdge(v, v+8))
	}
	s := g.Snapshot()
	rs := ringsOf(t, s, 4)
	require.Len(t, rs, 3*6+2*12)

	ps, err := hull.Polyhedra(context.Background(), s, rs)
	require.NoError(t, err)
	middle := []int{8, 9, 10, 11, 12, 13, 14, 15}
	for _, p := range ps {
		assert.Len(t, p.Cells, 6)
		assert.NotEqual(t, middle, p.Vertices, "middle shell")
	}
	// outer and inner cubes plus two layers of six frusta
	assert.Len(t, ps, 14)
}

func TestPolyhedra_Budget(t *testing.T) {
	s := builder.MustSnapshot(builder.CubicLattice(5, 5, 5))
	ps, err := hull.Polyhedra(context.Background(), s, ringsOf(t, s, 4), hull.WithMaxSteps(10))
	assert.ErrorIs(t, err, hull.ErrBudgetExhausted)
	assert.LessOrEqual(t, len(ps), 1)
}

func TestPolyhedra_Errors(t *testing.T) {
	_, err := hull.Polyhedra(context.Background(), nil, nil)
	assert.ErrorIs(t, err, hull.ErrGraphNil)

	s := builder.MustSnapshot(builder.Cycle(4))
	ps, err := hull.Polyhedra(context.Background(), s, ringsOf(t, s, 4))
	require.NoError(t, err)
	assert.Empty(t, ps)
}
