package rings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/vitrite/builder"
	"github.com/katalvlaran/vitrite/rings"
)

// cubeHexagon is the boundary of the three cube faces around vertex 0:
// an irreducible 6-cycle that is the sum of those squares.
var cubeHexagon = rings.Ring{1, 2, 3, 7, 4, 5}

func TestRemoveCrossingRings_CubeHexagon(t *testing.T) {
	s := builder.MustSnapshot(builder.PlatonicSolid(builder.Cube, false))
	squares := find(t, s, 4)
	assert.True(t, rings.Irreducible(s, cubeHexagon))

	in := append(rings.RingSet{cubeHexagon}, squares...)
	assert.Equal(t, squares, rings.RemoveCrossingRings(in))
}

func TestRemoveCrossingRings_KeepsIndependentRings(t *testing.T) {
	// the two hexagons of a prism are equal-sized: neither is a sum of
	// strictly smaller rings on its own
	rs := find(t, builder.MustSnapshot(builder.Prism(6)), 8)
	assert.Equal(t, rs, rings.RemoveCrossingRings(rs))

	// dodecahedron: eleven faces span the twelfth, but they share its size
	rs = find(t, builder.MustSnapshot(builder.PlatonicSolid(builder.Dodecahedron, false)), 6)
	assert.Equal(t, rs, rings.RemoveCrossingRings(rs))
}

func TestRemoveCrossingRings_SumOfTwoTriangles(t *testing.T) {
	// square 0-1-2-3 with diagonal 0-2: the square is the sum of the triangles
	in := []rings.Ring{{0, 1, 2, 3}, {0, 1, 2}, {0, 2, 3}}
	assert.Equal(t, rings.RingSet{{0, 1, 2}, {0, 2, 3}}, rings.RemoveCrossingRings(in))
}

func TestRemoveCrossingRings_Edges(t *testing.T) {
	assert.Empty(t, rings.RemoveCrossingRings(nil))
	one := rings.RingSet{{0, 1, 2}}
	assert.Equal(t, one, rings.RemoveCrossingRings(one))
}
