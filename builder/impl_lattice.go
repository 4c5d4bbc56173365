// SPDX-License-Identifier: MIT
// Package: vitrite/builder
//
// impl_lattice.go — implementation of CubicLattice(nx, ny, nz) constructor.
//
// Contract:
//   • Every side ≥ 3 (else ErrTooFewVertices); a shorter periodic side would
//     need a loop or a double edge.
//   • Periodic (toroidal) boundaries: every vertex has degree 6.
//   • Vertex (x, y, z) is numbered base + (x*ny + y)*nz + z.
//
// Rings:
//   • Every unit square is a 4-ring: 3·nx·ny·nz of them.
//   • A side of length 4 also closes straight 4-rings around the torus.
//     With every side ≥ 5 the 4-rings are exactly the unit squares and the
//     unit cubes are the only polyhedra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

const (
	methodCubicLattice = "CubicLattice"
	minLatticeSide     = 3
)

// CubicLattice returns a Constructor for the periodic simple-cubic lattice
// of nx × ny × nz vertices.
func CubicLattice(nx, ny, nz int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if nx < minLatticeSide || ny < minLatticeSide || nz < minLatticeSide {
			return fmt.Errorf("%s: sides %d×%d×%d, min=%d: %w",
				methodCubicLattice, nx, ny, nz, minLatticeSide, ErrTooFewVertices)
		}
		addRange(g, cfg.base, nx*ny*nz)

		id := func(x, y, z int) int {
			return ((x%nx)*ny+(y%ny))*nz + z%nz
		}
		chords := make([]chord, 0, 3*nx*ny*nz)
		for x := 0; x < nx; x++ {
			for y := 0; y < ny; y++ {
				for z := 0; z < nz; z++ {
					v := id(x, y, z)
					chords = append(chords,
						chord{U: v, V: id(x+1, y, z)},
						chord{U: v, V: id(x, y+1, z)},
						chord{U: v, V: id(x, y, z+1)},
					)
				}
			}
		}

		return addEdges(g, methodCubicLattice, cfg.base, chords)
	}
}
