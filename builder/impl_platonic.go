// SPDX-License-Identifier: MIT
// Package: vitrite/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter) constructor.
//
// Purpose:
//   • Build one of the five Platonic solids using a canonical, deterministic edge set.
//   • Optionally add a central hub connected to every shell vertex.
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices are base..base+V-1; the hub, if any, is base+V.
//
// The solids are the standard hull fixtures: their faces are exactly their
// rings (the octahedron and icosahedron have triangles, the cube squares,
// the dodecahedron pentagons) and each face set closes into a sphere.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		sol, ok := solids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		n := sol.order

		total := n
		if withCenter {
			total++
		}
		addRange(g, cfg.base, total)
		if err := addEdges(g, methodPlatonicSolid, cfg.base, sol.edges()); err != nil {
			return err
		}
		if !withCenter {
			return nil
		}

		shell := make([]int, n)
		for i := range shell {
			shell[i] = i
		}

		return addEdges(g, methodPlatonicSolid, cfg.base, fanChords(n, shell...))
	}
}
