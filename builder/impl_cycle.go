// SPDX-License-Identifier: MIT
// Package: vitrite/builder
//
// impl_cycle.go — implementation of Cycle(n) and Prism(n) constructors.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Cycle emits edges i -> (i+1)%n for i=0..n-1.
//   • Prism emits two n-cycles (0..n-1 and n..2n-1) plus rungs i -> n+i.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

const (
	methodCycle   = "Cycle"
	methodPrism   = "Prism"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Its only ring is the cycle itself.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addRange(g, cfg.base, n)

		return addEdges(g, methodCycle, cfg.base, cycleChords(0, n))
	}
}

// Prism returns a Constructor for the n-gonal prism: two n-cycles joined
// rung by rung. Its rings are n squares and, for n ≥ 4, the two n-gons.
func Prism(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPrism, n, minCycleNodes, ErrTooFewVertices)
		}
		addRange(g, cfg.base, 2*n)

		chords := append(cycleChords(0, n), cycleChords(n, n)...)
		for i := 0; i < n; i++ {
			chords = append(chords, chord{U: i, V: n + i})
		}

		return addEdges(g, methodPrism, cfg.base, chords)
	}
}

// cycleChords lists the edges of the cycle on from..from+n-1.
func cycleChords(from, n int) []chord {
	out := make([]chord, n)
	for i := 0; i < n; i++ {
		out[i] = chord{U: from + i, V: from + (i+1)%n}
	}

	return out
}
