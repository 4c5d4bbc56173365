// SPDX-License-Identifier: MIT
// Package: vitrite/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//
// A path carries no rings; it is the negative fixture for ring search.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addRange(g, cfg.base, n)

		chords := make([]chord, 0, n-1)
		for i := 1; i < n; i++ {
			chords = append(chords, chord{U: i - 1, V: i})
		}

		return addEdges(g, methodPath, cfg.base, chords)
	}
}
