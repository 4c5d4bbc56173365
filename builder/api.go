// SPDX-License-Identifier: MIT
// Package: vitrite/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Every constructor appends a disjoint piece: its vertices are numbered from
//     the graph order at the moment it runs, so composing Cycle(5) and Cube yields
//     two components on 0..4 and 5..12.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose constructors in BuildGraph to assemble multi-component fixtures.
//   - Use WithSeed(...) to freeze stochastic paths (RandomRegular).

package builder

import (
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Number their vertices from cfg.base upward.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		// each constructor starts where the previous one ended
		cfg.base = g.Order()
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustSnapshot builds the graph and returns its snapshot, panicking on error.
// Intended for tests and examples with constant, known-good parameters.
func MustSnapshot(cons ...Constructor) *core.Snapshot {
	g, err := BuildGraph(nil, nil, cons...)
	if err != nil {
		panic(err)
	}

	return g.Snapshot()
}

// addRange reserves n fresh vertices starting at base.
func addRange(g *core.Graph, base, n int) {
	g.EnsureVertices(base + n)
}

// addEdges inserts every chord shifted by base.
func addEdges(g *core.Graph, method string, base int, chords []chord) error {
	for _, ch := range chords {
		u, v := base+ch.U, base+ch.V
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
		}
	}

	return nil
}
