// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public constructors from edge/adjacency lists plus read-only policy getters.
// Policy:
//   - Constructors validate eagerly; every structural error wraps ErrInvalidGraph.
//   - Getters are O(1) except Stats (O(V+E) snapshot).
// AI-HINT (file):
//   - FromEdges(n, ...) fixes the vertex range up front; ids >= n are rejected.
//   - FromAdjacency expects a symmetric list (u lists v iff v lists u).

package core

import (
	"fmt"
	"slices"
)

// FromEdges builds a graph on vertices 0..n-1 from an edge list.
//
// Implementation:
//   - Stage 1: Reject n < 0.
//   - Stage 2: Allocate n vertices.
//   - Stage 3: Add each edge in order; the first failure aborts construction.
//
// Errors:
//   - ErrInvalidGraph wrapping ErrVertexOutOfRange, ErrLoopNotAllowed or
//     ErrMultiEdgeNotAllowed, annotated with the offending edge index.
//
// Complexity:
//   - Time O(V + E·d), Space O(V + E).
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative order %d: %w", ErrInvalidGraph, n, ErrVertexOutOfRange)
	}
	g := NewGraph(opts...)
	g.EnsureVertices(n)
	for i, e := range edges {
		// ids beyond n would silently grow the graph through AddEdge; the
		// caller declared the range, so hold them to it.
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d): %w", ErrInvalidGraph, i, e.U, e.V, ErrVertexOutOfRange)
		}
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%d,%d): %w", ErrInvalidGraph, i, e.U, e.V, err)
		}
	}

	return g, nil
}

// FromAdjacency builds an undirected graph from a symmetric adjacency list:
// adj[u] holds the neighbors of u. Each edge must be listed from both ends.
// A self-loop is listed once in its own row.
//
// Errors:
//   - ErrInvalidGraph wrapping ErrVertexOutOfRange, ErrLoopNotAllowed,
//     ErrMultiEdgeNotAllowed or ErrAsymmetricAdjacency.
//
// Complexity:
//   - Time O(V + E log d), Space O(V + E).
func FromAdjacency(adj [][]int, opts ...GraphOption) (*Graph, error) {
	n := len(adj)
	g := NewGraph(opts...)
	if g.directed {
		return nil, fmt.Errorf("%w: FromAdjacency builds undirected graphs: %w", ErrInvalidGraph, ErrDirectedGraph)
	}
	g.EnsureVertices(n)

	// Sorted copies make the symmetry check a pair of binary searches.
	rows := make([][]int, n)
	for u, row := range adj {
		rows[u] = slices.Clone(row)
		slices.Sort(rows[u])
	}

	for u, row := range rows {
		for _, v := range row {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: adj[%d] lists %d: %w", ErrInvalidGraph, u, v, ErrVertexOutOfRange)
			}
			if countOf(rows[v], u) != countOf(row, v) {
				return nil, fmt.Errorf("%w: %d→%d: %w", ErrInvalidGraph, u, v, ErrAsymmetricAdjacency)
			}
			// add each undirected pair from its lower end only
			if u > v {
				continue
			}
			if err := g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%w: adj[%d] lists %d: %w", ErrInvalidGraph, u, v, err)
			}
		}
	}

	return g, nil
}

// countOf returns the multiplicity of x in the sorted slice row.
func countOf(row []int, x int) int {
	i, found := slices.BinarySearch(row, x)
	if !found {
		return 0
	}
	c := 0
	for ; i < len(row) && row[i] == x; i++ {
		c++
	}

	return c
}

// Directed reports whether edges are stored as one-way pairs.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	Directed   bool
	Looped     bool
	Multigraph bool

	VertexCount int
	EdgeCount   int
	MaxDegree   int
	// Isolated counts vertices with no incident edges.
	Isolated int
}

// Stats produces a deterministic, read-only snapshot of configuration flags and sizes.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := &GraphStats{
		Directed:    g.directed,
		Looped:      g.allowLoops,
		Multigraph:  g.allowMulti,
		VertexCount: g.order,
		EdgeCount:   len(g.edges),
	}
	for u := 0; u < g.order; u++ {
		d := len(g.adj[u])
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		if d == 0 && !g.hasIncomingLocked(u) {
			st.Isolated++
		}
	}

	return st
}

// hasIncomingLocked reports whether a directed graph has an edge into v.
// Undirected rows already mirror every edge. Caller holds g.mu.
func (g *Graph) hasIncomingLocked(v int) bool {
	if !g.directed {
		return false
	}
	for _, e := range g.edges {
		if e.V == v {
			return true
		}
	}

	return false
}
