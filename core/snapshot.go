// File: snapshot.go
// Role: Immutable, lock-free adjacency view consumed by every algorithm.
// Determinism:
//   - Rows are sorted asc; Edges() is sorted by (U,V).
// Concurrency:
//   - Snapshot is read-only after construction; share it freely across goroutines.
// AI-HINT (file):
//   - Take one Snapshot per analysis; never hand a live *Graph to a worker pool.
//   - Validate() is the single gate for ErrInvalidGraph before ring search.

package core

import (
	"fmt"
	"slices"
)

// Snapshot is an immutable copy of a Graph's topology.
// The zero value is an empty, valid, undirected snapshot.
type Snapshot struct {
	directed bool
	adj      [][]int
	edges    []Edge
}

// Snapshot copies the current topology of g into an immutable Snapshot.
// Complexity: O(V + E log d).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		directed: g.directed,
		adj:      make([][]int, g.order),
		edges:    make([]Edge, len(g.edges)),
	}
	for u, row := range g.adj {
		s.adj[u] = slices.Clone(row)
		slices.Sort(s.adj[u])
	}
	for i, e := range g.edges {
		if !g.directed {
			e = e.Normalized()
		}
		s.edges[i] = e
	}
	slices.SortFunc(s.edges, compareEdges)

	return s
}

// Validate checks the snapshot is a simple undirected graph: no self-loops,
// no parallel edges, not directed. Vertex ids are dense by construction.
//
// Errors:
//   - ErrInvalidGraph wrapping ErrDirectedGraph, ErrLoopNotAllowed or
//     ErrMultiEdgeNotAllowed, annotated with the first offending edge.
//
// Complexity: O(V + E).
func (s *Snapshot) Validate() error {
	if s.directed {
		return fmt.Errorf("%w: %w", ErrInvalidGraph, ErrDirectedGraph)
	}
	for i := 1; i <= len(s.edges); i++ {
		e := s.edges[i-1]
		if e.U == e.V {
			return fmt.Errorf("%w: edge (%d,%d): %w", ErrInvalidGraph, e.U, e.V, ErrLoopNotAllowed)
		}
		// sorted, so parallel edges are adjacent
		if i < len(s.edges) && s.edges[i] == e {
			return fmt.Errorf("%w: edge (%d,%d): %w", ErrInvalidGraph, e.U, e.V, ErrMultiEdgeNotAllowed)
		}
	}

	return nil
}

// Directed reports whether the source graph was directed.
func (s *Snapshot) Directed() bool { return s.directed }

// Order returns the number of vertices.
func (s *Snapshot) Order() int { return len(s.adj) }

// Size returns the number of edges.
func (s *Snapshot) Size() int { return len(s.edges) }

// Neighbors returns the sorted neighbor row of v, or nil when v is out of range.
// The returned slice is shared; callers must not modify it.
func (s *Snapshot) Neighbors(v int) []int {
	if v < 0 || v >= len(s.adj) {
		return nil
	}

	return s.adj[v]
}

// Degree returns the number of adjacency entries of v (0 when out of range).
func (s *Snapshot) Degree(v int) int {
	return len(s.Neighbors(v))
}

// HasEdge reports whether v appears in the row of u.
// Complexity: O(log d).
func (s *Snapshot) HasEdge(u, v int) bool {
	_, found := slices.BinarySearch(s.Neighbors(u), v)

	return found
}

// Edges returns a copy of the sorted edge list.
func (s *Snapshot) Edges() []Edge {
	return slices.Clone(s.edges)
}
