// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree).
// Determinism:
//   - Neighbors() returns ids sorted asc, one entry per incident edge.
// Concurrency:
//   - Read operations hold mu read lock.

package core

import "slices"

// Neighbors returns the vertices adjacent to v, sorted ascending.
// For directed graphs only outgoing edges count. Parallel edges yield repeated
// entries; a self-loop lists v once.
//
// Errors:
//   - ErrVertexOutOfRange: if v is outside 0..Order()-1.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.order {
		return nil, ErrVertexOutOfRange
	}
	out := slices.Clone(g.adj[v])
	slices.Sort(out)

	return out, nil
}

// Degree returns the number of adjacency entries of v (outgoing for directed graphs).
//
// Errors:
//   - ErrVertexOutOfRange: if v is outside 0..Order()-1.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= g.order {
		return 0, ErrVertexOutOfRange
	}

	return len(g.adj[v]), nil
}
