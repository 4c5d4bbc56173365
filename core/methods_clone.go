// File: methods_clone.go
// Role: Deep copies of a Graph.
// Concurrency:
//   - Read lock on the source; the result is a fresh, unshared instance.

package core

import "slices"

// CloneEmpty returns a new Graph with the same flags and vertex range but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
	}
	out.growLocked(g.order)

	return out
}

// Clone returns a deep copy of g: flags, vertices and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		directed:   g.directed,
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		order:      g.order,
		adj:        make([][]int, g.order),
		edges:      slices.Clone(g.edges),
	}
	for u, row := range g.adj {
		out.adj[u] = slices.Clone(row)
	}

	return out
}
