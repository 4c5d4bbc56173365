// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/EnsureVertices/HasVertex/Order.
// Determinism:
//   - Vertex ids are assigned densely in creation order (0, 1, 2, ...).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddVertex appends a new isolated vertex and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.growLocked(g.order + 1)

	return g.order - 1
}

// EnsureVertices grows the vertex range to at least n vertices.
// Existing vertices and edges are untouched; n <= Order() is a no-op.
// Complexity: O(n - Order()).
func (g *Graph) EnsureVertices(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.growLocked(n)
}

// HasVertex reports whether v is inside the dense range 0..Order()-1.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < g.order
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.order
}

// growLocked extends adjacency rows up to n vertices. Caller holds mu.
func (g *Graph) growLocked(n int) {
	for g.order < n {
		g.adj = append(g.adj, nil)
		g.order++
	}
}
