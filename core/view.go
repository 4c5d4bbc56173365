// File: view.go
// Role: Non-mutating graph views (copying topology with altered semantics).
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - UndirectedView merges u→v and v→u into one undirected edge and drops loops.

package core

// UndirectedView returns an undirected, simple copy of g: orientation is
// forgotten, antiparallel and parallel edges collapse into one edge, and
// self-loops are dropped. The vertex range is preserved.
//
// This is the bridge from directed networks (e.g. hydrogen-bond digraphs) to
// ring perception, which works on the underlying undirected graph.
//
// Complexity: O(V + E·d).
func UndirectedView(g *Graph) *Graph {
	g.mu.RLock()
	order := g.order
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	g.mu.RUnlock()

	out := NewGraph()
	out.EnsureVertices(order)
	for _, e := range edges {
		if e.U == e.V {
			continue
		}
		if out.HasEdge(e.U, e.V) {
			continue
		}
		// ids come from a valid graph and the pair is new, so this cannot fail
		_ = out.AddEdge(e.U, e.V)
	}

	return out
}
