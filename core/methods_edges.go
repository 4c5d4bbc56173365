// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/Size.
// Determinism:
//   - Edges() returns edges sorted by (U,V) asc.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - AddEdge grows the vertex range to cover both endpoints (dense ids).
//   - Negative ids are rejected with ErrVertexOutOfRange.

package core

import (
	"cmp"
	"slices"
)

// AddEdge inserts an edge between u and v.
//
// Steps:
//  1. Validate ids (non-negative) and the loop policy.
//  2. Lock mu; grow the vertex range to cover u and v.
//  3. Reject a parallel edge unless multi-edges are enabled.
//  4. Append to adjacency (mirrored for undirected graphs, loops stored once).
//
// Complexity: O(d) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 {
		return ErrVertexOutOfRange
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.growLocked(max(u, v) + 1)
	if !g.allowMulti && slices.Contains(g.adj[u], v) {
		return ErrMultiEdgeNotAllowed
	}

	g.adj[u] = append(g.adj[u], v)
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges = append(g.edges, Edge{U: u, V: v})

	return nil
}

// HasEdge reports whether an edge u→v exists (either orientation when undirected).
// Complexity: O(d).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= g.order {
		return false
	}

	return slices.Contains(g.adj[u], v)
}

// Edges returns a copy of all edges sorted by (U,V). Undirected edges are
// normalized so that U <= V; parallel edges appear once per copy.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		if !g.directed {
			e = e.Normalized()
		}
		out[i] = e
	}
	g.mu.RUnlock()

	slices.SortFunc(out, compareEdges)

	return out
}

// Size returns the number of edges (parallel edges counted individually).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// compareEdges orders edges by U, then V.
func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}

	return cmp.Compare(a.V, b.V)
}
