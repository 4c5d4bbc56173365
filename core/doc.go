// Package core provides the graph model shared by every analysis in vitrite:
// a thread-safe, dense-integer Graph and an immutable Snapshot taken from it.
//
// Vertices are identified by dense non-negative integers 0..Order()-1.
// Edges are unordered pairs {u,v} for undirected graphs, or ordered u→v
// pairs when the graph was created WithDirected(true).
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    Store edges as one-way u→v pairs. Ring perception rejects directed
//	    snapshots; use UndirectedView to forget orientation first.
//
//	– WithMultiEdges()
//	    Allow parallel edges. Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Allow self-loops. Otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// The permissive flags exist so callers can load raw, possibly malformed
// networks and still get a precise diagnosis: Snapshot.Validate reports every
// structural defect as ErrInvalidGraph wrapped around the specific sentinel.
//
// Snapshots
//
//	Algorithms never read a live Graph. They call g.Snapshot() once and work
//	on the returned *Snapshot, which is immutable, lock-free and safe to share
//	between any number of goroutines. Mutating the Graph afterwards does not
//	affect existing snapshots.
//
// Determinism
//
//	Neighbors() and Edges() return sorted results; Snapshot adjacency rows are
//	sorted ascending. Every algorithm built on core therefore iterates in a
//	reproducible order.
//
// Complexity
//
//	AddEdge is O(d) (duplicate check over the endpoint row), Snapshot is
//	O(V + E log d), HasEdge on a Snapshot is O(log d).
//
// Example:
//
//	g, err := core.FromEdges(4, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}})
//	if err != nil {
//	    // errors.Is(err, core.ErrInvalidGraph)
//	}
//	s := g.Snapshot()
package core
