// Package bfs is the shortest-path oracle of vitrite: unweighted,
// bounded breadth-first search over an immutable core.Snapshot.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Dist: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Honors MaxDepth (the ring-size bound), so the walk never leaves the
//     small ball that a ring of at most n vertices can live in.
//   - WithTarget stops as soon as a vertex is settled (early termination).
//   - WithExcludedEdge / WithExcludedVertex search the remaining graph, e.g.
//     "is there another short path once the chord u–v is gone?".
//
// Why
//
//   - Ring perception asks two questions many times: a lower bound on how far
//     a partial path still is from closing, and whether any pair of ring
//     vertices has a shortcut. Both are bounded unweighted distance queries.
//
// Oracle
//
//	Oracle caches single-source balls of radius Bound and is safe for
//	concurrent use. Use it when the same sources are queried repeatedly.
//
// Unreachable is not an error
//
//	A vertex farther than MaxDepth, or cut off by exclusions, is simply absent
//	from Dist. Distance reports (0, false) for it.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) worst case, O(ball) with a depth bound
//   - Memory: O(ball) for queue, Dist, Parent
//
// Usage
//
//	res, err := bfs.BFS(s, 0, bfs.WithMaxDepth(4), bfs.WithExcludedVertex(3))
//	d, ok := bfs.Distance(s, 0, 5, 3, bfs.WithExcludedEdge(0, 5))
//
// Errors
//
//   - ErrGraphNil             if the snapshot pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, or ctx.Err().
package bfs
