// Package rings perceives the rings of an undirected graph: its
// irreducible cycles, as used to describe hydrogen-bond networks of water
// and ice.
//
// What
//
//   - FindRings(ctx, s, maxSize, opts...): King-seeded search. Every path
//     a–b–c seeds a bounded depth-first search for the shortest cycles
//     through it; each candidate is checked with Franzblau's shortest-path
//     criterion and kept only if no pair of its vertices has a shortcut.
//   - Irreducible(s, r): the shortest-path criterion on its own.
//   - Dedup(rings): canonical forms (smallest rotation over both directions),
//     duplicates removed, sorted by (length, lexicographic).
//   - RemoveCrossingRings(rs): optional filter dropping rings that are the
//     edge symmetric difference of strictly smaller rings.
//
// Ring
//
//	A Ring is a cyclic vertex sequence. Rings in a RingSet are canonical:
//	they start at their smallest vertex and continue towards its smaller
//	ring neighbour. The position of a ring in its RingSet is its id.
//
// Concurrency
//
//	FindRings fans seeds out over WithWorkers goroutines
//	(default GOMAXPROCS) sharing one read-only snapshot and one cached
//	distance oracle. The result does not depend on the worker count.
//
// Complexity (V vertices, maximum degree d, ring bound m)
//
//   - Seeds: O(V·d²).
//   - Per seed: one bounded BFS plus a DFS over paths of length ≤ m,
//     typically tiny in the sparse networks this targets.
//
// Errors
//
//   - ErrGraphNil         if the snapshot pointer is nil.
//   - ErrOptionViolation  if maxSize < 3 or WithWorkers(n < 0).
//   - core.ErrInvalidGraph (wrapped) for directed graphs, loops or duplicate edges.
//   - ctx.Err() on cancellation.
package rings
