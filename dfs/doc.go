// Package dfs implements depth-first search and connected components over
// an immutable core.Snapshot.
//
// Key features:
//   - DFS(s, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Roots / Root: the tree of every visited vertex
//   - Components / CountWithout: full traversals whose filter rejects a
//     deleted vertex set, grouped by Root. Hull assembly uses these to split
//     the ring network into independent pieces and to detect fragments that
//     divide it.
//   - Iterative: an explicit frame stack, no recursion.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if s is nil.
//   - ErrStartVertexNotFound    if start is out of range.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
