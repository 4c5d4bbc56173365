// Package bfs provides breadth-first search over a core.Snapshot,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, early termination at a target,
// and edge/vertex exclusion.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Snapshot
	opts  BFSOptions
	queue []queueItem
	head  int
	res   *BFSResult
}

// BFS runs breadth-first search on s starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. Reaching MaxDepth or the Target is not
// an error: the result simply holds what was settled.
func BFS(s *core.Snapshot, start int, opts ...Option) (*BFSResult, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= s.Order() {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: s,
		opts:  o,
		res: &BFSResult{
			Dist:   make(map[int]int),
			Parent: make(map[int]int),
		},
	}
	w.enqueue(start, 0, -1)

	err := w.loop()
	if errors.Is(err, errSearchBoundExceeded) {
		err = nil
	}

	return w.res, err
}

// enqueue records id at depth d with its parent and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Dist[id] = d
	if parent >= 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, cancellation or bound.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order, calls OnVisit and stops at the target.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	if item.id == w.opts.Target {
		return errSearchBoundExceeded
	}

	return nil
}

// enqueueNeighbors applies exclusions and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.id) {
		if _, seen := w.res.Dist[nbr]; seen {
			continue
		}
		if _, skip := w.opts.ExcludedVertices[nbr]; skip {
			continue
		}
		if len(w.opts.ExcludedEdges) > 0 {
			if _, skip := w.opts.ExcludedEdges[core.Edge{U: item.id, V: nbr}.Normalized()]; skip {
				continue
			}
		}
		w.enqueue(nbr, next, item.id)
	}
}

// Distance returns the shortest-path length from u to v using at most maxLen
// edges (0 = unbounded), honoring any exclusion options. The boolean is false
// when v is unreachable within the bound; that is a normal outcome, not an error.
// Invalid arguments (nil snapshot, out-of-range u, bad options) also report false.
func Distance(s *core.Snapshot, u, v, maxLen int, opts ...Option) (int, bool) {
	if v < 0 || (s != nil && v >= s.Order()) {
		return 0, false
	}
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithMaxDepth(maxLen), WithTarget(v))
	res, err := BFS(s, u, all...)
	if err != nil {
		return 0, false
	}
	d, ok := res.Dist[v]

	return d, ok
}
