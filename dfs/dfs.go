// File: dfs.go
// Role: iterative depth-first walker.
// Determinism:
//   - Neighbours in snapshot order (ascending); roots ascending.
// AI-HINT (file):
//   - An explicit frame stack replaces recursion, so lattice-sized
//     components never deepen the goroutine stack.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

// frame is one vertex on the walk stack; next indexes its neighbour row.
type frame struct {
	id    int
	depth int
	next  int
}

// walker holds the state of one traversal.
type walker struct {
	graph *core.Snapshot
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS walks s depth-first from start, or every tree of the forest with
// WithFullTraversal (start is then ignored). On a hook error or
// cancellation the partial result is returned with the error.
func DFS(s *core.Snapshot, start int, opts ...Option) (*DFSResult, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := s.Order()
	if !o.FullTraversal && (start < 0 || start >= n) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: s,
		opts:  o,
		res: &DFSResult{
			Order:   make([]int, 0, n),
			Depth:   make(map[int]int, n),
			Parent:  make(map[int]int, n),
			Visited: make(map[int]bool, n),
			Root:    make(map[int]int, n),
		},
	}
	if !o.FullTraversal {
		return w.res, w.tree(start)
	}
	for v := 0; v < n; v++ {
		if w.res.Visited[v] || !w.admits(v) {
			continue
		}
		if err := w.tree(v); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// tree walks the tree rooted at root.
func (w *walker) tree(root int) error {
	w.res.Roots = append(w.res.Roots, root)
	if err := w.enter(root, root, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		row := w.graph.Neighbors(top.id)
		if top.next == len(row) {
			if err := w.leave(top.id); err != nil {
				return err
			}
			continue
		}
		nid := row[top.next]
		top.next++
		switch {
		case nid == top.id, w.res.Visited[nid]:
			continue
		case !w.admits(nid):
			w.res.SkippedNeighbors++
			continue
		case w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth:
			continue
		}
		w.res.Parent[nid] = top.id
		if err := w.enter(nid, root, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// enter marks id discovered and pushes it.
func (w *walker) enter(id, root, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Root[id] = root
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, depth: depth})

	return nil
}

// leave pops the finished vertex id.
func (w *walker) leave(id int) error {
	w.stack = w.stack[:len(w.stack)-1]
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}

func (w *walker) admits(id int) bool {
	return w.opts.FilterNeighbor == nil || w.opts.FilterNeighbor(id)
}
