// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Snapshot.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/vitrite/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil snapshot pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// errSearchBoundExceeded stops a walk that has settled its target or run
// past MaxDepth. It never leaves this package: BFS absorbs it and reports
// the vertices settled so far.
var errSearchBoundExceeded = errors.New("bfs: search bound exceeded")

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is settled. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Target, if >= 0, ends the walk as soon as this vertex is settled.
	Target int

	// ExcludedEdges are treated as absent (both orientations).
	ExcludedEdges map[core.Edge]struct{}

	// ExcludedVertices are never entered (the start vertex is exempt).
	ExcludedVertices map[int]struct{}

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no target (Target == -1)
//   - no exclusions
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
		Target:   -1,
	}
}

// WithContext sets a custom context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search to paths of at most d edges.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTarget stops the walk once t has been settled.
// A negative t is an ErrOptionViolation.
func WithTarget(t int) Option {
	return func(o *BFSOptions) {
		if t < 0 {
			o.err = fmt.Errorf("%w: Target cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Target = t
	}
}

// WithExcludedEdge removes the undirected edge {u,v} from the search.
// Used to test whether a chord is the only short connection between two vertices.
func WithExcludedEdge(u, v int) Option {
	return func(o *BFSOptions) {
		if o.ExcludedEdges == nil {
			o.ExcludedEdges = make(map[core.Edge]struct{})
		}
		o.ExcludedEdges[core.Edge{U: u, V: v}.Normalized()] = struct{}{}
	}
}

// WithExcludedVertex removes v (and every edge touching it) from the search.
func WithExcludedVertex(v int) Option {
	return func(o *BFSOptions) {
		if o.ExcludedVertices == nil {
			o.ExcludedVertices = make(map[int]struct{})
		}
		o.ExcludedVertices[v] = struct{}{}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices settled, in visit sequence.
//   - Dist: map from vertex id to its distance (in edges) from the start.
//   - Parent: map from vertex id to its predecessor in the BFS tree.
//
// A vertex absent from Dist is unreachable within the configured bound.
type BFSResult struct {
	Order  []int
	Dist   map[int]int
	Parent map[int]int
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
