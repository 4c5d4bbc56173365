// File: types.go
// Role: DFS options, result and sentinel errors.

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when DFS receives a nil snapshot.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates a start vertex outside 0..Order()-1.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds the resolved traversal configuration.
type DFSOptions struct {
	// Ctx is checked once per discovered vertex.
	Ctx context.Context

	// OnVisit runs when a vertex is discovered (pre-order); an error aborts.
	OnVisit func(id int) error

	// OnExit runs when a vertex finishes (post-order); an error aborts.
	OnExit func(id int) error

	// MaxDepth bounds the tree depth; -1 means unbounded, 0 keeps the root only.
	MaxDepth int

	// FilterNeighbor decides which vertices may be entered. In full traversal
	// it also decides which vertices may start a tree, so a filter that
	// rejects a vertex set walks the graph with those vertices deleted.
	FilterNeighbor func(id int) bool

	// FullTraversal starts a new tree at every unvisited admitted vertex.
	FullTraversal bool
}

// DefaultOptions returns a single-tree, unbounded, unfiltered traversal
// under context.Background.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth bounds the tree depth.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor admits only vertices for which fn returns true.
func WithFilterNeighbor(fn func(id int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal walks every tree of the forest, roots ascending.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult is the outcome of a traversal.
type DFSResult struct {
	// Order lists vertices as they finish (post-order).
	Order []int

	// Depth of each visited vertex below its root.
	Depth map[int]int

	// Parent of each visited non-root vertex.
	Parent map[int]int

	// Visited marks reached vertices.
	Visited map[int]bool

	// Roots lists tree roots in the order their trees were walked. Each
	// root is the smallest vertex of its tree in full traversal.
	Roots []int

	// Root maps each visited vertex to the root of its tree.
	Root map[int]int

	// SkippedNeighbors counts neighbours rejected by FilterNeighbor.
	SkippedNeighbors int
}
