// Package core defines the central Graph and Edge types, and provides
// thread-safe primitives for building and querying dense-integer graphs.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidGraph        - umbrella sentinel for any structural defect.
//	ErrVertexOutOfRange    - vertex id is negative or >= Order().
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrDirectedGraph       - undirected semantics required, graph is directed.
//	ErrAsymmetricAdjacency - adjacency list lists u→v but not v→u.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGraph marks malformed input. Every structural error reported by
	// FromEdges, FromAdjacency and Snapshot.Validate wraps it.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrVertexOutOfRange indicates a vertex id outside the dense range 0..N-1.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrDirectedGraph indicates an operation that needs an undirected graph got a directed one.
	ErrDirectedGraph = errors.New("core: directed graph not supported")

	// ErrAsymmetricAdjacency indicates an adjacency list that is not symmetric.
	ErrAsymmetricAdjacency = errors.New("core: adjacency list is not symmetric")
)

// Edge is a pair of vertex ids. For undirected graphs the pair is unordered;
// Edges() and Snapshot.Edges() report it normalized with U < V.
type Edge struct {
	U int
	V int
}

// Normalized returns the edge with U <= V.
func (e Edge) Normalized() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are stored as one-way u→v pairs.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the mutable in-memory graph.
//
// Vertices are dense ints 0..order-1. adj[u] lists the neighbors of u with
// multiplicity (one entry per parallel edge); for undirected graphs every edge
// is mirrored, a self-loop is stored once. edges keeps insertion order.
// mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags (immutable after NewGraph)
	directed   bool
	allowMulti bool
	allowLoops bool

	// Storage
	order int
	adj   [][]int
	edges []Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
