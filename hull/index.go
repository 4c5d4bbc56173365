// File: index.go
// Role: read-only ring index shared by every component search.
// Concurrency:
//   - Built once per call, never mutated afterwards.

package hull

import (
	"fmt"

	"github.com/katalvlaran/vitrite/core"
	"github.com/katalvlaran/vitrite/dfs"
	"github.com/katalvlaran/vitrite/rings"
)

// ringIndex maps edges and vertices to the rings through them.
type ringIndex struct {
	rs       rings.RingSet
	edges    [][]core.Edge       // per ring, traversal order
	byEdge   map[core.Edge][]int // ascending ring ids
	byVertex map[int][]int       // ascending ring ids
	union    *core.Snapshot      // graph of all ring edges
}

// newRingIndex validates rs against s and indexes it.
func newRingIndex(s *core.Snapshot, rs rings.RingSet) (*ringIndex, error) {
	idx := &ringIndex{
		rs:       rs,
		edges:    make([][]core.Edge, len(rs)),
		byEdge:   make(map[core.Edge][]int),
		byVertex: make(map[int][]int),
	}
	seen := make(map[string]int, len(rs))
	union := core.NewGraph()
	union.EnsureVertices(s.Order())
	for id, r := range rs {
		if err := checkRing(s, r); err != nil {
			return nil, fmt.Errorf("ring %d %v: %w", id, r, err)
		}
		key := r.Key()
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("ring %d repeats ring %d: %w", id, prev, ErrDuplicateRing)
		}
		seen[key] = id

		idx.edges[id] = r.Edges()
		for _, e := range idx.edges[id] {
			if len(idx.byEdge[e]) == 0 {
				_ = union.AddEdge(e.U, e.V)
			}
			idx.byEdge[e] = append(idx.byEdge[e], id)
		}
		for _, v := range r {
			idx.byVertex[v] = append(idx.byVertex[v], id)
		}
	}
	idx.union = union.Snapshot()

	return idx, nil
}

// checkRing verifies r is a simple cycle of s.
func checkRing(s *core.Snapshot, r rings.Ring) error {
	if r.Len() < rings.MinRingSize {
		return fmt.Errorf("%w: fewer than %d vertices", ErrRingNotInGraph, rings.MinRingSize)
	}
	seen := make(map[int]bool, len(r))
	for _, v := range r {
		if v < 0 || v >= s.Order() {
			return fmt.Errorf("%w: vertex %d out of range", ErrRingNotInGraph, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeats", ErrRingNotInGraph, v)
		}
		seen[v] = true
	}
	for _, e := range r.Edges() {
		if !s.HasEdge(e.U, e.V) {
			return fmt.Errorf("%w: missing edge (%d,%d)", ErrRingNotInGraph, e.U, e.V)
		}
	}

	return nil
}

// components groups ring ids by connected component of the union graph,
// in component order (by smallest vertex). Ids stay ascending.
func (idx *ringIndex) components() [][]int {
	comps := dfs.Components(idx.union)
	of := make(map[int]int)
	for ci, comp := range comps {
		for _, v := range comp {
			of[v] = ci
		}
	}
	out := make([][]int, len(comps))
	for id, r := range idx.rs {
		ci := of[r[0]]
		out[ci] = append(out[ci], id)
	}

	return out
}
