// File: types.go
// Role: hull assembly states, results and sentinel errors.
// AI-HINT (file):
//   - An unclosable ring set is a Result with State Exhausted, never an error.

package hull

import (
	"errors"
	"slices"

	"github.com/katalvlaran/vitrite/core"
	"github.com/katalvlaran/vitrite/rings"
)

var (
	// ErrGraphNil is returned when a nil snapshot is passed.
	ErrGraphNil = errors.New("hull: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("hull: invalid option value")

	// ErrRingNotInGraph indicates a ring that is not a simple cycle of the
	// graph: too short, repeating a vertex, or using a missing edge.
	ErrRingNotInGraph = errors.New("hull: ring not in graph")

	// ErrDuplicateRing indicates the same ring twice in the input set.
	ErrDuplicateRing = errors.New("hull: duplicate ring")

	// ErrBudgetExhausted is returned by Polyhedra, together with the
	// polyhedra found so far, when MaxSteps ran out.
	ErrBudgetExhausted = errors.New("hull: step budget exhausted")
)

// State is the phase of a hull search.
type State int

const (
	// Empty: no face placed yet.
	Empty State = iota
	// Growing: faces are being added around open edges.
	Growing
	// Closed: every edge is shared by two faces and F - E + V = 2.
	Closed
	// Stuck: the current partial hull cannot grow; the search backtracks.
	Stuck
	// Exhausted: every choice was tried, or a budget ran out.
	Exhausted
)

// String returns the lower-case state name used in logs and metrics.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Growing:
		return "growing"
	case Closed:
		return "closed"
	case Stuck:
		return "stuck"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Cell is a ring used as a face, with its id (index) in the ring set.
type Cell struct {
	ID   int
	Ring rings.Ring
}

// Hull is a closed polyhedral complex of rings.
type Hull struct {
	// Cells in ascending id order.
	Cells []Cell
	// Vertices covered by the cells, ascending.
	Vertices []int
	// Edges covered by the cells, each exactly twice, sorted.
	Edges []core.Edge
}

// IDs returns the ring ids of the faces.
func (h *Hull) IDs() []int {
	out := make([]int, len(h.Cells))
	for i, c := range h.Cells {
		out[i] = c.ID
	}

	return out
}

// Euler returns F - E + V.
func (h *Hull) Euler() int {
	return len(h.Cells) - len(h.Edges) + len(h.Vertices)
}

// Incomplete describes the best partial hull of a failed assembly.
type Incomplete struct {
	// Cells of the largest partial assignment found, ascending id.
	Cells []Cell
	// OpenEdges are covered by one face only.
	OpenEdges []core.Edge
	// OpenVertices are the endpoints of OpenEdges, ascending.
	OpenVertices []int
}

// Stats reports the search effort.
type Stats struct {
	Steps      int
	Backtracks int
	Components int
}

// Result is the outcome of AssembleHull. Exactly one of Hull (Closed) and
// Incomplete (Exhausted) is set.
type Result struct {
	State      State
	Hull       *Hull
	Incomplete *Incomplete
	Stats      Stats
}

// newHull materializes the faces ids of rs.
func newHull(rs rings.RingSet, ids []int) *Hull {
	cells := makeCells(rs, ids)
	var (
		verts []int
		edges []core.Edge
	)
	seenV := make(map[int]bool)
	seenE := make(map[core.Edge]bool)
	for _, c := range cells {
		for _, v := range c.Ring {
			if !seenV[v] {
				seenV[v] = true
				verts = append(verts, v)
			}
		}
		for _, e := range c.Ring.Edges() {
			if !seenE[e] {
				seenE[e] = true
				edges = append(edges, e)
			}
		}
	}
	slices.Sort(verts)
	slices.SortFunc(edges, compareEdges)

	return &Hull{Cells: cells, Vertices: verts, Edges: edges}
}

// newIncomplete describes the partial assignment ids.
func newIncomplete(rs rings.RingSet, ids []int) *Incomplete {
	cov := make(map[core.Edge]int)
	for _, id := range ids {
		for _, e := range rs[id].Edges() {
			cov[e]++
		}
	}
	var open []core.Edge
	seen := make(map[int]bool)
	var verts []int
	for e, n := range cov {
		if n == 2 {
			continue
		}
		open = append(open, e)
		for _, v := range [2]int{e.U, e.V} {
			if !seen[v] {
				seen[v] = true
				verts = append(verts, v)
			}
		}
	}
	slices.SortFunc(open, compareEdges)
	slices.Sort(verts)

	return &Incomplete{Cells: makeCells(rs, ids), OpenEdges: open, OpenVertices: verts}
}

func makeCells(rs rings.RingSet, ids []int) []Cell {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	cells := make([]Cell, len(sorted))
	for i, id := range sorted {
		cells[i] = Cell{ID: id, Ring: rs[id]}
	}

	return cells
}

func compareEdges(a, b core.Edge) int {
	if a.U != b.U {
		return a.U - b.U
	}

	return a.V - b.V
}
