// File: engine.go
// Role: backtracking face assignment over one connected component.
// Determinism:
//   - Seeds in ascending id; the open edge with the fewest viable rings is
//     branched first, ties to the smallest edge; candidates in ascending id.
// Concurrency:
//   - One engine per component; it only reads the shared ringIndex.
// AI-HINT (file):
//   - The choice-point stack replaces recursion, so depth (len(stack)) and
//     effort (steps) are plain counters checked against the budgets.

package hull

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/vitrite/core"
)

var (
	// errStop ends the search when the closure callback asks for it.
	errStop = errors.New("hull: stop")
	// errBudget ends the search when MaxSteps is spent.
	errBudget = errors.New("hull: budget")
)

// ctxCheckEvery is how many loop iterations pass between context checks.
const ctxCheckEvery = 256

// choice is one branching point: the open edge being covered and the
// viable rings for it; cands[next] is the ring currently placed.
type choice struct {
	edge  core.Edge
	cands []int
	next  int
}

// engine holds the mutable state of a component search.
type engine struct {
	idx  *ringIndex
	ids  []int
	opts *Options

	inHull   map[int]bool
	selected []int
	edgeCov  map[core.Edge]int
	vertCov  map[int]int
	openAt   map[int]int
	open     map[core.Edge]struct{}
	state    State

	steps      int
	backtracks int
	best       []int
}

func newEngine(idx *ringIndex, ids []int, opts *Options) *engine {
	return &engine{
		idx:     idx,
		ids:     ids,
		opts:    opts,
		inHull:  make(map[int]bool),
		edgeCov: make(map[core.Edge]int),
		vertCov: make(map[int]int),
		openAt:  make(map[int]int),
		open:    make(map[core.Edge]struct{}),
	}
}

// run tries every ring of the component as the seed (lowest-id face) of a
// hull. onClosed receives each closed face set; returning true stops the
// search with errStop. It returns errBudget or the context error when
// interrupted, nil when every seed is done.
func (e *engine) run(ctx context.Context, onClosed func(ids []int) bool) error {
	for _, seed := range e.ids {
		if err := e.grow(ctx, seed, onClosed); err != nil {
			return err
		}
	}

	return nil
}

// grow explores every hull whose smallest face id is seed.
func (e *engine) grow(ctx context.Context, seed int, onClosed func(ids []int) bool) error {
	e.setState(Empty)
	if e.steps >= e.opts.MaxSteps {
		return errBudget
	}
	e.place(seed)
	e.steps++
	e.setState(Growing)

	var stack []choice
	for iter := 0; ; iter++ {
		if iter%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		grown := false
		switch {
		case len(e.open) == 0:
			if e.euler() == 2 {
				e.setState(Closed)
				if onClosed(slices.Clone(e.selected)) {
					return errStop
				}
			}
		case len(e.selected) < e.opts.MaxFaces:
			if edge, cands := e.choose(seed); len(cands) > 0 {
				if e.steps >= e.opts.MaxSteps {
					return errBudget
				}
				stack = append(stack, choice{edge: edge, cands: cands})
				e.place(cands[0])
				e.steps++
				grown = true
			}
		}
		if grown {
			continue
		}
		if len(e.open) > 0 {
			e.extend(seed)
		}

		// dead end: undo placements until some choice has an untried ring
		e.setState(Stuck)
		for {
			if len(stack) == 0 {
				e.unplace(seed)
				e.setState(Exhausted)
				return nil
			}
			top := &stack[len(stack)-1]
			e.unplace(top.cands[top.next])
			e.backtracks++
			top.next++
			if top.next < len(top.cands) {
				if e.steps >= e.opts.MaxSteps {
					return errBudget
				}
				e.place(top.cands[top.next])
				e.steps++
				e.setState(Growing)
				break
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// choose returns the open edge with the fewest viable rings and those
// rings. An empty candidate list means the partial hull is stuck.
func (e *engine) choose(seed int) (core.Edge, []int) {
	edges := make([]core.Edge, 0, len(e.open))
	for edge := range e.open {
		edges = append(edges, edge)
	}
	slices.SortFunc(edges, compareEdges)

	var (
		bestEdge  core.Edge
		bestCands []int
	)
	for i, edge := range edges {
		var cands []int
		for _, id := range e.idx.byEdge[edge] {
			if id > seed && !e.inHull[id] && e.canPlace(id) {
				cands = append(cands, id)
			}
		}
		if len(cands) == 0 {
			return edge, nil
		}
		if i == 0 || len(cands) < len(bestCands) {
			bestEdge, bestCands = edge, cands
		}
	}

	return bestEdge, bestCands
}

// extend greedily adds any viable ring on any open edge, ignoring edges
// that can no longer be covered, then removes what it added. It only
// feeds best, the partial hull reported when nothing closes.
func (e *engine) extend(seed int) {
	var added []int
	for len(e.selected) < e.opts.MaxFaces {
		id := e.anyViable(seed)
		if id < 0 {
			break
		}
		e.place(id)
		added = append(added, id)
	}
	for i := len(added) - 1; i >= 0; i-- {
		e.unplace(added[i])
	}
}

// anyViable returns the smallest viable ring on the smallest open edge
// that has one, or -1.
func (e *engine) anyViable(seed int) int {
	edges := make([]core.Edge, 0, len(e.open))
	for edge := range e.open {
		edges = append(edges, edge)
	}
	slices.SortFunc(edges, compareEdges)
	for _, edge := range edges {
		for _, id := range e.idx.byEdge[edge] {
			if id > seed && !e.inHull[id] && e.canPlace(id) {
				return id
			}
		}
	}

	return -1
}

// canPlace reports whether ring id fits: no edge above two faces, no
// vertex above MaxFacesPerVertex, and a vertex reaching the limit must
// have no open edge left, since no further face may touch it.
func (e *engine) canPlace(id int) bool {
	edges := e.idx.edges[id]
	for _, edge := range edges {
		if e.edgeCov[edge] >= 2 {
			return false
		}
	}
	r := e.idx.rs[id]
	n := len(r)
	limit := e.opts.MaxFacesPerVertex
	for i, v := range r {
		c := e.vertCov[v] + 1
		if c > limit {
			return false
		}
		if c < limit {
			continue
		}
		open := e.openAt[v]
		for _, edge := range [2]core.Edge{edges[(i+n-1)%n], edges[i]} {
			if e.edgeCov[edge] == 0 {
				open++
			} else {
				open--
			}
		}
		if open != 0 {
			return false
		}
	}

	return true
}

// place adds ring id as a face.
func (e *engine) place(id int) {
	for _, edge := range e.idx.edges[id] {
		e.edgeCov[edge]++
		switch e.edgeCov[edge] {
		case 1:
			e.open[edge] = struct{}{}
			e.openAt[edge.U]++
			e.openAt[edge.V]++
		case 2:
			delete(e.open, edge)
			e.openAt[edge.U]--
			e.openAt[edge.V]--
		}
	}
	for _, v := range e.idx.rs[id] {
		e.vertCov[v]++
	}
	e.inHull[id] = true
	e.selected = append(e.selected, id)
	if len(e.selected) > len(e.best) {
		e.best = slices.Clone(e.selected)
	}
}

// unplace removes ring id, which must be the last face placed.
func (e *engine) unplace(id int) {
	for _, edge := range e.idx.edges[id] {
		e.edgeCov[edge]--
		switch e.edgeCov[edge] {
		case 1:
			e.open[edge] = struct{}{}
			e.openAt[edge.U]++
			e.openAt[edge.V]++
		case 0:
			delete(e.edgeCov, edge)
			delete(e.open, edge)
			e.openAt[edge.U]--
			e.openAt[edge.V]--
		}
	}
	for _, v := range e.idx.rs[id] {
		if e.vertCov[v]--; e.vertCov[v] == 0 {
			delete(e.vertCov, v)
		}
	}
	delete(e.inHull, id)
	e.selected = e.selected[:len(e.selected)-1]
}

// euler returns F - E + V of the current faces.
func (e *engine) euler() int {
	return len(e.selected) - len(e.edgeCov) + len(e.vertCov)
}

func (e *engine) setState(s State) {
	e.state = s
	if e.opts.OnState != nil {
		e.opts.OnState(s, len(e.selected))
	}
}
