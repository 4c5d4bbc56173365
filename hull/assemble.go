// File: assemble.go
// Role: AssembleHull entry point.
// Determinism:
//   - Components are searched concurrently but reported in component
//     order: the first component (by smallest vertex) that closes wins.
// Concurrency:
//   - errgroup with SetLimit(Workers); each component owns its engine.

package hull

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vitrite/core"
	"github.com/katalvlaran/vitrite/rings"
)

// componentRun is the outcome of one component search.
type componentRun struct {
	closed     []int
	best       []int
	steps      int
	backtracks int
	budgetHit  bool
}

// AssembleHull selects rings of rs as faces of a closed polyhedral complex:
// every covered edge shared by exactly two faces, every covered vertex by
// at most MaxFacesPerVertex faces, and F - E + V = 2.
//
// Steps:
//  1. Validate s, options and every ring (ErrRingNotInGraph, ErrDuplicateRing).
//  2. Split rs by connected component of the graph formed by ring edges.
//  3. Per component: backtracking search from every seed ring, budgeted by
//     MaxFaces and MaxSteps.
//  4. Report the first closed hull, or Exhausted with the largest partial
//     assignment seen.
//
// A ring set that cannot close is not an error: the Result has State
// Exhausted and describes the open edges.
func AssembleHull(ctx context.Context, s *core.Snapshot, rs rings.RingSet, opts ...Option) (*Result, error) {
	o, idx, err := prepare(ctx, s, rs, opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	comps := idx.components()

	runs := make([]componentRun, len(comps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for ci, ids := range comps {
		g.Go(func() error {
			e := newEngine(idx, ids, &o)
			err := e.run(gctx, func(sel []int) bool {
				runs[ci].closed = sel
				return true
			})
			runs[ci].best = e.best
			runs[ci].steps = e.steps
			runs[ci].backtracks = e.backtracks
			switch {
			case errors.Is(err, errBudget):
				runs[ci].budgetHit = true
			case err != nil && !errors.Is(err, errStop):
				return err
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Stats: Stats{Components: len(comps)}}
	var best []int
	for _, run := range runs {
		res.Stats.Steps += run.steps
		res.Stats.Backtracks += run.backtracks
		if res.Hull == nil && run.closed != nil {
			res.Hull = newHull(rs, run.closed)
		}
		if len(run.best) > len(best) {
			best = run.best
		}
	}
	if res.Hull != nil {
		res.State = Closed
	} else {
		res.State = Exhausted
		res.Incomplete = newIncomplete(rs, best)
	}

	o.Metrics.RecordHull(res.State.String(), res.Stats.Steps, res.Stats.Backtracks)
	o.Logger.Debug("hull assembly finished", "state", res.State, "rings", len(rs),
		"components", len(comps), "steps", res.Stats.Steps, "backtracks", res.Stats.Backtracks)

	return res, nil
}

// prepare validates inputs and builds the ring index.
func prepare(ctx context.Context, s *core.Snapshot, rs rings.RingSet, opts []Option) (Options, *ringIndex, error) {
	if s == nil {
		return Options{}, nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return o, nil, err
	}
	if err = s.Validate(); err != nil {
		return o, nil, fmt.Errorf("hull: %w", err)
	}
	if ctx != nil {
		if err = ctx.Err(); err != nil {
			return o, nil, err
		}
	}
	idx, err := newRingIndex(s, rs)
	if err != nil {
		return o, nil, fmt.Errorf("hull: %w", err)
	}

	return o, idx, nil
}
