// File: polyhedra.go
// Role: enumeration of every quasi-polyhedron (vitrite) of a ring set.
// AI-HINT (file):
//   - A closed hull is kept only if it is a proper cell: no other ring lies
//     entirely on its vertices, and deleting its vertices does not split
//     the ring network (which would mean it encloses vertices).

package hull

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vitrite/core"
	"github.com/katalvlaran/vitrite/dfs"
	"github.com/katalvlaran/vitrite/rings"
)

// Polyhedra returns every closed hull of rs that is a proper cell, each
// face set once, ordered by face count then lexicographically by ids.
//
// When MaxSteps runs out in some component the polyhedra found so far are
// returned together with ErrBudgetExhausted.
func Polyhedra(ctx context.Context, s *core.Snapshot, rs rings.RingSet, opts ...Option) ([]*Hull, error) {
	o, idx, err := prepare(ctx, s, rs, opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	comps := idx.components()
	baseline := dfs.CountWithout(idx.union, nil)

	var (
		mu        sync.Mutex
		found     [][]int
		steps     int
		backs     int
		exhausted bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for _, ids := range comps {
		g.Go(func() error {
			seen := make(map[string]bool)
			var local [][]int
			e := newEngine(idx, ids, &o)
			err := e.run(gctx, func(sel []int) bool {
				slices.Sort(sel)
				key := idsKey(sel)
				if seen[key] {
					return false
				}
				seen[key] = true
				if idx.hasExtraRing(sel) {
					o.Logger.Debug("closed hull contains an extra ring", "faces", sel)
					return false
				}
				if idx.divides(sel, baseline) {
					o.Logger.Debug("closed hull encloses vertices", "faces", sel)
					return false
				}
				local = append(local, sel)

				return false
			})

			mu.Lock()
			defer mu.Unlock()
			found = append(found, local...)
			steps += e.steps
			backs += e.backtracks
			if errors.Is(err, errBudget) {
				exhausted = true
				return nil
			}

			return err
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(found, func(a, b []int) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}

		return slices.Compare(a, b)
	})
	out := make([]*Hull, len(found))
	for i, ids := range found {
		out[i] = newHull(rs, ids)
	}

	state := Closed
	if exhausted {
		state = Exhausted
	}
	o.Metrics.RecordHull(state.String(), steps, backs)
	o.Logger.Debug("polyhedra enumeration finished", "rings", len(rs), "polyhedra", len(out),
		"steps", steps, "backtracks", backs, "exhausted", exhausted)
	if exhausted {
		return out, fmt.Errorf("hull: %d polyhedra before the limit of %d steps: %w",
			len(out), o.MaxSteps, ErrBudgetExhausted)
	}

	return out, nil
}

// hasExtraRing reports whether some ring outside ids has all its vertices
// on the faces ids.
func (idx *ringIndex) hasExtraRing(ids []int) bool {
	inFrag := make(map[int]bool, len(ids))
	verts := make(map[int]bool)
	for _, id := range ids {
		inFrag[id] = true
		for _, v := range idx.rs[id] {
			verts[v] = true
		}
	}
	for v := range verts {
		for _, id := range idx.byVertex[v] {
			if inFrag[id] {
				continue
			}
			inside := true
			for _, w := range idx.rs[id] {
				if !verts[w] {
					inside = false
					break
				}
			}
			if inside {
				return true
			}
		}
	}

	return false
}

// divides reports whether deleting the vertices of ids leaves more
// components of the ring network than baseline.
func (idx *ringIndex) divides(ids []int, baseline int) bool {
	removed := make(map[int]bool)
	for _, id := range ids {
		for _, v := range idx.rs[id] {
			removed[v] = true
		}
	}

	return dfs.CountWithout(idx.union, removed) > baseline
}

func idsKey(ids []int) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}
