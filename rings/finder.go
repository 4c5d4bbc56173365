// File: finder.go
// Role: King-seeded ring search with shortest-path validation.
// Determinism:
//   - Output is Dedup of the per-seed results, so it does not depend on the
//     worker count or on scheduling.
// Concurrency:
//   - Seeds are striped across Workers goroutines under an errgroup; the
//     snapshot and the distance oracle are shared read-only, each worker
//     collects into its own slice.
// AI-HINT (file):
//   - Seed (a, b, c): b is the centre, a < c are two of its neighbours.
//   - From each seed the search keeps only the shortest rings through
//     a–b–c, all ties included.

package rings

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vitrite/bfs"
	"github.com/katalvlaran/vitrite/core"
)

// seed is a path a–b–c with a < c.
type seed struct {
	a, b, c int
}

// searchStats counts the work of one worker.
type searchStats struct {
	closures  int
	reducible int
}

// searcher extends one seed at a time; not safe for concurrent use.
type searcher struct {
	graph   *core.Snapshot
	oracle  *bfs.Oracle
	maxSize int

	// per-seed state
	dist  map[int]int
	path  []int
	best  int
	found []Ring
	stats searchStats
}

// FindRings returns every irreducible ring of s with at most maxSize
// vertices that is a shortest ring through some three-vertex path.
//
// Steps:
//  1. Validate s and maxSize; resolve options.
//  2. Enumerate seeds (a, b, c) for every centre b.
//  3. Per seed: bounded DFS from c back to a, never revisiting path
//     vertices, pruned by dist_{G-b}(x, a); closures are validated with
//     the shortest-path criterion and reducible ones skipped.
//  4. Merge per-worker results and Dedup.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrInvalidGraph (wrapped),
// or the context error.
func FindRings(ctx context.Context, s *core.Snapshot, maxSize int, opts ...Option) (RingSet, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	if maxSize < MinRingSize {
		return nil, fmt.Errorf("%w: maxSize=%d < %d", ErrOptionViolation, maxSize, MinRingSize)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("rings: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	seeds := enumerateSeeds(s)
	oracle := bfs.NewOracle(s, maxSize/2)
	workers := min(o.Workers, max(len(seeds), 1))

	o.Logger.Debug("ring search started", "vertices", s.Order(), "edges", s.Size(),
		"seeds", len(seeds), "max", maxSize, "workers", workers)

	found := make([][]Ring, workers)
	stats := make([]searchStats, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			sr := &searcher{graph: s, oracle: oracle, maxSize: maxSize}
			for i := w; i < len(seeds); i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				found[w] = append(found[w], sr.search(seeds[i])...)
			}
			stats[w] = sr.stats

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	var (
		all   []Ring
		total searchStats
	)
	for w := range found {
		all = append(all, found[w]...)
		total.closures += stats[w].closures
		total.reducible += stats[w].reducible
	}
	rs := Dedup(all)

	o.Metrics.RecordSearch(len(seeds), total.closures, total.reducible)
	o.Metrics.RecordRings(rs.Histogram())
	o.Logger.Debug("ring search finished", "seeds", len(seeds), "candidates", len(all),
		"closures", total.closures, "reducible", total.reducible, "rings", len(rs),
		"balls", oracle.Cached())

	return rs, nil
}

// enumerateSeeds lists (a, b, c) for every centre b in ascending order and
// every neighbour pair a < c of b.
func enumerateSeeds(s *core.Snapshot) []seed {
	var out []seed
	for b := 0; b < s.Order(); b++ {
		nbrs := s.Neighbors(b)
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				out = append(out, seed{a: nbrs[i], b: b, c: nbrs[j]})
			}
		}
	}

	return out
}

// search returns the shortest irreducible rings through sd, all ties.
func (sr *searcher) search(sd seed) []Ring {
	// lower bound: distance back to a without passing through b
	res, err := bfs.BFS(sr.graph, sd.a, bfs.WithExcludedVertex(sd.b), bfs.WithMaxDepth(sr.maxSize-2))
	if err != nil {
		return nil
	}
	if d, ok := res.Dist[sd.c]; !ok || d+2 > sr.maxSize {
		return nil
	}

	sr.dist = res.Dist
	sr.best = sr.maxSize
	sr.found = nil
	sr.path = append(sr.path[:0], sd.a, sd.b, sd.c)
	sr.extend()

	return sr.found
}

// extend grows sr.path from its last vertex. A closure back to path[0]
// yields a ring of len(path) vertices.
func (sr *searcher) extend() {
	last := sr.path[len(sr.path)-1]
	for _, next := range sr.graph.Neighbors(last) {
		if next == sr.path[0] {
			sr.close()
			continue
		}
		if slices.Contains(sr.path, next) {
			continue
		}
		d, ok := sr.dist[next]
		// the ring through next has at least len(path)+d vertices
		if !ok || len(sr.path)+d > sr.best {
			continue
		}
		sr.path = append(sr.path, next)
		sr.extend()
		sr.path = sr.path[:len(sr.path)-1]
	}
}

// close examines the cycle formed by the current path.
func (sr *searcher) close() {
	n := len(sr.path)
	if n < MinRingSize || n > sr.best {
		return
	}
	sr.stats.closures++
	if !irreducible(sr.oracle, sr.path) {
		sr.stats.reducible++
		return
	}
	if n < sr.best {
		sr.best = n
		sr.found = sr.found[:0]
	}
	sr.found = append(sr.found, slices.Clone(Ring(sr.path)))
}
