package bfs

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/vitrite/core"
)

// Oracle answers bounded shortest-path queries on one snapshot and caches
// every single-source ball it computes. Distances are exact up to Bound
// edges; anything farther reports "unreachable within bound".
//
// An Oracle is safe for concurrent use. Concurrent misses for the same
// source share one BFS through a singleflight group, so a pool of ring
// searchers hammering the same neighbourhood pays for each ball once.
type Oracle struct {
	graph *core.Snapshot
	bound int

	mu    sync.RWMutex
	balls map[int]map[int]int
	group singleflight.Group
}

// NewOracle returns an oracle over s answering distances up to bound edges.
// bound <= 0 means unbounded (full-component balls; use with care on large graphs).
func NewOracle(s *core.Snapshot, bound int) *Oracle {
	if bound < 0 {
		bound = 0
	}

	return &Oracle{
		graph: s,
		bound: bound,
		balls: make(map[int]map[int]int),
	}
}

// Bound returns the search depth the oracle was built with.
func (o *Oracle) Bound() int { return o.bound }

// Distance returns the shortest-path length between u and v and whether it
// is within the oracle bound. Out-of-range vertices are simply unreachable.
func (o *Oracle) Distance(u, v int) (int, bool) {
	if u == v {
		return 0, u >= 0 && u < o.graph.Order()
	}
	// balls are symmetric in an undirected graph; prefer a cached one
	o.mu.RLock()
	bu, okU := o.balls[u]
	bv, okV := o.balls[v]
	o.mu.RUnlock()
	switch {
	case okU:
		d, ok := bu[v]
		return d, ok
	case okV:
		d, ok := bv[u]
		return d, ok
	}

	d, ok := o.Ball(u)[v]

	return d, ok
}

// Ball returns the distances from src to every vertex within the bound.
// The returned map is shared with the cache and must not be modified.
func (o *Oracle) Ball(src int) map[int]int {
	o.mu.RLock()
	ball, ok := o.balls[src]
	o.mu.RUnlock()
	if ok {
		return ball
	}

	v, _, _ := o.group.Do(strconv.Itoa(src), func() (any, error) {
		res, err := BFS(o.graph, src, WithMaxDepth(o.bound))
		if err != nil {
			// out-of-range source: nothing is reachable
			return map[int]int{}, nil
		}
		o.mu.Lock()
		o.balls[src] = res.Dist
		o.mu.Unlock()

		return res.Dist, nil
	})

	return v.(map[int]int)
}

// Cached reports how many single-source balls are held.
func (o *Oracle) Cached() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.balls)
}
