package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitrite/bfs"
	"github.com/katalvlaran/vitrite/core"
)

// snapshot builds a snapshot on n vertices from an edge list.
func snapshot(t testing.TB, n int, edges ...core.Edge) *core.Snapshot {
	t.Helper()
	g, err := core.FromEdges(n, edges)
	require.NoError(t, err)

	return g.Snapshot()
}

// ring builds the cycle 0–1–…–(n-1)–0.
func ring(t testing.TB, n int) *core.Snapshot {
	t.Helper()
	edges := make([]core.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = core.Edge{U: i, V: (i + 1) % n}
	}

	return snapshot(t, n, edges...)
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	s := snapshot(t, 1)
	if _, err := bfs.BFS(s, 3); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(s, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.BFS(s, 0, bfs.WithTarget(-2)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative target: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	s := ring(t, 4)
	res, err := bfs.BFS(s, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Dist)
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	s := snapshot(t, 4, core.Edge{U: 0, V: 1}, core.Edge{U: 2, V: 3})
	res, err := bfs.BFS(s, 0)
	require.NoError(t, err)
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res.Order)
	}
	_, ok := bfs.Distance(s, 0, 3, 0)
	assert.False(t, ok)
}

// TestBFS_MaxDepth verifies the depth bound.
func TestBFS_MaxDepth(t *testing.T) {
	s := snapshot(t, 4, core.Edge{U: 0, V: 1}, core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 3})
	res, err := bfs.BFS(s, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	_, reached := res.Dist[3]
	assert.False(t, reached)

	res, err = bfs.BFS(s, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

// TestBFS_TargetStopsEarly ensures the walk ends once the target is settled.
func TestBFS_TargetStopsEarly(t *testing.T) {
	s := ring(t, 10)
	res, err := bfs.BFS(s, 0, bfs.WithTarget(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

// TestBFS_ExcludedEdge measures the detour once a chord is removed.
func TestBFS_ExcludedEdge(t *testing.T) {
	// hexagon 0..5 with chord 0–3
	edges := []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 0}, {U: 0, V: 3}}
	s := snapshot(t, 6, edges...)

	d, ok := bfs.Distance(s, 0, 3, 0)
	require.True(t, ok)
	assert.Equal(t, 1, d)

	d, ok = bfs.Distance(s, 0, 3, 0, bfs.WithExcludedEdge(3, 0))
	require.True(t, ok)
	assert.Equal(t, 3, d)

	_, ok = bfs.Distance(s, 0, 3, 2, bfs.WithExcludedEdge(0, 3))
	assert.False(t, ok, "detour of 3 exceeds bound 2")
}

// TestBFS_ExcludedVertex routes around a removed vertex.
func TestBFS_ExcludedVertex(t *testing.T) {
	s := ring(t, 6)
	d, ok := bfs.Distance(s, 0, 2, 0, bfs.WithExcludedVertex(1))
	require.True(t, ok)
	assert.Equal(t, 4, d)

	// the start vertex itself is exempt
	res, err := bfs.BFS(s, 1, bfs.WithExcludedVertex(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
}

// TestBFS_PathTo covers both trivial and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	s := ring(t, 5)
	res, err := bfs.BFS(s, 0)
	require.NoError(t, err)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	path, err = res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, path)

	res, err = bfs.BFS(s, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	_, err = res.PathTo(2)
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_HookError propagates an OnVisit error.
func TestBFS_HookError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(ring(t, 3), 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(ring(t, 100), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestOracle_MatchesBFS compares cached answers with direct searches.
func TestOracle_MatchesBFS(t *testing.T) {
	s := ring(t, 12)
	o := bfs.NewOracle(s, 3)
	assert.Equal(t, 3, o.Bound())

	for u := 0; u < 12; u++ {
		for v := 0; v < 12; v++ {
			want, wantOK := bfs.Distance(s, u, v, 3)
			got, gotOK := o.Distance(u, v)
			require.Equal(t, wantOK, gotOK, "reachability %d→%d", u, v)
			if wantOK {
				require.Equal(t, want, got, "distance %d→%d", u, v)
			}
		}
	}
	assert.LessOrEqual(t, o.Cached(), 12)

	_, ok := o.Distance(0, 99)
	assert.False(t, ok)
}

// TestOracle_Concurrent ensures concurrent misses agree and do not race.
func TestOracle_Concurrent(t *testing.T) {
	s := ring(t, 64)
	o := bfs.NewOracle(s, 4)

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := 0; u < 64; u++ {
				d, ok := o.Distance(u, (u+4)%64)
				assert.True(t, ok)
				assert.Equal(t, 4, d)
			}
		}()
	}
	wg.Wait()
	assert.Positive(t, o.Cached())
	assert.LessOrEqual(t, o.Cached(), 64)
}
