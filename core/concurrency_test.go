// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vitrite/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// from a hub to distinct leaves are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, id))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
	require.Equal(t, num+1, g.Order())
}

// TestConcurrentSnapshotReaders shares one snapshot across goroutines
// while the source graph keeps mutating.
func TestConcurrentSnapshotReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}
	s := g.Snapshot()

	var wg sync.WaitGroup
	wg.Add(9)
	go func() {
		defer wg.Done()
		for i := 100; i < 200; i++ {
			_ = g.AddEdge(i, i+1)
		}
	}()
	for r := 0; r < 8; r++ {
		go func() {
			defer wg.Done()
			for v := 0; v < s.Order(); v++ {
				for _, w := range s.Neighbors(v) {
					require.True(t, s.HasEdge(w, v))
				}
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 51, s.Order())
}
