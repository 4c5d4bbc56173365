package bfs_test

import (
	"testing"

	"github.com/katalvlaran/vitrite/bfs"
	"github.com/katalvlaran/vitrite/core"
)

// grid builds an M×M grid snapshot.
func grid(b *testing.B, m int) *core.Snapshot {
	g := core.NewGraph()
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			id := i*m + j
			if i+1 < m {
				_ = g.AddEdge(id, id+m)
			}
			if j+1 < m {
				_ = g.AddEdge(id, id+1)
			}
		}
	}

	return g.Snapshot()
}

// BenchmarkBFS_Grid runs an unbounded BFS on a 100×100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	s := grid(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, 0)
	}
}

// BenchmarkBFS_Bounded shows the effect of a ring-size depth bound.
func BenchmarkBFS_Bounded(b *testing.B) {
	s := grid(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(s, 5050, bfs.WithMaxDepth(4))
	}
}

// BenchmarkOracle_Warm measures cached lookups.
func BenchmarkOracle_Warm(b *testing.B) {
	s := grid(b, 100)
	o := bfs.NewOracle(s, 4)
	o.Ball(5050)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = o.Distance(5050, 5252)
	}
}
