package core_test

import (
	"testing"

	"github.com/katalvlaran/vitrite/core"
)

// BenchmarkAddEdge measures insertion on a chain.
func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for v := 0; v < 1000; v++ {
			_ = g.AddEdge(v, v+1)
		}
	}
}

// BenchmarkSnapshot measures snapshotting a 100×100 grid.
func BenchmarkSnapshot(b *testing.B) {
	const m = 100
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

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}
