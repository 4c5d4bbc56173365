package hull_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/vitrite/builder"
	"github.com/katalvlaran/vitrite/hull"
	"github.com/katalvlaran/vitrite/rings"
)

// BenchmarkAssembleHull_Dodecahedron closes a twelve-face cage.
func BenchmarkAssembleHull_Dodecahedron(b *testing.B) {
	s := builder.MustSnapshot(builder.PlatonicSolid(builder.Dodecahedron, false))
	ctx := context.Background()
	rs, err := rings.FindRings(ctx, s, 5)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hull.AssembleHull(ctx, s, rs); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPolyhedra_Lattice enumerates the unit cells of a 5×5×5 lattice.
func BenchmarkPolyhedra_Lattice(b *testing.B) {
	s := builder.MustSnapshot(builder.CubicLattice(5, 5, 5))
	ctx := context.Background()
	rs, err := rings.FindRings(ctx, s, 4)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hull.Polyhedra(ctx, s, rs); err != nil {
			b.Fatal(err)
		}
	}
}
