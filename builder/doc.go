// Package builder provides deterministic fixture graphs for ring perception
// and hull assembly, in the “functional-options” style.
//
// Constructors (each returns a Constructor for BuildGraph):
//
//   - Cycle(n), Path(n), Complete(n), Prism(n)
//   - PlatonicSolid(name, withCenter): tetrahedron, cube, octahedron,
//     dodecahedron, icosahedron
//   - CubicLattice(nx, ny, nz): periodic simple-cubic lattice
//   - RandomRegular(n, d): seeded random d-regular graph (WithSeed required)
//
// Composition:
//
// Every constructor numbers its vertices from the current graph order, so
//
//	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5), builder.PlatonicSolid(builder.Cube, false))
//
// yields two components: the pentagon on 0..4 and the cube on 5..12.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrNeedRandSource, ...)
//     wrapped with the constructor name.
//   - Identical graphs for identical inputs, options and seeds.
package builder
