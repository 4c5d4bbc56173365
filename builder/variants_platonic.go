// SPDX-License-Identifier: MIT
// Package: vitrite/builder
//
// variants_platonic.go — the five Platonic shells, assembled from rings,
// fans and rungs so each face family is visible in the construction.
//
// Determinism:
//   • Fixed labelling per solid; identical edge lists on every call.

package builder

// chord is an unordered local edge {U,V}; constructors shift it by cfg.base.
type chord struct {
	U, V int
}

// PlatonicName enumerates the five Platonic solids (canonical graph shells).
type PlatonicName int

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // 4 triangles
	Cube                             // 6 squares
	Octahedron                       // 8 triangles, 4 per vertex
	Dodecahedron                     // 12 pentagons
	Icosahedron                      // 20 triangles, 5 per vertex
)

// solid is one shell: its name, vertex count and edge generator.
type solid struct {
	name  string
	order int
	edges func() []chord
}

var solids = map[PlatonicName]solid{
	Tetrahedron: {"Tetrahedron", 4, func() []chord { return completeChords(4) }},

	// bottom 0-1-2-3, top 4-5-6-7, rungs i→i+4
	Cube: {"Cube", 8, func() []chord {
		return concat(ringChords(0, 1, 2, 3), ringChords(4, 5, 6, 7), rungChords(0, 4, 4))
	}},

	// poles 0 and 1 over the equator 2-4-3-5
	Octahedron: {"Octahedron", 6, func() []chord {
		equator := []int{2, 4, 3, 5}
		return concat(ringChords(equator...), fanChords(0, equator...), fanChords(1, equator...))
	}},

	// pentagons 0..4 and 5..9 capping the 10-cycle 10..19; the top
	// pentagon meets its even vertices, the bottom one its odd vertices
	Dodecahedron: {"Dodecahedron", 20, func() []chord {
		out := concat(cycleChords(0, 5), cycleChords(5, 5), cycleChords(10, 10))
		for i := 0; i < 5; i++ {
			out = append(out, chord{U: i, V: 10 + 2*i}, chord{U: 5 + i, V: 11 + 2*i})
		}
		return out
	}},

	// pole 0 over pentagon 1..5, pole 11 under pentagon 6..10; the two
	// pentagons are zipped by an antiprism band
	Icosahedron: {"Icosahedron", 12, func() []chord {
		top, bottom := []int{1, 2, 3, 4, 5}, []int{6, 7, 8, 9, 10}
		out := concat(ringChords(top...), ringChords(bottom...), fanChords(0, top...), fanChords(11, bottom...))
		for i, t := range top {
			out = append(out, chord{U: t, V: bottom[i]}, chord{U: t, V: bottom[(i+1)%5]})
		}
		return out
	}},
}

// String returns the solid's name, or "Unknown".
func (p PlatonicName) String() string {
	if s, ok := solids[p]; ok {
		return s.name
	}

	return "Unknown"
}

// ringChords closes the listed vertices into a cycle.
func ringChords(vs ...int) []chord {
	out := make([]chord, len(vs))
	for i, v := range vs {
		out[i] = chord{U: v, V: vs[(i+1)%len(vs)]}
	}

	return out
}

// fanChords joins hub to every listed vertex.
func fanChords(hub int, vs ...int) []chord {
	out := make([]chord, len(vs))
	for i, v := range vs {
		out[i] = chord{U: hub, V: v}
	}

	return out
}

// rungChords joins from+i to to+i for i < n.
func rungChords(from, to, n int) []chord {
	out := make([]chord, n)
	for i := range out {
		out[i] = chord{U: from + i, V: to + i}
	}

	return out
}

func concat(parts ...[]chord) []chord {
	var out []chord
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
