// File: ring.go
// Role: Ring value type, canonical form and ordering.
// Determinism:
//   - Canonical is the lexicographically smallest rotation over both
//     traversal directions (Booth's least rotation, O(n) per direction).
// AI-HINT (file):
//   - Two rings are the same ring iff their canonical forms are equal.

package rings

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/vitrite/core"
)

// Ring is a simple cycle given as a cyclic vertex sequence. Consecutive
// vertices, and the last and first, are adjacent in the graph.
type Ring []int

// Len returns the number of vertices (and edges) of r.
func (r Ring) Len() int { return len(r) }

// Edges returns the edges of r in traversal order, each normalized (U <= V).
func (r Ring) Edges() []core.Edge {
	out := make([]core.Edge, len(r))
	for i := range r {
		out[i] = core.Edge{U: r[i], V: r[(i+1)%len(r)]}.Normalized()
	}

	return out
}

// Contains reports whether v is a vertex of r.
func (r Ring) Contains(v int) bool {
	return slices.Contains(r, v)
}

// Vertices returns the vertex set of r in ascending order.
func (r Ring) Vertices() []int {
	out := slices.Clone(r)
	slices.Sort(out)

	return out
}

// Canonical returns the smallest rotation of r or of its reversal.
// The canonical form always starts at the smallest vertex; of the two
// directions away from it, the one with the smaller neighbour wins.
func (r Ring) Canonical() Ring {
	if len(r) == 0 {
		return Ring{}
	}
	fwd := minimalRotation(r)
	rev := minimalRotation(reversed(r))
	if compareInts(rev, fwd) < 0 {
		return rev
	}

	return fwd
}

// Key renders the canonical form as a comma-separated signature, usable
// as a map key.
func (r Ring) Key() string {
	c := r.Canonical()
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Equal reports whether r and o describe the same cycle, up to rotation
// and reflection.
func (r Ring) Equal(o Ring) bool {
	if len(r) != len(o) {
		return false
	}

	return compareInts(r.Canonical(), o.Canonical()) == 0
}

// Compare orders rings by length, then lexicographically. It is meant for
// canonical rings and is the order of every RingSet.
func Compare(a, b Ring) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}

	return compareInts(a, b)
}

// reversed returns a new slice with the elements of s in reverse order.
func reversed(s []int) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// compareInts lexicographically compares two equal-length slices.
func compareInts(a, b []int) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// minimalRotation implements Booth's algorithm and returns the
// lexicographically minimal rotation of s as a new slice.
//  1. Duplicate the sequence to length 2n.
//  2. Maintain failure links f, initialised to -1.
//  3. Track candidate k; for j in 1..2n-1 adjust k on each mismatch.
//  4. Extract the rotation starting at k.
//
// Time Complexity: O(n).
func minimalRotation(s []int) []int {
	n := len(s)
	doubled := make([]int, 2*n)
	copy(doubled, s)
	copy(doubled[n:], s)

	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	res := make([]int, n)
	copy(res, doubled[k:k+n])

	return res
}
