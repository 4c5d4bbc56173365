// File: crossing.go
// Role: crossing-ring filter.
// Determinism:
//   - Sizes are processed in ascending order; a ring is judged only against
//     strictly smaller rings, so ties never depend on input order.
// AI-HINT (file):
//   - A ring is "crossing" when its edge set is the symmetric difference
//     of smaller rings, i.e. it lies in their span over GF(2).

package rings

import (
	"math/bits"

	"github.com/katalvlaran/vitrite/core"
)

// RemoveCrossingRings drops every ring whose edge set equals the symmetric
// difference of two or more strictly smaller rings of rs. The input is
// canonicalized first, so the result is a sorted RingSet. It never fails.
func RemoveCrossingRings(rs []Ring) RingSet {
	sorted := Dedup(rs)
	if len(sorted) == 0 {
		return sorted
	}

	index := make(map[core.Edge]int)
	vectors := make([]bitset, len(sorted))
	for _, r := range sorted {
		for _, e := range r.Edges() {
			if _, ok := index[e]; !ok {
				index[e] = len(index)
			}
		}
	}
	for i, r := range sorted {
		v := newBitset(len(index))
		for _, e := range r.Edges() {
			v.flip(index[e])
		}
		vectors[i] = v
	}

	basis := make(xorBasis)
	out := make(RingSet, 0, len(sorted))
	for lo := 0; lo < len(sorted); {
		hi := lo
		for hi < len(sorted) && len(sorted[hi]) == len(sorted[lo]) {
			hi++
		}
		// judge the whole size class before any of it joins the basis
		for i := lo; i < hi; i++ {
			if !basis.spans(vectors[i]) {
				out = append(out, sorted[i])
			}
		}
		for i := lo; i < hi; i++ {
			basis.insert(vectors[i])
		}
		lo = hi
	}

	return out
}

// bitset is a fixed-width bit vector over the edge index.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) flip(i int) { b[i/64] ^= 1 << (uint(i) % 64) }

func (b bitset) xor(o bitset) {
	for i := range b {
		b[i] ^= o[i]
	}
}

// lowest returns the index of the lowest set bit, or -1 for the zero vector.
func (b bitset) lowest() int {
	for i, w := range b {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}

	return -1
}

// xorBasis is a GF(2) basis in echelon form keyed by each vector's lowest
// set bit; no two basis vectors share a pivot.
type xorBasis map[int]bitset

// reduce eliminates pivots from a copy of v and returns the remainder.
func (xb xorBasis) reduce(v bitset) bitset {
	r := make(bitset, len(v))
	copy(r, v)
	for p := r.lowest(); p >= 0; p = r.lowest() {
		pv, ok := xb[p]
		if !ok {
			return r
		}
		r.xor(pv)
	}

	return r
}

// spans reports whether v is a sum of basis vectors.
func (xb xorBasis) spans(v bitset) bool {
	return xb.reduce(v).lowest() < 0
}

// insert adds v to the basis unless it is already spanned.
func (xb xorBasis) insert(v bitset) {
	r := xb.reduce(v)
	if p := r.lowest(); p >= 0 {
		xb[p] = r
	}
}
