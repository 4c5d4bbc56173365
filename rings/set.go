// File: set.go
// Role: RingSet and the deduplicator.
// Determinism:
//   - Dedup output depends only on the multiset of input rings: canonical
//     forms sorted by (length, lexicographic).

package rings

import (
	"slices"
)

// RingSet is a duplicate-free collection of canonical rings ordered by
// length, then lexicographically. Indices into a RingSet are stable ring
// ids for hull assembly.
type RingSet []Ring

// Dedup canonicalizes every ring and drops repeats under rotation and
// reflection. The result is a sorted RingSet; Dedup is idempotent.
// Input rings are not modified.
func Dedup(in []Ring) RingSet {
	out := make(RingSet, 0, len(in))
	for _, r := range in {
		if len(r) == 0 {
			continue
		}
		out = append(out, r.Canonical())
	}
	slices.SortFunc(out, Compare)

	return slices.CompactFunc(out, func(a, b Ring) bool { return Compare(a, b) == 0 })
}

// Len returns the number of rings.
func (rs RingSet) Len() int { return len(rs) }

// Index returns the position of r (in any rotation or direction) in rs,
// or -1 when absent. Complexity: O(len(r) + log |rs|).
func (rs RingSet) Index(r Ring) int {
	if len(r) == 0 {
		return -1
	}
	c := r.Canonical()
	i, found := slices.BinarySearchFunc(rs, c, Compare)
	if !found {
		return -1
	}

	return i
}

// Contains reports whether r is a member of rs.
func (rs RingSet) Contains(r Ring) bool { return rs.Index(r) >= 0 }

// Histogram counts rings per size.
func (rs RingSet) Histogram() map[int]int {
	h := make(map[int]int)
	for _, r := range rs {
		h[len(r)]++
	}

	return h
}

// Sizes returns the distinct ring sizes in ascending order.
func (rs RingSet) Sizes() []int {
	var out []int
	for _, r := range rs {
		if len(out) == 0 || out[len(out)-1] != len(r) {
			out = append(out, len(r))
		}
	}

	return out
}
