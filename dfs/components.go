package dfs

import (
	"github.com/katalvlaran/vitrite/core"
)

// Components returns the connected components of s that contain at least
// one edge, each as a sorted vertex list. Components are ordered by their
// smallest vertex. Isolated vertices are omitted: they cannot carry rings.
//
// Complexity: O(V + E).
func Components(s *core.Snapshot) [][]int {
	if s == nil {
		return nil
	}

	return components(s, nil)
}

// CountWithout reports how many edge-carrying components remain once the
// vertices in removed are deleted together with their incident edges.
// A nil set counts the components of s itself.
func CountWithout(s *core.Snapshot, removed map[int]bool) int {
	if s == nil {
		return 0
	}

	return len(components(s, removed))
}

// components runs a full traversal that never enters removed vertices and
// groups the visited vertices by tree root.
func components(s *core.Snapshot, removed map[int]bool) [][]int {
	res, err := DFS(s, 0, WithFullTraversal(), WithFilterNeighbor(func(id int) bool {
		return !removed[id]
	}))
	if err != nil {
		// no hooks and a background context: unreachable
		return nil
	}

	tree := make(map[int]int, len(res.Roots))
	for i, r := range res.Roots {
		tree[r] = i
	}
	byRoot := make([][]int, len(res.Roots))
	for v := 0; v < s.Order(); v++ {
		if r, ok := res.Root[v]; ok {
			byRoot[tree[r]] = append(byRoot[tree[r]], v)
		}
	}
	// vertices were appended ascending, so each comp is sorted
	var out [][]int
	for _, comp := range byRoot {
		// single vertex with no surviving edge
		if len(comp) < 2 {
			continue
		}
		out = append(out, comp)
	}

	return out
}
