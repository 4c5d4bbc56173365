// File: irreducible.go
// Role: Franzblau's shortest-path ring criterion.
// AI-HINT (file):
//   - A cycle is a ring iff no two of its vertices are joined by a path
//     shorter than the shorter way round the cycle between them.

package rings

import (
	"github.com/katalvlaran/vitrite/bfs"
	"github.com/katalvlaran/vitrite/core"
)

// Irreducible reports whether ring r has no shortcut in s: for every pair
// of ring vertices, the graph distance equals their distance along r.
// Pairs adjacent on r are skipped; a shorter path than one edge is
// impossible in a simple graph.
func Irreducible(s *core.Snapshot, r Ring) bool {
	if s == nil || len(r) < MinRingSize {
		return false
	}

	return irreducible(bfs.NewOracle(s, len(r)/2), r)
}

// irreducible checks every non-adjacent pair against o. The oracle bound
// must be at least len(r)/2 - 1 so that every shortcut is visible.
func irreducible(o *bfs.Oracle, r Ring) bool {
	n := len(r)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			along := min(j-i, n-(j-i))
			if along < 2 {
				continue
			}
			if d, ok := o.Distance(r[i], r[j]); ok && d < along {
				return false
			}
		}
	}

	return true
}
