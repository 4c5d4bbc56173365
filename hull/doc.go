// Package hull assembles rings into closed polyhedral cells (vitrites):
// sets of faces where every covered edge is shared by exactly two faces
// and the Euler characteristic F - E + V equals 2.
//
// What
//
//   - AssembleHull(ctx, s, rs, opts...): first closed hull per the search
//     order, or State Exhausted with the largest partial assignment, its
//     open edges and open vertices.
//   - Polyhedra(ctx, s, rs, opts...): every closed hull that is a proper
//     cell: no further ring lies on its vertices and removing its vertices
//     does not split the ring network.
//
// Search
//
//	Rings are split by connected component of the graph their edges form.
//	Within a component each ring in turn seeds a backtracking search that
//	only adds rings with a larger id, so every face set is found from its
//	smallest ring. At each step the open edge (one face) with the fewest
//	viable rings is covered next. A ring is viable when no edge would reach
//	three faces and no vertex would exceed MaxFacesPerVertex; a vertex that
//	reaches the limit must have every incident hull edge closed.
//
// States
//
//	Empty → Growing → (Closed | Stuck → Growing ... ) → Exhausted
//
//	WithOnState observes every transition.
//
// Budgets
//
//   - MaxFaces (default 20) caps the faces of one hull.
//   - MaxSteps (default 1e6) caps ring placements per component. When it
//     runs out AssembleHull reports Exhausted and Polyhedra returns what it
//     found with ErrBudgetExhausted.
//   - MaxFacesPerVertex (default 3) fits tetrahedral, cubic and
//     dodecahedral cells; octahedral cells need 4, icosahedral 5.
//
// Errors
//
//   - ErrGraphNil         nil snapshot.
//   - ErrOptionViolation  invalid option value.
//   - ErrRingNotInGraph   a ring that is not a simple cycle of s.
//   - ErrDuplicateRing    the same ring twice.
//   - core.ErrInvalidGraph (wrapped) for an invalid snapshot, and ctx.Err().
package hull
