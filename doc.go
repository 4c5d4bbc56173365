// Package vitrite perceives rings and polyhedral cells in undirected
// networks, such as the hydrogen-bond network of water and ice.
//
// 🚀 What is vitrite?
//
//	A small, concurrent library that takes a graph and reports:
//		• Rings: irreducible cycles up to a size bound (King seeds, Franzblau check)
//		• Crossing filter: drop rings that are sums of smaller rings
//		• Hulls: rings glued into closed cells with Euler characteristic 2
//		• Polyhedra: every cell (vitrite) of a ring network
//
// Under the hood, everything is organized under subpackages:
//
//	core/     — Graph (mutable) and Snapshot (immutable adjacency view)
//	bfs/      — bounded shortest paths and the cached distance Oracle
//	dfs/      — depth-first traversal and connected components
//	builder/  — deterministic fixtures: cycles, prisms, solids, lattices, random regular graphs
//	rings/    — FindRings, Dedup, Irreducible, RemoveCrossingRings
//	hull/     — AssembleHull and Polyhedra
//	metric/   — Prometheus collectors for every stage
//	config/   — TOML configuration of one analysis
//	analysis/ — the end-to-end pipeline with run IDs and stage timings
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	has exactly one ring, [0 1 2 3]. Add the chord 0–2 and it has two
//	triangles instead: the square becomes reducible.
//
//	go get github.com/katalvlaran/vitrite
package vitrite
