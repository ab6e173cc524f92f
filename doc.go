// Package lvlset is your in-memory toolkit for connectivity over a fixed
// universe of elements — a disjoint-set (union-find) forest together with
// the two classic algorithms built on top of it.
//
// 🚀 What is lvlset?
//
//	A small, focused, zero-dependency library that brings together:
//		• Core structure: array-backed disjoint-set forest with path
//		  compression and union by rank — near-constant amortized ops
//		• Connectivity queries: same-set tests, component counts & sizes
//		• Cycle detection: edge-by-edge cycle checks on undirected graphs
//		• Minimum spanning trees: Kruskal's sort-and-union construction
//
// ✨ Why choose lvlset?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed tie-breaks, stable sorts, repeatable output
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – sentinel errors at the boundary, loud panics on
//     programmer errors, nothing swallowed
//
// Everything is organized under three subpackages:
//
//	dsu/     — the disjoint-set forest, connectivity queries and the
//	           string→index Interner bridge
//	cycle/   — undirected-graph cycle detection driven by the forest
//	kruskal/ — minimum spanning tree / spanning forest construction
//
// Quick ASCII example:
//
//	    0───1       union(0,1), union(2,3), union(1,2)
//	        │   →   one component left: {0,1,2,3}
//	    2───3
//
// Elements are dense integers in [0, n). Mapping arbitrary keys (emails,
// cell coordinates, …) onto that index space is the caller's job; the
// dsu.Interner covers the common string case.
//
//	go get github.com/katalvlaran/lvlset
package lvlset
