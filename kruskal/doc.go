// Package kruskal provides a battle-tested implementation of Kruskal's
// Minimum Spanning Tree algorithm on an undirected, weighted edge list over
// the dense vertex universe [0, n).
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E such that T connects all vertices in V (i.e., spans the
//     graph) and the sum of weights of edges in T is minimized.
//
//   - Why MST matters:
//
//   - Network Design: build cost-efficient communication or transportation
//     networks (fiber backbones, road systems).
//
//   - Clustering: form clusters by cutting the heaviest edges of the tree.
//
//   - Subroutines: a building block in approximation algorithms (Steiner
//     trees, k-centers) and graph partitioning tasks.
//
// Strategy
//
//	Sort all edges by weight, then iterate from smallest to largest, using a
//	disjoint-set forest (lvlset/dsu) to merge vertices component-by-
//	component, skipping any edge whose endpoints are already connected — it
//	would close a cycle. Stop once |V|−1 edges have been accepted.
//
//   - Time: O(E log E + α(V)·E) ≈ O(E log V) — sorting dominates; the E
//     union-find operations are asymptotically negligible.
//
//   - Space: O(V + E) for the forest and the sorted edge copy.
//
//   - Determinism: the sort is stable, so among equal weights the input
//     order decides — a fixed, documented tie-break. Total MST weight never
//     depends on the tie-break; the specific edge set does when multiple
//     minimum spanning trees exist, and here it is reproducible.
//
// Disconnected Inputs
//
//	A disconnected graph has no spanning tree: fewer than |V|−1 edges are
//	ever accepted. The contract is explicit, not implicit:
//
//   - Default: MST returns ErrDisconnected.
//
//   - WithSpanningForest(): MST returns the minimum spanning forest — a
//     minimum spanning tree of each connected component (for components of
//     sizes s1..sk, exactly Σ(si−1) = |V|−k edges) — with no error.
//
// Error Conditions
//
//	- ErrNegativeVertexCount — n < 0.
//	- ErrVertexRange — an edge endpoint outside [0, n); the edge list is
//	  validated in full before any work.
//	- ErrDisconnected — strict mode only, as above.
//
//	Edge cases: n == 0 and n == 1 yield an empty MST with weight 0 and no
//	error (nothing to span). Self-loops are skipped — they can never be part
//	of a spanning tree.
//
// For examples of usage, see the example_test.go file in this package.
package kruskal
