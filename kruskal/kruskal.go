// Package kruskal provides Kruskal's Minimum Spanning Tree algorithm over
// an edge list on the dense vertex universe [0, n).
package kruskal

import (
	"sort"

	"github.com/katalvlaran/lvlset/dsu"
)

// MST computes the minimum spanning tree of the undirected weighted graph
// (n, edges), using a disjoint-set forest purely as a cycle guard while
// edges are processed in ascending weight order.
//
// Error Conditions:
//   - ErrNegativeVertexCount : n < 0.
//   - ErrVertexRange         : any endpoint outside [0, n).
//   - ErrDisconnected        : fewer than n-1 edges accepted and the
//     default strict contract is in force. With WithSpanningForest the same
//     input instead yields the minimum spanning forest, no error.
//
// Steps:
//  1. Validate n and every edge endpoint up front; reject bad input before
//     any work.
//  2. n <= 1 → trivial result: no edges, zero weight (nothing to span).
//  3. Copy the edge list, skipping self-loops (u == v): they can never be
//     part of a spanning tree.
//  4. Sort the copy by ascending Weight with sort.SliceStable, so equal
//     weights keep their input order — the documented deterministic
//     tie-break (the caller's edge slice is never reordered).
//  5. Initialize a fresh dsu.Forest over n elements.
//  6. For each edge in sorted order: accept it iff Union merges two
//     components; an edge inside one component would close a cycle and is
//     rejected. Stop early once n-1 edges are accepted.
//  7. Fewer than n-1 accepted: the graph is disconnected — error by
//     default, spanning forest under WithSpanningForest.
//
// Returns the accepted edges in acceptance (ascending-weight) order and
// their total weight.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V) time — the sort dominates.
// Memory: O(E + V).
func MST(n int, edges []Edge, opts ...Option) ([]Edge, float64, error) {
	// 1a. Validate the vertex count.
	if n < 0 {
		return nil, 0, ErrNegativeVertexCount
	}
	// 1b. Validate every endpoint: edge lists are external input, rejected
	//     at the boundary rather than panicked on.
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, 0, ErrVertexRange
		}
	}

	// Apply caller options over the defaults.
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// 2. Zero or one vertex: the MST is trivially empty with weight 0.
	if n <= 1 {
		return []Edge{}, 0, nil
	}

	// 3. Copy edges, dropping self-loops; the caller's slice stays intact.
	sorted := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V {
			// Skip self-loops entirely: they cannot be part of a spanning tree.
			continue
		}
		sorted = append(sorted, e)
	}

	// 4. Stable sort by ascending weight: equal weights keep input order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 5. Fresh forest: the cycle guard for the greedy selection.
	f, err := dsu.New(n)
	if err != nil {
		return nil, 0, err
	}

	// 6. Greedy selection: lightest edge first, cycles rejected by Union.
	var (
		mst         []Edge  // accepted edges, in acceptance order
		totalWeight float64 // running sum of accepted weights
	)
	for _, e := range sorted {
		// Union reports false exactly when the edge would close a cycle.
		if !f.Union(e.U, e.V) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// n-1 accepted edges span every vertex; the rest is wasted work.
		if len(mst) == n-1 {
			break
		}
	}

	// 7. Short of n-1 edges: disconnected input. The forest result is
	//    already minimal per component, so the option only changes whether
	//    that counts as success.
	if len(mst) < n-1 && !options.SpanningForest {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
