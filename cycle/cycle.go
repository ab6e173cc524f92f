// Package cycle provides union-find-driven cycle detection for undirected
// graphs given as an ordered edge list over vertices [0, n).
package cycle

import (
	"github.com/katalvlaran/lvlset/dsu"
)

// FirstCycle processes edges in the given order and returns the index of
// the first edge that closes a cycle, together with true. An edge closes a
// cycle when its endpoints are already connected by earlier edges — which
// includes a self-loop (U == V), trivially connected to itself even with no
// prior edge. When no edge closes a cycle, FirstCycle returns (-1, false).
//
// Detection stops at the offending edge; edges after it are neither
// inspected nor merged. The forest's connectivity state is the detector's
// only state.
//
// Error Conditions:
//   - ErrNegativeVertexCount : n < 0.
//   - ErrVertexRange         : any endpoint outside [0, n); the whole edge
//     list is validated up front, so a malformed edge anywhere rejects the
//     input before any detection runs.
//
// Complexity: O(E·α(V)) time, O(V) memory.
func FirstCycle(n int, edges []Edge) (int, bool, error) {
	// 1. Validate the vertex count.
	if n < 0 {
		return -1, false, ErrNegativeVertexCount
	}

	// 2. Validate every endpoint before touching any state: edge lists come
	//    from external collaborators, so bad data is rejected, not panicked on.
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return -1, false, ErrVertexRange
		}
	}

	// 3. Fresh forest: its connectivity state is the whole detector state.
	f, err := dsu.New(n)
	if err != nil {
		return -1, false, err
	}

	// 4. Scan edges in order; the first already-connected pair closes a cycle.
	for i, e := range edges {
		if f.Connected(e.U, e.V) {
			// Self-loops land here too: Find(u) == Find(u) always.
			return i, true, nil
		}
		// Endpoints in different components: merge and keep scanning.
		f.Union(e.U, e.V)
	}

	// 5. Every edge merged two components: the graph is a forest.
	return -1, false, nil
}

// HasCycle reports whether the undirected graph (n, edges) contains a
// cycle. It is the boolean wrapper over FirstCycle and shares its
// validation and error contract.
//
// Complexity: O(E·α(V)) time, O(V) memory.
func HasCycle(n int, edges []Edge) (bool, error) {
	_, found, err := FirstCycle(n, edges)

	return found, err
}
