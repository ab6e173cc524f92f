// Package dsu provides a battle-tested disjoint-set forest (union-find) over
// a fixed universe {0 .. n-1}, with path compression and union by rank, plus
// the connectivity queries client code asks of it.
//
// What & Why
//
//   - What is a disjoint-set forest?
//     A partition of n labeled elements into disjoint non-empty sets, stored
//     as parent-pointer trees: each set is a tree, each tree's root is the
//     set's representative. Union merges two trees; Find walks to the root.
//
//   - Why union-find matters:
//
//   - Incremental connectivity: answer "are u and v connected yet?" while
//     edges stream in, without re-running a traversal per query.
//
//   - Cycle guarding: Kruskal's MST and edge-by-edge cycle detection both
//     reduce to "does this edge join two different sets?".
//
//   - Entity merging: deduplicate accounts by shared email, stitch grid
//     cells into islands — any "merge groups as evidence arrives" workload.
//
//   - Near-constant cost: with path compression and union by rank, any
//     sequence of m operations costs O(m·α(n)), α being the inverse
//     Ackermann function (≤ 4 for every realistic n).
//
// Operations Provided
//
//   - New(n) (*Forest, error)
//     Build n singleton sets. n == 0 is a valid empty forest.
//
//   - Find(x) int — representative of x's set; iterative two-pass walk with
//     full path compression (no recursion, stack-safe at any tree height).
//
//   - Union(x, y) bool — merge the two sets; false means already connected
//     (a normal outcome, not a failure). Union by rank with a fixed,
//     documented tie-break: on equal ranks the second root attaches under
//     the first.
//
//   - Connected(x, y) bool — Find(x) == Find(y).
//
//   - ComponentCount() int — O(1); n minus merging unions so far.
//
//   - ComponentSize(x) int — O(α(n)); sizes are maintained on every merge
//     rather than recounted on demand.
//
//   - Components() [][]int — the full partition, deterministically ordered.
//
//   - Interner — assigns dense sequential indices to string keys, feeding
//     arbitrary-keyed domains into the integer-indexed forest. The forest
//     itself is never generic over keys: dense indices are what keep slot
//     access O(1) under compression.
//
// Error Conditions
//
//	The forest fails loudly and only on contract violations:
//
//	- ErrNegativeUniverse — New(n) with n < 0 (returned).
//	- ErrIndexOutOfRange — any element index outside [0, n); Find, Union,
//	  Connected, ComponentSize and Interner.Lookup panic with this value,
//	  since a bad index is a programmer error, not a condition to retry.
//
//	A no-op Union and a false Connected are successes, never errors.
//
// Concurrency
//
//	Not safe for concurrent use: Find physically rewrites parent pointers
//	(path compression) even though it is logically read-only, so unguarded
//	concurrent calls can observe a pointer mid-update. Share one Forest
//	across goroutines only behind a single mutex serializing every call.
//	For a single-threaded caller, operations take effect strictly in call
//	order.
//
// For examples of usage, see the example_test.go file in this package.
package dsu
