// Package dsu defines the core types and sentinel errors
// for the dsu subpackage of github.com/katalvlaran/lvlset.
package dsu

import (
	"errors"
)

// Sentinel errors for dsu operations.
var (
	// ErrNegativeUniverse indicates New was called with n < 0.
	ErrNegativeUniverse = errors.New("dsu: universe size must be non-negative")
	// ErrIndexOutOfRange indicates an element index outside [0, n).
	// Forest and Interner methods panic with this value: an out-of-range
	// index is a programmer error, not a recoverable runtime condition.
	ErrIndexOutOfRange = errors.New("dsu: element index out of range")
)

// Forest is an array-backed disjoint-set (union-find) structure over the
// fixed universe {0 .. n-1}. It maintains a partition of the universe into
// disjoint non-empty sets, supporting near-constant amortized Find and
// Union via path compression and union by rank.
//
// The universe size is fixed at construction; there is no element insertion
// or removal afterwards. The only mutating operation is Union (Find may
// rewrite parent pointers as an internal optimization, never changing which
// set any element belongs to).
//
// Forest is deliberately not generic over key types: dense integer indices
// are what make the O(1) slot access behind path compression and union by
// rank possible. Map arbitrary keys onto [0, n) externally (see Interner).
//
// A Forest is not safe for concurrent use: path compression rewrites
// parent pointers even during logically read-only queries. Callers sharing
// one instance across goroutines must serialize every call behind a single
// mutex.
type Forest struct {
	// parent[i] is the ownership parent of element i; roots satisfy
	// parent[r] == r. Following parent links from any element terminates
	// at its set's root.
	parent []int
	// rank[i] upper-bounds the height of the subtree rooted at i;
	// meaningful only while i is a root.
	rank []int
	// size[i] is the number of elements in i's set; meaningful only while
	// i is a root. Maintained so ComponentSize never costs O(n).
	size []int
	// components counts the disjoint sets; starts at n and decrements
	// exactly once per merging Union.
	components int
}
