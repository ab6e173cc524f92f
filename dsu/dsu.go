// Package dsu implements the disjoint-set forest with path compression and
// union by rank, plus the connectivity queries built directly on it.
package dsu

import "sort"

// New constructs a Forest of n singleton sets, one per element of {0..n-1}.
// n == 0 is valid and yields an empty forest with ComponentCount() == 0.
// Returns ErrNegativeUniverse if n < 0.
//
// Complexity: O(n) time and memory.
func New(n int) (*Forest, error) {
	// 1. Reject a negative universe outright; there is nothing sensible to build.
	if n < 0 {
		return nil, ErrNegativeUniverse
	}

	// 2. Allocate the three parallel slices in one shot each.
	f := &Forest{
		parent:     make([]int, n),
		rank:       make([]int, n),
		size:       make([]int, n),
		components: n,
	}

	// 3. Every element starts as its own root with rank 0 and size 1.
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len reports the universe size n fixed at construction.
func (f *Forest) Len() int { return len(f.parent) }

// checkIndex panics with ErrIndexOutOfRange unless 0 <= x < n.
// Out-of-range indices are contract violations, handled loudly.
func (f *Forest) checkIndex(x int) {
	if x < 0 || x >= len(f.parent) {
		panic(ErrIndexOutOfRange)
	}
}

// Find returns the representative (root) of the set containing x.
// Two elements a, b are in the same set iff Find(a) == Find(b).
//
// The walk is an iterative two-pass: first locate the root, then re-point
// every node on the path directly at it (full path compression). No
// recursion, so tree height never threatens the call stack. Compression
// shortens future walks but never changes set membership.
//
// Panics with ErrIndexOutOfRange unless 0 <= x < n.
//
// Complexity: amortized O(α(n)) combined with union by rank;
// a single call is O(height) before compression takes effect.
func (f *Forest) Find(x int) int {
	f.checkIndex(x)

	// 1. First pass: walk parent links up to the fixed point parent[r] == r.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}

	// 2. Second pass: re-point every visited node straight at the root.
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// Union merges the sets containing x and y. Returns false when x and y are
// already in the same set (a normal no-op, not an error: nothing changes
// beyond any compression performed by the two Find calls). Returns true
// when two distinct sets were merged, in which case ComponentCount()
// decrements by exactly one.
//
// Merge policy is union by rank: the root of strictly smaller rank is
// reparented under the other. On equal ranks the tie-break is fixed: the
// second root attaches under the first, whose rank then increments by one.
// The tie-break direction affects tree shape only, never which elements
// share a set.
//
// Panics with ErrIndexOutOfRange unless both indices lie in [0, n).
//
// Complexity: amortized O(α(n)).
func (f *Forest) Union(x, y int) bool {
	// 1. Resolve both roots (Find validates the indices).
	rx := f.Find(x)
	ry := f.Find(y)

	// 2. Same root: already connected, nothing to merge.
	if rx == ry {
		return false
	}

	// 3. Attach the shallower tree under the deeper root.
	if f.rank[rx] < f.rank[ry] {
		rx, ry = ry, rx
	}
	f.parent[ry] = rx
	f.size[rx] += f.size[ry]
	// Equal ranks: the surviving root just grew one level taller.
	if f.rank[rx] == f.rank[ry] {
		f.rank[rx]++
	}

	// 4. One fewer disjoint set.
	f.components--

	return true
}

// Connected reports whether x and y belong to the same set.
// No mutation beyond Find's path compression.
//
// Panics with ErrIndexOutOfRange unless both indices lie in [0, n).
//
// Complexity: amortized O(α(n)).
func (f *Forest) Connected(x, y int) bool {
	return f.Find(x) == f.Find(y)
}

// ComponentCount returns the number of disjoint sets currently in the
// forest: n minus the number of merging Union calls so far. Never negative.
//
// Complexity: O(1).
func (f *Forest) ComponentCount() int { return f.components }

// ComponentSize returns the number of elements in the set containing x.
// Sizes are maintained incrementally on every merging Union, so this is an
// O(α(n)) lookup, not an O(n) scan.
//
// Panics with ErrIndexOutOfRange unless 0 <= x < n.
func (f *Forest) ComponentSize(x int) int {
	return f.size[f.Find(x)]
}

// Components returns the current partition as a slice of components, one
// per disjoint set. Elements within each component appear in ascending
// order; components are ordered by their smallest element. The result
// always contains exactly ComponentCount() non-empty groups covering
// {0..n-1}.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (f *Forest) Components() [][]int {
	n := len(f.parent)
	// Group element indices by root; scanning i = 0..n-1 in order makes
	// every group ascending and orders groups by smallest member.
	byRoot := make(map[int]int, f.components) // root → index into comps
	comps := make([][]int, 0, f.components)
	for i := 0; i < n; i++ {
		r := f.Find(i)
		ci, ok := byRoot[r]
		if !ok {
			ci = len(comps)
			byRoot[r] = ci
			comps = append(comps, make([]int, 0, f.size[r]))
		}
		comps[ci] = append(comps[ci], i)
	}
	// First members are encountered in ascending order already; the sort is
	// a guard that keeps the contract independent of the grouping walk.
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}
