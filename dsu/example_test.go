package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/lvlset/dsu"
)

// ExampleForest_Union demonstrates incremental connectivity over a small
// universe: two unions connect {1,2,3}, leaving 0 and 4 isolated.
func ExampleForest_Union() {
	// 1. Construct a forest of five singleton sets.
	f, _ := dsu.New(5)

	// 2. Merge 1–2 and 2–3; both calls report a real merge.
	f.Union(1, 2)
	f.Union(2, 3)

	// 3. Query the resulting partition.
	fmt.Println("components:", f.ComponentCount())
	fmt.Println("1~3 connected:", f.Connected(1, 3))
	fmt.Println("1~4 connected:", f.Connected(1, 4))
	// Output:
	// components: 3
	// 1~3 connected: true
	// 1~4 connected: false
}

// ExampleForest_Components shows the deterministic partition listing.
func ExampleForest_Components() {
	f, _ := dsu.New(6)
	f.Union(0, 2)
	f.Union(2, 4)
	f.Union(1, 5)

	fmt.Println(f.Components())
	// Output: [[0 2 4] [1 5] [3]]
}

// ExampleInterner feeds string keys through the Interner into a Forest —
// the two-stage design for arbitrary-keyed domains.
func ExampleInterner() {
	in := dsu.NewInterner()

	// Assign dense indices to the emails of two accounts.
	a := in.Intern("bob@x")
	b := in.Intern("bob@y")
	c := in.Intern("alice@z")

	f, _ := dsu.New(in.Len())
	f.Union(a, b) // same account owns both emails

	fmt.Println("bob@x ~ bob@y:", f.Connected(a, b))
	fmt.Println("bob@x ~ alice@z:", f.Connected(a, c))
	fmt.Println("people:", f.ComponentCount())
	// Output:
	// bob@x ~ bob@y: true
	// bob@x ~ alice@z: false
	// people: 2
}
