package dsu_test

import (
	"testing"

	"github.com/katalvlaran/lvlset/dsu"
	"github.com/stretchr/testify/assert"
)

// TestInterner_SequentialIDs verifies that fresh keys receive dense
// sequential indices starting at zero.
func TestInterner_SequentialIDs(t *testing.T) {
	in := dsu.NewInterner()

	assert.Equal(t, 0, in.Intern("a"))
	assert.Equal(t, 1, in.Intern("b"))
	assert.Equal(t, 2, in.Intern("c"))
	assert.Equal(t, 3, in.Len())
}

// TestInterner_Idempotent verifies that re-interning a key returns its
// original index without growing the universe.
func TestInterner_Idempotent(t *testing.T) {
	in := dsu.NewInterner()

	first := in.Intern("x")
	assert.Equal(t, first, in.Intern("x"))
	assert.Equal(t, 1, in.Len())
}

// TestInterner_LookupRoundTrip verifies Lookup inverts Intern, and that an
// unknown index panics with ErrIndexOutOfRange.
func TestInterner_LookupRoundTrip(t *testing.T) {
	in := dsu.NewInterner()
	keys := []string{"red", "green", "blue"}
	for _, k := range keys {
		in.Intern(k)
	}

	for i, k := range keys {
		assert.Equal(t, k, in.Lookup(i))
	}
	assert.PanicsWithValue(t, dsu.ErrIndexOutOfRange, func() { in.Lookup(3) })
	assert.PanicsWithValue(t, dsu.ErrIndexOutOfRange, func() { in.Lookup(-1) })
}

// TestInterner_MergeAccountsByEmail drives the canonical two-stage design:
// emails are interned to dense indices, accounts sharing any email are
// unioned, and the component count gives the number of distinct people.
func TestInterner_MergeAccountsByEmail(t *testing.T) {
	// Three accounts; the first two share bob@x, the third is unrelated.
	accounts := [][]string{
		{"bob@x", "bob@y"},
		{"bob@x", "robert@z"},
		{"alice@x"},
	}

	// Stage 1: assign every distinct email a dense index.
	in := dsu.NewInterner()
	ids := make([][]int, len(accounts))
	for i, emails := range accounts {
		for _, e := range emails {
			ids[i] = append(ids[i], in.Intern(e))
		}
	}

	// Stage 2: drive the forest — union every email within one account.
	f, err := dsu.New(in.Len())
	assert.NoError(t, err)
	for _, accountIDs := range ids {
		for _, id := range accountIDs[1:] {
			f.Union(accountIDs[0], id)
		}
	}

	// bob@y and robert@z are transitively the same person via bob@x.
	assert.True(t, f.Connected(in.Intern("bob@y"), in.Intern("robert@z")))
	assert.False(t, f.Connected(in.Intern("alice@x"), in.Intern("bob@x")))
	// Two people: {bob@x, bob@y, robert@z} and {alice@x}.
	assert.Equal(t, 2, f.ComponentCount())
}
