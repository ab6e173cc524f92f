package dsu

// Interner assigns dense, stable integer indices to arbitrary string keys —
// the bridge between a domain of emails, labels or coordinates and the
// fixed [0, n) universe a Forest requires. Indices are handed out
// sequentially (0, 1, 2, …), so after interning every key the count of
// distinct keys is exactly the universe size to construct the Forest with.
//
// The mapping is bijective: Intern never reuses an index and Lookup inverts
// it. Like Forest, an Interner is not safe for concurrent use.
type Interner struct {
	ids map[string]int // key → assigned index
	rev []string       // index → key, in assignment order
}

// NewInterner returns an empty Interner; the first Intern call yields 0.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]int)}
}

// Intern returns the index for key, assigning the next sequential index if
// key has not been seen before. Interning the same key twice returns the
// same index.
//
// Complexity: amortized O(1).
func (in *Interner) Intern(key string) int {
	if id, ok := in.ids[key]; ok {
		return id
	}
	id := len(in.rev)
	in.rev = append(in.rev, key)
	in.ids[key] = id

	return id
}

// Lookup returns the key interned at id.
// Panics with ErrIndexOutOfRange unless 0 <= id < Len().
func (in *Interner) Lookup(id int) string {
	if id < 0 || id >= len(in.rev) {
		panic(ErrIndexOutOfRange)
	}

	return in.rev[id]
}

// Len returns the number of distinct keys interned so far; the next fresh
// key receives index Len().
func (in *Interner) Len() int { return len(in.rev) }
