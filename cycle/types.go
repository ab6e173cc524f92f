// Package cycle defines the edge type and sentinel errors
// for the cycle subpackage of github.com/katalvlaran/lvlset.
package cycle

import (
	"errors"
)

// Sentinel errors for cycle detection.
var (
	// ErrNegativeVertexCount indicates a negative vertex count n.
	ErrNegativeVertexCount = errors.New("cycle: vertex count must be non-negative")
	// ErrVertexRange indicates an edge endpoint outside [0, n).
	ErrVertexRange = errors.New("cycle: edge endpoint out of range")
)

// Edge is one undirected edge between two vertices of the [0, n) universe.
// U == V is a self-loop, which always closes a cycle on its own.
type Edge struct {
	U, V int
}
