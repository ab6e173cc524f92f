// Package kruskal defines the weighted edge type, configuration options and
// sentinel errors for MST construction.
package kruskal

import (
	"errors"
)

// Sentinel errors for MST construction.
var (
	// ErrNegativeVertexCount indicates a negative vertex count n.
	ErrNegativeVertexCount = errors.New("kruskal: vertex count must be non-negative")
	// ErrVertexRange indicates an edge endpoint outside [0, n).
	ErrVertexRange = errors.New("kruskal: edge endpoint out of range")
	// ErrDisconnected indicates the graph is not fully connected, so no
	// spanning tree covering all vertices exists. Suppressed by
	// WithSpanningForest, which returns a spanning forest instead.
	ErrDisconnected = errors.New("kruskal: graph is disconnected")
)

// Edge is one undirected weighted edge between vertices of [0, n).
// Weight carries the total order the algorithm sorts by; ties among equal
// weights are broken by input position (stable sort), so output is
// deterministic for a fixed input.
type Edge struct {
	U, V   int
	Weight float64
}

// Options configures MST construction. Use DefaultOptions() for the
// default setup (strict spanning tree, disconnection is an error).
//
// Fields:
//
//	SpanningForest bool — when true, a disconnected input yields a minimum
//	spanning forest (one tree per component) instead of ErrDisconnected.
type Options struct {
	// SpanningForest switches the disconnected-input contract from error
	// to minimum-spanning-forest result.
	SpanningForest bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSpanningForest returns an Option that accepts disconnected inputs,
// returning the minimum spanning forest rather than ErrDisconnected.
func WithSpanningForest() Option {
	return func(opts *Options) {
		opts.SpanningForest = true
	}
}

// DefaultOptions returns Options initialized for a strict spanning tree:
//
//	– SpanningForest = false (disconnected input → ErrDisconnected).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		SpanningForest: false,
	}
}
