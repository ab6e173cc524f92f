package kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvlset/kruskal"
)

// BenchmarkMST measures performance on a random dense graph with 500
// vertices and 2000 edges.
func BenchmarkMST(b *testing.B) {
	edges := buildConnectedGraph(500, 2000) // pre-build edges once
	b.ResetTimer()                          // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = kruskal.MST(500, edges)
	}
}
