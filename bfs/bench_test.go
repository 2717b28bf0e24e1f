package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/odgraph/bfs"
	"github.com/katalvlaran/odgraph/core"
)

// chain builds v0→v1→…→vN.
func chain(b *testing.B, n int) *core.Graph {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i <= n; i++ {
		_ = g.AddVertex(fmt.Sprintf("v%d", i), nil)
	}
	for i := 0; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), nil)
	}

	return g
}

// BenchmarkDistances_Chain measures the View kernel with a reused Scratch.
func BenchmarkDistances_Chain(b *testing.B) {
	const N = 10000
	v := chain(b, N).Snapshot("")
	var s bfs.Scratch
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Distances(v, 0, &s)
	}
}
