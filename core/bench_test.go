// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/odgraph/core"
)

// benchGraph builds n vertices with a ring of flows plus one chord per vertex.
func benchGraph(b *testing.B, n int) *core.Graph {
	b.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(fmt.Sprintf("N%d", i), nil); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		w := map[string]float64{"all": float64(i % 17)}
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i+1)%n), w)
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", (i*31+7)%n), w)
	}

	return g
}

// BenchmarkAddEdge_Parallel measures adding parallel flows between a fixed
// set of 100 destinations.
func BenchmarkAddEdge_Parallel(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddVertex("Root", nil)
	for i := 0; i < 100; i++ {
		_ = g.AddVertex(fmt.Sprintf("N%d", i), nil)
	}
	w := map[string]float64{"all": 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i%100), w)
	}
}

// BenchmarkSnapshot measures View construction on a 10k-vertex graph.
func BenchmarkSnapshot(b *testing.B) {
	g := benchGraph(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot("all")
	}
}

// BenchmarkFilter measures threshold filtering on a 10k-vertex graph.
func BenchmarkFilter(b *testing.B) {
	g := benchGraph(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Filter(func(e *core.Edge) bool { return e.Weight("all") >= 8 })
	}
}
