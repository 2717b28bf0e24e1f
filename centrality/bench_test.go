package centrality_test

import (
	"testing"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/centrality"
	"github.com/katalvlaran/odgraph/core"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	flows, err := builder.RandomFlows(1000, 0.01, builder.WithSeed(11), builder.WithWeightFn(builder.UniformWeightFn(1, 100)))
	if err != nil {
		b.Fatal(err)
	}
	g, err := builder.Build(flows, nil)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkCloseness_Sequential(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Closeness(g)
	}
}

func BenchmarkCloseness_Workers8(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Closeness(g, centrality.WithWorkers(8))
	}
}

func BenchmarkEigenvector(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = centrality.Eigenvector(g, centrality.WithWeightAttribute("all"))
	}
}
