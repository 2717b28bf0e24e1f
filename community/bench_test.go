package community_test

import (
	"testing"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/community"
)

func BenchmarkDetect_Random500(b *testing.B) {
	flows, err := builder.RandomFlows(500, 0.02, builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 100)))
	if err != nil {
		b.Fatal(err)
	}
	g, err := builder.Build(flows, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := community.Detect(g, community.WithWeightAttribute(builder.DefaultWeightName)); err != nil {
			b.Fatal(err)
		}
	}
}
