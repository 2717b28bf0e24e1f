package prune_test

import (
	"fmt"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/prune"
)

// ExamplePrune drops the weak X→Z flow so that X and Y both keep degree 2.
func ExamplePrune() {
	g, _ := builder.Build([]builder.FlowRecord{
		{Source: "X", Destination: "Y", Weights: map[string]float64{"all": 50}},
		{Source: "Y", Destination: "X", Weights: map[string]float64{"all": 10}},
		{Source: "X", Destination: "Z", Weights: map[string]float64{"all": 2}},
	}, nil)

	rep, err := prune.Prune(g, prune.WithMinDegree(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("threshold:", rep.FinalThreshold)
	fmt.Println("vertices:", rep.Graph.VertexIDs())
	fmt.Println("removed:", rep.RemovedVertices)
	// Output:
	// threshold: 3
	// vertices: [X Y]
	// removed: [Z]
}
