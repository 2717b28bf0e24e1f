package builder_test

import (
	"fmt"

	"github.com/katalvlaran/odgraph/builder"
)

// ExampleBuild merges duplicate commuter flows and attaches zone attributes.
func ExampleBuild() {
	flows := []builder.FlowRecord{
		{Source: "Leeds", Destination: "York", Weights: map[string]float64{"all": 30}},
		{Source: "Leeds", Destination: "York", Weights: map[string]float64{"all": 12}},
		{Source: "York", Destination: "Leeds", Weights: map[string]float64{"all": 25}},
	}
	zones := []builder.VertexRecord{
		{ID: "York", Attributes: map[string]any{"region": "North Yorkshire"}},
	}

	g, err := builder.Build(flows, zones, builder.WithAggregation(builder.SumDuplicates))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s %.0f\n", e.From, e.To, e.Weight("all"))
	}
	york, _ := g.Vertex("York")
	fmt.Println(york.Attributes["region"])
	// Output:
	// Leeds→York 42
	// York→Leeds 25
	// North Yorkshire
}
