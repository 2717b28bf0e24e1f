package community_test

import (
	"fmt"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/community"
)

// ExampleDetect splits two commuter basins connected by a thin flow.
func ExampleDetect() {
	w := func(x float64) map[string]float64 { return map[string]float64{"all": x} }
	flows := []builder.FlowRecord{
		{Source: "North", Destination: "Harbour", Weights: w(50)},
		{Source: "Harbour", Destination: "North", Weights: w(45)},
		{Source: "North", Destination: "Mill", Weights: w(40)},
		{Source: "Mill", Destination: "North", Weights: w(42)},
		{Source: "Harbour", Destination: "Mill", Weights: w(30)},
		{Source: "Mill", Destination: "Harbour", Weights: w(35)},
		{Source: "Campus", Destination: "Station", Weights: w(60)},
		{Source: "Station", Destination: "Campus", Weights: w(55)},
		{Source: "Station", Destination: "Airport", Weights: w(38)},
		{Source: "Airport", Destination: "Station", Weights: w(41)},
		{Source: "Campus", Destination: "Airport", Weights: w(25)},
		{Source: "Airport", Destination: "Campus", Weights: w(20)},
		{Source: "Mill", Destination: "Station", Weights: w(1)},
	}
	g, _ := builder.Build(flows, nil)

	res, err := community.Detect(g, community.WithWeightAttribute("all"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("modules:", res.Modules)
	for _, m := range res.Communities {
		fmt.Println(m.Label, m.Members)
	}
	// Output:
	// modules: 2
	// 0 [North Harbour Mill]
	// 1 [Campus Station Airport]
}
