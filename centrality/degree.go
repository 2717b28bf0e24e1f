package centrality

import "github.com/katalvlaran/odgraph/core"

// Degree returns in-degree + out-degree for every vertex, counting parallel
// edges and ignoring weights. A nil graph yields an empty map.
//
// Complexity: O(V + E).
func Degree(g *core.Graph) map[string]float64 {
	if g == nil {
		return map[string]float64{}
	}
	v := g.Snapshot("")
	out := make(map[string]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[v.ID(i)] = float64(v.Degree(i))
	}

	return out
}
