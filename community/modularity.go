package community

import "github.com/katalvlaran/odgraph/core"

// Modularity returns the directed modularity of labels on g:
//
//	Q = Σ_c [ w_in(c)/m − out(c)·in(c)/m² ]
//
// where m is the total weight, w_in(c) the weight of edges inside c and
// out(c), in(c) the summed out- and in-strengths of c's members. An empty
// weightAttr weighs every edge 1. Vertices missing from labels are each
// treated as their own community. Returns 0 when m is 0.
//
// Complexity: O(V + E).
func Modularity(g *core.Graph, labels map[string]int, weightAttr string) float64 {
	if g == nil {
		return 0
	}
	view := g.Snapshot(weightAttr)
	n := view.Len()

	comm := make([]int, n)
	next := 0
	for _, l := range labels {
		if l >= next {
			next = l + 1
		}
	}
	for i := 0; i < n; i++ {
		if l, ok := labels[view.ID(i)]; ok {
			comm[i] = l
			continue
		}
		comm[i] = next
		next++
	}

	inside := make([]float64, next)
	outS := make([]float64, next)
	inS := make([]float64, next)
	var m float64
	for u := 0; u < n; u++ {
		for _, a := range view.Out(u) {
			if a.Weight <= 0 {
				continue
			}
			m += a.Weight
			outS[comm[u]] += a.Weight
			inS[comm[a.To]] += a.Weight
			if comm[u] == comm[a.To] {
				inside[comm[u]] += a.Weight
			}
		}
	}
	if m == 0 {
		return 0
	}

	var q float64
	for c := range inside {
		q += inside[c]/m - outS[c]*inS[c]/(m*m)
	}

	return q
}
