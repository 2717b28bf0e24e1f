// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import "sort"

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolatedCount int
	AllowsLoops   bool

	// WeightNames lists every weight name carried by at least one edge, sorted.
	WeightNames []string

	// WeightTotals sums each weight name over all edges.
	WeightTotals map[string]float64
}

// Stats produces a deterministic, read-only snapshot of catalog sizes and
// weight totals.
//
// Implementation:
//   - Stage 1: Acquire the read lock; count vertices and isolated vertices.
//   - Stage 2: Scan edges once, accumulating totals per weight name.
//
// Complexity:
//   - Time O(V + E·k) for k weight names per edge, Space O(k).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := &GraphStats{
		VertexCount:  len(g.vertices),
		EdgeCount:    len(g.edges),
		AllowsLoops:  g.allowLoops,
		WeightTotals: make(map[string]float64),
	}
	for _, id := range g.vertexOrder {
		if len(g.out[id]) == 0 && len(g.in[id]) == 0 {
			stats.IsolatedCount++
		}
	}
	for _, eid := range g.edgeOrder {
		for name, w := range g.edges[eid].Weights {
			stats.WeightTotals[name] += w
		}
	}
	stats.WeightNames = make([]string, 0, len(stats.WeightTotals))
	for name := range stats.WeightTotals {
		stats.WeightNames = append(stats.WeightNames, name)
	}
	sort.Strings(stats.WeightNames)

	return stats
}
