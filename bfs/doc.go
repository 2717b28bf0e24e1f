// Package bfs provides the breadth-first hop-distance kernel used by
// closeness centrality.
//
// What
//
//   - Distances(view, src, scratch) explores vertices in non-decreasing hop
//     distance from src, following arcs in their direction (From→To) only,
//     and reports how many vertices were reached and the sum of their
//     distances.
//   - Scratch keeps the distance and queue buffers between calls, so a
//     worker that visits every source allocates once.
//
// Determinism
//
//	core.View.Out follows edge insertion order, so the visit sequence is
//	reproducible for identical input.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per source
//   - Memory: O(V) held by the Scratch
//
// Usage
//
//	var s bfs.Scratch
//	for src := 0; src < view.Len(); src++ {
//	    reached, sum := bfs.Distances(view, src, &s)
//	    _ = s.Depth(0) // hops from src to vertex index 0, or -1
//	}
package bfs
