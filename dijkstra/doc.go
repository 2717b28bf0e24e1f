// Package dijkstra provides Dijkstra's shortest-path algorithm on the
// directed flow graph, with edge cost derived from a named flow weight.
//
// Overview:
//
//   - Dijkstra(g, opts...) computes the minimum-cost distance from a single
//     source vertex to every vertex in O((V + E) log V) time.
//   - Distances(view, src, cost, scratch) is the index-based kernel reused by
//     weighted closeness centrality. It allocates nothing after the first call
//     on a given Scratch and is safe to run concurrently on a shared core.View.
//
// Cost model:
//
//   - WithWeightAttribute(name) picks the weight (default "all").
//   - By default cost = w. WithInverseWeights() switches to cost = 1/w, the
//     usual choice for flow volumes where a strong link means closeness.
//   - Zero or missing weights give no traversable edge.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a predecessor map, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - Deterministic heap order: ties on distance are broken by vertex insertion index.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound.
//   - ErrOptionViolation wrapping ErrBadMaxDistance for negative MaxDistance.
//
// Thread safety:
//
//   - Dijkstra snapshots the graph under its read lock, then runs lock-free.
package dijkstra
