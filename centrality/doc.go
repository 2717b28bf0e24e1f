// Package centrality computes per-vertex importance on a directed flow graph.
//
// Measures:
//
//   - Degree:      in-degree + out-degree, parallel edges counted.
//   - Closeness:   reached / Σ distance along out-edges; 0 for a vertex that
//     reaches nothing. Hop distances by default, Dijkstra distances with
//     WithWeightAttribute (cost w, or 1/w with WithInverseWeights).
//   - Eigenvector: power iteration per weakly connected component, unit L2
//     norm per component, symmetrised adjacency unless WithDirected.
//
// Compute gathers all three into Scores, keyed by MeasureDegree,
// MeasureCloseness and MeasureEigenvector.
//
// Concurrency:
//
//	Every function snapshots the graph into an immutable core.View. Closeness
//	with WithWorkers(n) runs n goroutines under an errgroup; each writes
//	only the output slots of its own source range, so no locking is needed.
//
// Errors:
//
//   - ErrGraphNil, ErrOptionViolation, ErrUnknownMeasure.
//   - *NonConvergenceWarning (errors.Is(err, ErrNonConvergence)) comes with
//     usable best-estimate scores.
//   - Context errors from WithContext cancellation.
//
// The graph is never mutated.
package centrality
