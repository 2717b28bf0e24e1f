// Package prune reduces a flow graph by an iterative weight threshold until
// the surviving vertices are well connected.
//
// The loop always filters the ORIGINAL graph, never the previous working
// graph, so thresholds are independent of each other and the input is never
// mutated. It stops at the first threshold t where every vertex that keeps at
// least one edge has in+out degree ≥ MinDegree (default 5), and returns that
// working graph with t in a Report.
//
// Example:
//
//	rep, err := prune.Prune(g, prune.WithMinDegree(2), prune.WithLogger(log))
//	var inf *prune.PruningInfeasibleError
//	if errors.As(err, &inf) {
//	    // every threshold emptied the graph first
//	}
//
// The loop is sequential; cancellation is checked between thresholds.
package prune
