// Package community partitions an OD flow graph into modules of vertices
// among which flow circulates for a long time, by minimising the two-level
// map equation.
//
// Flow model:
//
//	p       PageRank visit rates, teleportation τ (default 0.15) to a uniform
//	        target; vertices without outgoing weight always teleport.
//	q(u→v)  = (1−τ)·p_u·w_uv / w_u, teleportation steps are not recorded.
//
// Objective, for modules α with enter flow q↷α, exit flow q↶α and visit
// rate p_α:
//
//	L = plogp(Σ q↷) − Σ plogp(q↷α) − Σ plogp(q↶α) + Σ plogp(q↶α + p_α) − Σ plogp(p_u)
//
// with plogp(x) = x·log2(x). One module for the whole graph gives L = H(p),
// reported as Result.OneLevelCodelength.
//
// Search:
//
//   - Local moving: each vertex moves to the neighbouring module (or a new
//     one) that shrinks L most; sweeps repeat until nothing moves.
//   - Aggregation: modules become super-nodes and local moving repeats on
//     the coarser network until no modules merge (WithMaxLevels caps this).
//   - Fine-tuning: one more round of local moving on the original vertices,
//     starting from the aggregated partition.
//   - Trials: WithTrials(n) repeats the search with seeds s, s+1, ... and
//     keeps the shortest codelength.
//
// Labels are contiguous 0..k-1, numbered by the first vertex (in graph
// insertion order) of each module. Modularity reports the directed
// modularity of any labelling for comparison.
//
// Weights: by default every edge weighs 1; WithWeightAttribute selects a
// named flow weight. Self-loops and edges without positive weight carry no
// flow. A graph where no edge carries flow fails with ErrEmptyGraph.
package community
