// Package odgraph analyses origin-destination (OD) flow tables as a weighted,
// directed graph: who travels (or ships, or calls) from where to where, and
// how much.
//
// What is odgraph?
//
//	An in-memory toolkit that turns flow records into answers:
//		• Construction: build a graph from flow and zone records (builder)
//		• Storage: directed multigraph with named weights and snapshots (core)
//		• Traversal: hop and weighted single-source distances (bfs, dijkstra)
//		• Importance: degree, closeness and eigenvector centrality (centrality)
//		• Reduction: threshold pruning to a degree floor (prune)
//		• Structure: map-equation flow communities and modularity (community)
//		• Output: scores and labels joined back onto zones (join)
//
// Data flow of one run (package analysis):
//
//	flows + zones ──► builder.Build ──► core.Graph ──┬─► centrality.Compute ─┐
//	                                                 └─► prune.Prune ─► community.Detect
//	                                                                        │
//	                                    join.Records ◄──────────────────────┘
//
// Supporting packages:
//
//	config/      — YAML configuration with validation, converted to options
//	metrics/     — Prometheus collectors for batch runs
//	cmd/odgraph/ — CLI: CSV in, JSON report and metrics textfile out
//
// Quick ASCII example:
//
//	    North ══50══► Harbour
//	      ▲             │
//	      └─────10──────┘
//
//	two zones with a strong morning flow and a weak return flow.
//
//	go install github.com/katalvlaran/odgraph/cmd/odgraph@latest
package odgraph
