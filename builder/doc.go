// Package builder turns origin-destination flow records into a core.Graph.
//
// The package offers the following key components:
//
//   - Records:
//     – FlowRecord:   one directed flow (source, destination, named weights).
//     – VertexRecord: attributes of one spatial unit, keyed by ID.
//   - Build(flows, vertices, opts...) with functional options:
//     – WithAggregation(KeepAll | SumDuplicates)
//     – WithStrictAttachment()
//     – WithLoops()
//     – WithLogger(*zap.Logger)
//   - Synthetic flow generators for fixtures and benchmarks:
//     – CompleteFlows(n), CycleFlows(n), RandomFlows(n, p)
//     – WithSeed / WithRand, WithIDScheme, WithWeightFn, WithWeightName
//
// Vertex order:
//
//	Flow endpoints appear in first-seen order (source before destination),
//	followed by vertex records that no flow references (non-strict mode only).
//
// Attachment:
//
//	A flow endpoint without a VertexRecord gets an empty attribute map.
//	A VertexRecord that no flow references is kept as an isolated vertex, or
//	rejected with ErrMissingVertexAttribute under WithStrictAttachment.
//
// Self-loops:
//
//	Build performs no implicit filtering. Callers drop source == destination
//	records beforehand, or pass WithLoops() to keep them.
//
// Errors:
//
//	Every failure is a *core.ConstructionError (errors.Is(err, core.ErrConstruction))
//	and Build returns a nil graph, so no partially built graph escapes.
package builder
