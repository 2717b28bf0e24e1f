// Package core provides the in-memory, directed, weighted multigraph that
// every other odgraph package works on.
//
// The Graph G = (V,E) models origin-destination flows:
//
//   - Vertices are spatial units identified by a string ID and carry an
//     immutable attribute map (region name, coordinates, ...).
//   - Edges are directed flow records carrying named non-negative weights
//     (for example "all", "car", "bus"). Parallel edges and reverse edges are
//     distinct; nothing is deduplicated or symmetrised implicitly.
//   - Self-loops are rejected unless WithLoops() is given.
//   - Insertion order is preserved for both vertices and edges, so every
//     enumeration (Vertices, Edges, Neighbors) is deterministic.
//   - Edge IDs are generated monotonically ("e1", "e2", ...).
//
// Invariants enforced at construction time:
//
//	– every edge endpoint exists            → ErrUnknownVertex
//	– vertex IDs are unique                 → ErrDuplicateVertex
//	– weights are finite and non-negative   → ErrNegativeWeight
//
// All three are reported as *ConstructionError and match ErrConstruction
// under errors.Is.
//
// Reduction and annotation:
//
//	RemoveEdgesWhere(pred)     // in place, vertices stay
//	RemoveVerticesWhere(pred)  // in place, incident edges go too
//	Filter(keep)               // pure: new Graph with kept edges
//	Clone()                    // pure: deep copy
//	WithVertexAttributes(k, m) // pure: new Graph with an extra attribute
//
// Algorithms that scan the graph repeatedly (centrality, community detection)
// work on a View obtained with Snapshot: an immutable, index-based adjacency
// that can be shared by concurrent workers without locks.
//
// Degree semantics:
//
//	Degree(v) = InDegree(v) + OutDegree(v), counting parallel edges, so
//	Σ OutDegree = Σ InDegree = |E| and Σ Degree = 2|E|.
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. Queries take the read lock and may
//	run concurrently; mutation is single-writer by contract.
package core
