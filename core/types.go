// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex, and Edge types used to
// model origin-destination flow networks, and provides the primitives for
// building, querying, reducing, and snapshotting them.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrDuplicateVertex   - a vertex with the same ID already exists.
//	ErrUnknownVertex     - an edge endpoint references a missing vertex.
//	ErrNegativeWeight    - an edge weight is negative, NaN or infinite.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
//	ErrAttributeConflict - an attribute key would overwrite an existing one.
package core

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates a query referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a query referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateVertex indicates that a vertex ID was inserted twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownVertex indicates that an edge endpoint is not in the vertex set.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrNegativeWeight indicates a weight that is not a finite non-negative number.
	ErrNegativeWeight = errors.New("core: weight must be a finite non-negative number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAttributeConflict indicates an attribute key is already present on a vertex.
	ErrAttributeConflict = errors.New("core: attribute already set")
)

// Vertex represents a spatial unit (zone, district, station) in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Attributes are attached once at insertion and must be treated as read-only;
// derived values are added through Graph.WithVertexAttributes, which returns
// a new Graph instead of mutating this one.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attributes holds string or numeric values keyed by name.
	Attributes map[string]any
}

// Attribute returns the value stored under key and whether it was present.
func (v *Vertex) Attribute(key string) (any, bool) {
	if v == nil || v.Attributes == nil {
		return nil, false
	}
	val, ok := v.Attributes[key]

	return val, ok
}

// Edge represents one directed flow record between two vertices.
//
// Each Edge has a unique ID and carries a set of named non-negative weights
// (for example "all", "car", "bus"). Parallel edges and the reverse edge are
// distinct entries.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weights maps a weight name to its non-negative value.
	Weights map[string]float64
}

// Weight returns the named weight, or 0 when the edge does not carry it.
func (e *Edge) Weight(name string) float64 {
	if e == nil {
		return 0
	}

	return e.Weights[name]
}

// WeightNames returns the names of the weights carried by e, sorted ascending.
func (e *Edge) WeightNames() []string {
	names := make([]string, 0, len(e.Weights))
	for name := range e.Weights {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
// Flow data normally excludes intra-zone records before construction,
// so loops are rejected unless this option is given.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory directed, weighted multigraph.
//
// mu guards every field below it. Reads are safe from many goroutines;
// mutation is single-writer by contract and must not overlap with readers
// that need a stable view (use Snapshot for that).
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	edgeSeq uint64 // monotonic edge ID generator

	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // insertion order of vertex IDs
	edges       map[string]*Edge   // edge ID → Edge
	edgeOrder   []string           // insertion order of edge IDs

	// out[from][to][edgeID] and in[to][from][edgeID]; the reverse index keeps
	// in-degree queries proportional to the vertex's own neighbourhood.
	out map[string]map[string]map[string]struct{}
	in  map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty directed Graph.
// By default self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]map[string]struct{}),
		in:       make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
