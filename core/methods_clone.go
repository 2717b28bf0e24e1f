// File: methods_clone.go
// Role: Pure transformations that return a new Graph: Clone, Filter,
//       WithVertexAttributes.
// Determinism:
//   - Vertex and edge insertion order is preserved; edge IDs are carried over
//     and the clone continues the same ID sequence.
// Concurrency:
//   - Read lock on the source only; the result is a fresh instance.

package core

import "fmt"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Attribute and weight maps are copied, so the clone can be
// reduced without affecting g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.Filter(nil)
}

// Filter returns a new Graph with every vertex of g and only the edges for
// which keep returns true (nil keeps all). g is not mutated.
//
// Implementation:
//   - Stage 1: Copy configuration and the edge ID sequence.
//   - Stage 2: Copy vertices in insertion order.
//   - Stage 3: Copy kept edges in insertion order, preserving their IDs.
//
// Complexity: O(V + E).
func (g *Graph) Filter(keep func(*Edge) bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.allowLoops = g.allowLoops
	out.edgeSeq = g.edgeSeq
	for _, id := range g.vertexOrder {
		v := g.vertices[id]
		out.insertVertex(&Vertex{ID: v.ID, Attributes: copyAttributes(v.Attributes)})
	}
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if keep != nil && !keep(e) {
			continue
		}
		ws := make(map[string]float64, len(e.Weights))
		for name, w := range e.Weights {
			ws[name] = w
		}
		out.insertEdge(&Edge{ID: e.ID, From: e.From, To: e.To, Weights: ws})
	}

	return out
}

// WithVertexAttributes returns a copy of g where values[id] is stored under
// key on each listed vertex. Existing attributes are never overwritten.
//
// Errors:
//   - ErrVertexNotFound: values names a vertex that g does not contain.
//   - ErrAttributeConflict: a target vertex already carries key.
//
// Complexity: O(V + E + |values|).
func (g *Graph) WithVertexAttributes(key string, values map[string]any) (*Graph, error) {
	out := g.Clone()
	for id, val := range values {
		v, ok := out.vertices[id]
		if !ok {
			return nil, fmt.Errorf("WithVertexAttributes(%s): %w: %q", key, ErrVertexNotFound, id)
		}
		if _, exists := v.Attributes[key]; exists {
			return nil, fmt.Errorf("WithVertexAttributes(%s): %w on %q", key, ErrAttributeConflict, id)
		}
		v.Attributes[key] = val
	}

	return out, nil
}
