// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order (first-seen wins).
//   - Neighbors()/Predecessors() return IDs in the order their first edge was added.
//
// Concurrency:
//   - Catalog, order and adjacency are protected by g.mu.
package core

// AddVertex inserts a new vertex with a copy of attrs.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under write lock, reject an existing ID with a ConstructionError
//     wrapping ErrDuplicateVertex.
//   - Stage 3: Register the vertex, record its insertion position and
//     bootstrap its adjacency buckets.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - *ConstructionError{ErrDuplicateVertex}: if id is already present.
//
// Complexity:
//   - Time O(|attrs|), Space O(|attrs|).
func (g *Graph) AddVertex(id string, attrs map[string]any) error {
	if id == "" {
		return constructionErrorf("AddVertex", id, ErrEmptyVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return constructionErrorf("AddVertex", id, ErrDuplicateVertex)
	}

	g.insertVertex(&Vertex{ID: id, Attributes: copyAttributes(attrs)})

	return nil
}

// insertVertex registers v without validation. Caller holds the write lock.
func (g *Graph) insertVertex(v *Vertex) {
	g.vertices[v.ID] = v
	g.vertexOrder = append(g.vertexOrder, v.ID)
	g.out[v.ID] = make(map[string]map[string]struct{})
	g.in[v.ID] = make(map[string]map[string]struct{})
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID.
// The returned pointer is shared with the graph and must be treated as read-only.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertices in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, 0, len(g.vertexOrder))
	for _, id := range g.vertexOrder {
		out = append(out, g.vertices[id])
	}

	return out
}

// VertexIDs returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.vertexOrder))
	copy(ids, g.vertexOrder)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// RemoveVerticesWhere deletes every vertex for which pred returns true,
// together with all edges touching it, and returns the number removed.
//
// Implementation:
//   - Stage 1: Under write lock, evaluate pred once per vertex in insertion order.
//   - Stage 2: Drop every edge with a removed endpoint from the catalog and both indexes.
//   - Stage 3: Delete the vertices and compact the insertion order slices.
//
// Contract:
//   - pred must not call back into g (the write lock is held).
//
// Complexity:
//   - Time O(V + E), Space O(k) for k removed vertices.
func (g *Graph) RemoveVerticesWhere(pred func(*Vertex) bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	doomed := make(map[string]struct{})
	for _, id := range g.vertexOrder {
		if pred(g.vertices[id]) {
			doomed[id] = struct{}{}
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	// Referential integrity: no edge may outlive one of its endpoints.
	kept := g.edgeOrder[:0]
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		_, fromGone := doomed[e.From]
		_, toGone := doomed[e.To]
		if fromGone || toGone {
			g.unlinkEdge(e)
			delete(g.edges, eid)
			continue
		}
		kept = append(kept, eid)
	}
	g.edgeOrder = kept

	order := g.vertexOrder[:0]
	for _, id := range g.vertexOrder {
		if _, gone := doomed[id]; gone {
			delete(g.vertices, id)
			delete(g.out, id)
			delete(g.in, id)
			continue
		}
		order = append(order, id)
	}
	g.vertexOrder = order

	return len(doomed)
}

// Degree returns in-degree + out-degree of id, counting parallel edges
// individually. A self-loop contributes 1 to each side.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d) where d is the number of distinct neighbours.
func (g *Graph) Degree(id string) (int, error) {
	in, out, err := g.degrees(id)

	return in + out, err
}

// InDegree returns the number of edges ending at id.
func (g *Graph) InDegree(id string) (int, error) {
	in, _, err := g.degrees(id)

	return in, err
}

// OutDegree returns the number of edges starting at id.
func (g *Graph) OutDegree(id string) (int, error) {
	_, out, err := g.degrees(id)

	return out, err
}

func (g *Graph) degrees(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}
	for _, bucket := range g.out[id] {
		out += len(bucket)
	}
	for _, bucket := range g.in[id] {
		in += len(bucket)
	}

	return in, out, nil
}

// Isolated returns the IDs of vertices with no incident edges, in insertion order.
// Complexity: O(V).
func (g *Graph) Isolated() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var ids []string
	for _, id := range g.vertexOrder {
		if len(g.out[id]) == 0 && len(g.in[id]) == 0 {
			ids = append(ids, id)
		}
	}

	return ids
}

// Neighbors returns the distinct out-neighbours of id.
// Order follows the insertion order of the first edge to each neighbour.
//
// Complexity: O(E) worst case; the scan stops once every neighbour is found.
func (g *Graph) Neighbors(id string) ([]string, error) {
	return g.adjacent(id, true)
}

// Predecessors returns the distinct in-neighbours of id.
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.adjacent(id, false)
}

func (g *Graph) adjacent(id string, outgoing bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	buckets := g.in[id]
	if outgoing {
		buckets = g.out[id]
	}
	// Walk the edge order once to keep results deterministic without sorting.
	seen := make(map[string]struct{}, len(buckets))
	ids := make([]string, 0, len(buckets))
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		var other string
		switch {
		case outgoing && e.From == id:
			other = e.To
		case !outgoing && e.To == id:
			other = e.From
		default:
			continue
		}
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		ids = append(ids, other)
		if len(ids) == len(buckets) {
			break
		}
	}

	return ids, nil
}

// copyAttributes returns a shallow copy of attrs; nil yields an empty map.
func copyAttributes(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}

	return out
}
