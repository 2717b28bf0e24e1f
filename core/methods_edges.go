// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/HasEdge,
//       predicate removal, and nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge inserts a directed edge from→to carrying a copy of weights and
// returns its ID. Parallel and reverse edges are always allowed.
//
// Steps:
//  1. Validate IDs and weights (finite, ≥ 0).
//  2. Lock; both endpoints must already exist (no implicit vertex creation).
//  3. Reject self-loops unless WithLoops() was given.
//  4. Generate the edge ID, store the edge, link both adjacency indexes.
//
// Errors:
//   - *ConstructionError{ErrEmptyVertexID | ErrUnknownVertex | ErrNegativeWeight | ErrLoopNotAllowed}.
//
// Complexity: O(|weights|) amortized.
func (g *Graph) AddEdge(from, to string, weights map[string]float64) (string, error) {
	pair := from + "→" + to
	if from == "" || to == "" {
		return "", constructionErrorf("AddEdge", pair, ErrEmptyVertexID)
	}
	for name, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return "", constructionErrorf("AddEdge", pair, fmt.Errorf("%w: %s=%v", ErrNegativeWeight, name, w))
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return "", constructionErrorf("AddEdge", pair, fmt.Errorf("%w: %q", ErrUnknownVertex, from))
	}
	if _, ok := g.vertices[to]; !ok {
		return "", constructionErrorf("AddEdge", pair, fmt.Errorf("%w: %q", ErrUnknownVertex, to))
	}
	if from == to && !g.allowLoops {
		return "", constructionErrorf("AddEdge", pair, ErrLoopNotAllowed)
	}

	ws := make(map[string]float64, len(weights))
	for name, w := range weights {
		ws[name] = w
	}
	e := &Edge{ID: g.nextEdgeID(), From: from, To: to, Weights: ws}
	g.insertEdge(e)

	return e.ID, nil
}

// insertEdge stores e and links it into both indexes. Caller holds the write lock.
func (g *Graph) insertEdge(e *Edge) {
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	link(g.out, e.From, e.To, e.ID)
	link(g.in, e.To, e.From, e.ID)
}

// unlinkEdge removes e from both indexes and prunes empty buckets.
// The catalog entry and edgeOrder are left to the caller.
func (g *Graph) unlinkEdge(e *Edge) {
	unlink(g.out, e.From, e.To, e.ID)
	unlink(g.in, e.To, e.From, e.ID)
}

func link(idx map[string]map[string]map[string]struct{}, a, b, eid string) {
	inner, ok := idx[a][b]
	if !ok {
		inner = make(map[string]struct{})
		idx[a][b] = inner
	}
	inner[eid] = struct{}{}
}

func unlink(idx map[string]map[string]map[string]struct{}, a, b, eid string) {
	inner, ok := idx[a][b]
	if !ok {
		return
	}
	delete(inner, eid)
	if len(inner) == 0 {
		delete(idx[a], b)
	}
}

// Edge returns the edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) Edge(id string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgesBetween returns every edge from→to in insertion order.
func (g *Graph) EdgesBetween(from, to string) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	bucket := g.out[from][to]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]*Edge, 0, len(bucket))
	for _, eid := range g.edgeOrder {
		if _, ok := bucket[eid]; ok {
			out = append(out, g.edges[eid])
		}
	}

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.out[from][to]) > 0
}

// RemoveEdgesWhere deletes every edge for which pred returns true and
// returns how many were removed. Vertices are never removed here, even if
// they become isolated.
//
// Contract:
//   - pred must not call back into g (the write lock is held).
//
// Complexity: O(E).
func (g *Graph) RemoveEdgesWhere(pred func(*Edge) bool) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	kept := g.edgeOrder[:0]
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if pred(e) {
			g.unlinkEdge(e)
			delete(g.edges, eid)
			removed++
			continue
		}
		kept = append(kept, eid)
	}
	g.edgeOrder = kept

	return removed
}

// nextEdgeID returns a new unique textual edge ID. Caller holds the write lock.
func (g *Graph) nextEdgeID() string {
	g.edgeSeq++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.edgeSeq, 10)

	return string(buf)
}
