// File: view.go
// Role: Immutable, index-based snapshot of a Graph for read-heavy algorithms.
// Determinism:
//   - Vertex indexes follow insertion order; arcs follow edge insertion order.
// Concurrency:
//   - A View never changes after Snapshot returns, so any number of goroutines
//     may read it without locking. Workers that need per-vertex output should
//     write into disjoint slots indexed by vertex index.

package core

// Arc is one directed edge inside a View, addressed by vertex index.
type Arc struct {
	// To is the index of the other endpoint (head for Out, tail for In).
	To int

	// Weight is the selected weight attribute, or 1 when no attribute was selected.
	Weight float64
}

// View is a read-only adjacency snapshot of a Graph.
type View struct {
	ids   []string
	index map[string]int
	out   [][]Arc
	in    [][]Arc
	edges int
}

// Snapshot builds a View of g. When weightAttr is empty every arc weighs 1;
// otherwise arcs carry e.Weight(weightAttr) (0 when the edge lacks it).
// Parallel edges stay separate arcs.
//
// Complexity: O(V + E) time and space.
func (g *Graph) Snapshot(weightAttr string) *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.vertexOrder)
	v := &View{
		ids:   make([]string, n),
		index: make(map[string]int, n),
		out:   make([][]Arc, n),
		in:    make([][]Arc, n),
		edges: len(g.edgeOrder),
	}
	for i, id := range g.vertexOrder {
		v.ids[i] = id
		v.index[id] = i
	}
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		w := 1.0
		if weightAttr != "" {
			w = e.Weights[weightAttr]
		}
		from, to := v.index[e.From], v.index[e.To]
		v.out[from] = append(v.out[from], Arc{To: to, Weight: w})
		v.in[to] = append(v.in[to], Arc{To: from, Weight: w})
	}

	return v
}

// Len returns the number of vertices.
func (v *View) Len() int { return len(v.ids) }

// EdgeCount returns the number of arcs (edges) in the snapshot.
func (v *View) EdgeCount() int { return v.edges }

// ID returns the vertex ID at index i.
func (v *View) ID(i int) string { return v.ids[i] }

// IDs returns the vertex IDs in index order. The slice must not be modified.
func (v *View) IDs() []string { return v.ids }

// Index returns the index of id and whether it exists.
func (v *View) Index(id string) (int, bool) {
	i, ok := v.index[id]

	return i, ok
}

// Out returns the outgoing arcs of vertex i. The slice must not be modified.
func (v *View) Out(i int) []Arc { return v.out[i] }

// In returns the incoming arcs of vertex i (Arc.To is the tail).
func (v *View) In(i int) []Arc { return v.in[i] }

// Degree returns in+out arc count of vertex i.
func (v *View) Degree(i int) int { return len(v.out[i]) + len(v.in[i]) }

// WeakComponents groups vertex indexes into weakly connected components,
// ignoring edge direction. Components are ordered by their smallest index
// and members are listed in BFS discovery order starting from that index.
//
// Complexity: O(V + E) time, O(V) space.
func (v *View) WeakComponents() [][]int {
	n := len(v.ids)
	seen := make([]bool, n)
	var comps [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, a := range v.out[u] {
				if !seen[a.To] {
					seen[a.To] = true
					queue = append(queue, a.To)
				}
			}
			for _, a := range v.in[u] {
				if !seen[a.To] {
					seen[a.To] = true
					queue = append(queue, a.To)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
