// Package dijkstra implements Dijkstra's shortest-path algorithm on flow graphs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - The graph is snapshotted once into a core.View; the search runs on
//     vertex indexes and flat slices instead of maps.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/odgraph/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g, following edges From→To.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (+Inf if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For the source and unreachable v, prev[v] == "".
//   - err:  error if inputs or options are invalid.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// Negative weights cannot occur: core.Graph rejects them at construction.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	view := g.Snapshot(cfg.WeightAttribute)
	src, _ := view.Index(cfg.Source)
	var s Scratch
	r := s.runner(view, cfg.costFunc(), cfg.MaxDistance)
	r.run(src)

	n := view.Len()
	dist := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		dist[view.ID(i)] = r.dist[i]
	}
	if !cfg.ReturnPath {
		return dist, nil, nil
	}
	prev := make(map[string]string, n)
	for i := 0; i < n; i++ {
		if p := r.prev[i]; p >= 0 {
			prev[view.ID(i)] = view.ID(p)
		} else {
			prev[view.ID(i)] = ""
		}
	}

	return dist, prev, nil
}

// Scratch holds reusable buffers for Distances. One Scratch per goroutine.
type Scratch struct {
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// Distances runs Dijkstra on v from vertex index src with the given cost
// function and returns the number of other vertices reached and the sum of
// their shortest distances. The View is only read, so concurrent callers may
// share it as long as each uses its own Scratch.
func Distances(v *core.View, src int, cost CostFunc, s *Scratch) (reached int, sum float64) {
	r := s.runner(v, cost, math.Inf(1))
	r.run(src)
	for i, d := range r.dist {
		if i != src && !math.IsInf(d, 1) {
			reached++
			sum += d
		}
	}

	return reached, sum
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	view    *core.View
	cost    CostFunc
	maxDist float64
	dist    []float64 // index → current best distance from the source
	prev    []int     // index → predecessor index, -1 if none
	visited []bool    // index → distance finalised
	pq      *nodePQ   // lazy min-heap
}

// runner resets the scratch buffers for a View of v.Len() vertices.
func (s *Scratch) runner(v *core.View, cost CostFunc, maxDist float64) *runner {
	n := v.Len()
	if cap(s.dist) < n {
		s.dist = make([]float64, n)
		s.prev = make([]int, n)
		s.visited = make([]bool, n)
	}
	s.dist, s.prev, s.visited = s.dist[:n], s.prev[:n], s.visited[:n]
	for i := 0; i < n; i++ {
		s.dist[i] = math.Inf(1)
		s.prev[i] = -1
		s.visited[i] = false
	}
	s.pq = s.pq[:0]

	return &runner{view: v, cost: cost, maxDist: maxDist, dist: s.dist, prev: s.prev, visited: s.visited, pq: &s.pq}
}

// run is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// vertex with the minimum distance and relaxes its outgoing arcs.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds maxDist.
func (r *runner) run(src int) {
	r.dist[src] = 0
	heap.Push(r.pq, nodeItem{idx: src, dist: 0})
	for r.pq.Len() > 0 {
		item := heap.Pop(r.pq).(nodeItem)
		u := item.idx
		if r.visited[u] {
			continue
		}
		if item.dist > r.maxDist {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each arc out of u and pushes improved distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	for _, a := range r.view.Out(u) {
		c, ok := r.cost(a.Weight)
		if !ok {
			continue
		}
		nd := r.dist[u] + c
		if nd > r.maxDist || nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		r.prev[a.To] = u
		heap.Push(r.pq, nodeItem{idx: a.To, dist: nd})
	}
}

// nodeItem represents a vertex index and its tentative distance.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending, ties broken
// by index so the pop order is deterministic.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
