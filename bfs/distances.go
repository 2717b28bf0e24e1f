package bfs

import "github.com/katalvlaran/odgraph/core"

// Scratch holds reusable buffers for Distances. One Scratch per goroutine;
// a zero Scratch is ready to use and grows on first call.
type Scratch struct {
	dist  []int
	queue []int
}

// Distances runs an out-direction BFS on v from vertex index src and returns
// the number of other vertices reached and the sum of their hop distances.
// Arcs with Weight ≤ 0 are still traversed; weights are ignored here.
//
// The View is only read, so any number of goroutines may call Distances on
// the same View concurrently, each with its own Scratch.
//
// Complexity: O(V + E) time, O(V) scratch space reused across calls.
func Distances(v *core.View, src int, s *Scratch) (reached int, sum int) {
	n := v.Len()
	if cap(s.dist) < n {
		s.dist = make([]int, n)
		s.queue = make([]int, 0, n)
	}
	s.dist = s.dist[:n]
	for i := range s.dist {
		s.dist[i] = -1
	}
	s.queue = append(s.queue[:0], src)
	s.dist[src] = 0

	for qi := 0; qi < len(s.queue); qi++ {
		u := s.queue[qi]
		du := s.dist[u]
		for _, a := range v.Out(u) {
			if s.dist[a.To] >= 0 {
				continue
			}
			s.dist[a.To] = du + 1
			reached++
			sum += du + 1
			s.queue = append(s.queue, a.To)
		}
	}

	return reached, sum
}

// Depth returns the hop distance of vertex index i from the last Distances
// source, or -1 when i was not reached.
func (s *Scratch) Depth(i int) int {
	if i < 0 || i >= len(s.dist) {
		return -1
	}

	return s.dist[i]
}
