package community

import (
	"math"

	"github.com/katalvlaran/odgraph/core"
)

const (
	pageRankTolerance = 1e-15
	pageRankMaxIter   = 1000
)

// link is an aggregated flow to (or from) another node of a network level.
type link struct {
	to   int
	flow float64
}

// network is one level of the search: nodes with visit rates and the flow
// on links between distinct nodes.
type network struct {
	flow    []float64
	out, in [][]link
	outFlow []float64 // Σ out link flow per node
	inFlow  []float64 // Σ in link flow per node
}

func (n *network) size() int { return len(n.flow) }

// flowNetwork computes PageRank visit rates on view and the link flows
// (1-τ)·p_u·w_uv/w_u. Self-loops and non-positive weights carry no flow;
// nodes without out-weight teleport uniformly.
//
// Returns ok == false when no link carries weight.
func flowNetwork(view *core.View, tau float64) (*network, bool) {
	n := view.Len()
	outW := make([]float64, n)
	var total float64
	for u := 0; u < n; u++ {
		for _, a := range view.Out(u) {
			if a.To != u && a.Weight > 0 {
				outW[u] += a.Weight
			}
		}
		total += outW[u]
	}
	if total == 0 {
		return nil, false
	}

	p := make([]float64, n)
	next := make([]float64, n)
	for i := range p {
		p[i] = 1 / float64(n)
	}
	for iter := 0; iter < pageRankMaxIter; iter++ {
		var dangling float64
		for u := 0; u < n; u++ {
			if outW[u] == 0 {
				dangling += p[u]
			}
		}
		base := (tau + (1-tau)*dangling) / float64(n)
		for v := range next {
			next[v] = base
		}
		for u := 0; u < n; u++ {
			if outW[u] == 0 {
				continue
			}
			scale := (1 - tau) * p[u] / outW[u]
			for _, a := range view.Out(u) {
				if a.To != u && a.Weight > 0 {
					next[a.To] += scale * a.Weight
				}
			}
		}
		var sum, diff float64
		for _, x := range next {
			sum += x
		}
		for v := range next {
			next[v] /= sum
			diff += math.Abs(next[v] - p[v])
		}
		p, next = next, p
		if diff < pageRankTolerance*float64(n) {
			break
		}
	}

	net := &network{
		flow:    p,
		out:     make([][]link, n),
		in:      make([][]link, n),
		outFlow: make([]float64, n),
		inFlow:  make([]float64, n),
	}
	for u := 0; u < n; u++ {
		if outW[u] == 0 {
			continue
		}
		scale := (1 - tau) * p[u] / outW[u]
		for _, a := range view.Out(u) {
			if a.To == u || a.Weight <= 0 {
				continue
			}
			net.addLink(u, a.To, scale*a.Weight)
		}
	}
	net.merge()

	return net, true
}

// addLink appends a raw link; merge later collapses parallel links.
func (n *network) addLink(u, v int, f float64) {
	n.out[u] = append(n.out[u], link{to: v, flow: f})
	n.in[v] = append(n.in[v], link{to: u, flow: f})
	n.outFlow[u] += f
	n.inFlow[v] += f
}

// merge collapses parallel links per node, keeping first-seen order.
func (n *network) merge() {
	pos := make([]int, n.size())
	for i := range pos {
		pos[i] = -1
	}
	collapse := func(ls []link) []link {
		out := ls[:0]
		for _, l := range ls {
			if j := pos[l.to]; j >= 0 {
				out[j].flow += l.flow
				continue
			}
			pos[l.to] = len(out)
			out = append(out, l)
		}
		for _, l := range out {
			pos[l.to] = -1
		}

		return out
	}
	for u := range n.out {
		n.out[u] = collapse(n.out[u])
		n.in[u] = collapse(n.in[u])
	}
}

// aggregate builds the next level: module m of assign becomes node m.
// Links inside a module vanish. assign must be contiguous 0..k-1.
func (n *network) aggregate(assign []int, k int) *network {
	next := &network{
		flow:    make([]float64, k),
		out:     make([][]link, k),
		in:      make([][]link, k),
		outFlow: make([]float64, k),
		inFlow:  make([]float64, k),
	}
	for u, f := range n.flow {
		next.flow[assign[u]] += f
	}
	for u, ls := range n.out {
		mu := assign[u]
		for _, l := range ls {
			if mv := assign[l.to]; mv != mu {
				next.addLink(mu, mv, l.flow)
			}
		}
	}
	next.merge()

	return next
}
