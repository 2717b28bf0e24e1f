package community

import "math"

// minImprovement is the smallest codelength decrease accepted for a move.
const minImprovement = 1e-10

// plogp returns p·log2(p), 0 for p ≤ 0.
func plogp(p float64) float64 {
	if p <= 0 {
		return 0
	}

	return p * math.Log2(p)
}

// partition tracks module assignment and the map-equation terms of one
// network level:
//
//	L = plogp(Σ enter) − Σ plogp(enter) − Σ plogp(exit) + Σ plogp(exit+flow) − Σ plogp(p_α)
//
// nodeTerm holds Σ plogp(p_α) over the ORIGINAL vertices, which no move
// or aggregation changes.
type partition struct {
	net      *network
	module   []int
	members  []int
	flow     []float64
	exit     []float64
	enter    []float64
	empty    []int // stack of module ids without members
	nodeTerm float64

	sumEnter         float64
	sumPlogpEnter    float64
	sumPlogpExit     float64
	sumPlogpExitFlow float64

	// scratch for neighbour-module accumulation
	outTo, inFrom []float64
	touched       []int
	mark          []bool
}

// newPartition builds the state for net with the given assignment
// (nil = every node alone). Module ids live in [0, net.size()).
func newPartition(net *network, assign []int, nodeTerm float64) *partition {
	n := net.size()
	p := &partition{
		net:      net,
		module:   make([]int, n),
		members:  make([]int, n),
		flow:     make([]float64, n),
		exit:     make([]float64, n),
		enter:    make([]float64, n),
		nodeTerm: nodeTerm,
		outTo:    make([]float64, n),
		inFrom:   make([]float64, n),
		mark:     make([]bool, n),
	}
	for u := 0; u < n; u++ {
		m := u
		if assign != nil {
			m = assign[u]
		}
		p.module[u] = m
		p.members[m]++
		p.flow[m] += net.flow[u]
	}
	for u, ls := range net.out {
		mu := p.module[u]
		for _, l := range ls {
			if mv := p.module[l.to]; mv != mu {
				p.exit[mu] += l.flow
				p.enter[mv] += l.flow
			}
		}
	}
	for m := n - 1; m >= 0; m-- {
		if p.members[m] == 0 {
			p.empty = append(p.empty, m)
		}
	}
	p.recompute()

	return p
}

// recompute rebuilds the codelength sums from module terms.
func (p *partition) recompute() {
	p.sumEnter, p.sumPlogpEnter, p.sumPlogpExit, p.sumPlogpExitFlow = 0, 0, 0, 0
	for m := range p.members {
		if p.members[m] == 0 {
			continue
		}
		p.sumEnter += p.enter[m]
		p.sumPlogpEnter += plogp(p.enter[m])
		p.sumPlogpExit += plogp(p.exit[m])
		p.sumPlogpExitFlow += plogp(p.exit[m] + p.flow[m])
	}
}

// codelength returns the current two-level map equation in bits.
func (p *partition) codelength() float64 {
	return plogp(p.sumEnter) - p.sumPlogpEnter - p.sumPlogpExit + p.sumPlogpExitFlow - p.nodeTerm
}

// moveTerms are the module terms after a tentative move.
type moveTerms struct {
	exitOld, enterOld, flowOld float64
	exitNew, enterNew, flowNew float64
}

// terms computes old/new module terms for moving u from old to to, given
// u's link flow to/from the remaining members of old and the members of to.
func (p *partition) terms(u, old, to int, outOld, inOld, outNew, inNew float64) moveTerms {
	outU, inU, fu := p.net.outFlow[u], p.net.inFlow[u], p.net.flow[u]

	return moveTerms{
		exitOld:  p.exit[old] - (outU - outOld) + inOld,
		enterOld: p.enter[old] - (inU - inOld) + outOld,
		flowOld:  p.flow[old] - fu,
		exitNew:  p.exit[to] + (outU - outNew) - inNew,
		enterNew: p.enter[to] + (inU - inNew) - outNew,
		flowNew:  p.flow[to] + fu,
	}
}

// delta returns the codelength change of applying t to modules old and to.
func (p *partition) delta(old, to int, t moveTerms) float64 {
	sumEnter := p.sumEnter - p.enter[old] - p.enter[to] + t.enterOld + t.enterNew

	d := plogp(sumEnter) - plogp(p.sumEnter)
	d -= plogp(t.enterOld) + plogp(t.enterNew) - plogp(p.enter[old]) - plogp(p.enter[to])
	d -= plogp(t.exitOld) + plogp(t.exitNew) - plogp(p.exit[old]) - plogp(p.exit[to])
	d += plogp(t.exitOld+t.flowOld) + plogp(t.exitNew+t.flowNew) -
		plogp(p.exit[old]+p.flow[old]) - plogp(p.exit[to]+p.flow[to])

	return d
}

// apply commits moving u from old to to with terms t.
func (p *partition) apply(u, old, to int, t moveTerms) {
	p.sumEnter += t.enterOld + t.enterNew - p.enter[old] - p.enter[to]
	p.sumPlogpEnter += plogp(t.enterOld) + plogp(t.enterNew) - plogp(p.enter[old]) - plogp(p.enter[to])
	p.sumPlogpExit += plogp(t.exitOld) + plogp(t.exitNew) - plogp(p.exit[old]) - plogp(p.exit[to])
	p.sumPlogpExitFlow += plogp(t.exitOld+t.flowOld) + plogp(t.exitNew+t.flowNew) -
		plogp(p.exit[old]+p.flow[old]) - plogp(p.exit[to]+p.flow[to])

	p.exit[old], p.enter[old], p.flow[old] = t.exitOld, t.enterOld, t.flowOld
	p.exit[to], p.enter[to], p.flow[to] = t.exitNew, t.enterNew, t.flowNew

	if p.members[to] == 0 {
		p.empty = p.empty[:len(p.empty)-1]
	}
	p.members[old]--
	p.members[to]++
	if p.members[old] == 0 {
		p.exit[old], p.enter[old], p.flow[old] = 0, 0, 0
		p.empty = append(p.empty, old)
	}
	p.module[u] = to
}

// contiguous renumbers modules 0..k-1 by first node appearance and returns
// the assignment and k.
func (p *partition) contiguous() ([]int, int) {
	relabel := make([]int, len(p.members))
	for i := range relabel {
		relabel[i] = -1
	}
	assign := make([]int, len(p.module))
	k := 0
	for u, m := range p.module {
		if relabel[m] < 0 {
			relabel[m] = k
			k++
		}
		assign[u] = relabel[m]
	}

	return assign, k
}
