package community

import (
	"context"
	"math/rand"

	"go.uber.org/zap"
)

// maxSweeps bounds the local-moving passes over one network level.
const maxSweeps = 128

// searcher runs one trial: local moving, aggregation, fine-tuning.
type searcher struct {
	ctx       context.Context
	log       *zap.Logger
	rng       *rand.Rand // nil keeps index order
	trial     int
	maxLevels int
	nodeTerm  float64
}

// trialResult is the partition one trial settled on.
type trialResult struct {
	assign     []int // original node → contiguous module
	modules    int
	codelength float64
	levels     int
}

// run searches base and returns the final partition of its nodes.
//
// Implementation:
//   - Stage 1: local moving on the current level; stop if nothing merged.
//   - Stage 2: aggregate modules into super-nodes and repeat, up to maxLevels.
//   - Stage 3: fine-tune the original nodes starting from the final partition.
func (s *searcher) run(base *network) (*trialResult, error) {
	nodeOf := make([]int, base.size())
	for i := range nodeOf {
		nodeOf[i] = i
	}

	net := base
	levels := 0
	for levels < s.maxLevels {
		p := newPartition(net, nil, s.nodeTerm)
		if err := s.localMove(p); err != nil {
			return nil, err
		}
		assign, k := p.contiguous()
		if k == net.size() {
			break
		}
		levels++
		for i, m := range nodeOf {
			nodeOf[i] = assign[m]
		}
		s.log.Debug("level aggregated",
			zap.Int("trial", s.trial),
			zap.Int("level", levels),
			zap.Int("modules", k),
			zap.Float64("codelength", p.codelength()))
		if k == 1 {
			break
		}
		net = net.aggregate(assign, k)
	}

	p := newPartition(base, nodeOf, s.nodeTerm)
	if err := s.localMove(p); err != nil {
		return nil, err
	}
	assign, k := p.contiguous()

	return &trialResult{assign: assign, modules: k, codelength: p.codelength(), levels: levels}, nil
}

// localMove sweeps the nodes of p, moving each into the neighbouring (or a
// fresh) module with the largest codelength decrease, until a sweep makes
// no move.
func (s *searcher) localMove(p *partition) error {
	n := p.net.size()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if s.rng != nil {
		s.rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}

	for sweep := 0; sweep < maxSweeps; sweep++ {
		if err := s.ctx.Err(); err != nil {
			return err
		}
		moved := 0
		for _, u := range order {
			if p.moveBest(u) {
				moved++
			}
		}
		if moved == 0 {
			break
		}
	}

	return nil
}

// moveBest evaluates every candidate module for u and applies the best
// strictly improving move. Ties keep the first candidate seen.
func (p *partition) moveBest(u int) bool {
	old := p.module[u]
	for _, l := range p.net.out[u] {
		p.touch(p.module[l.to])
		p.outTo[p.module[l.to]] += l.flow
	}
	for _, l := range p.net.in[u] {
		p.touch(p.module[l.to])
		p.inFrom[p.module[l.to]] += l.flow
	}
	outOld, inOld := p.outTo[old], p.inFrom[old]

	best, bestTo := -minImprovement, -1
	var bestTerms moveTerms
	for _, m := range p.touched {
		if m == old {
			continue
		}
		t := p.terms(u, old, m, outOld, inOld, p.outTo[m], p.inFrom[m])
		if d := p.delta(old, m, t); d < best {
			best, bestTo, bestTerms = d, m, t
		}
	}
	if p.members[old] > 1 && len(p.empty) > 0 {
		m := p.empty[len(p.empty)-1]
		t := p.terms(u, old, m, outOld, inOld, 0, 0)
		if d := p.delta(old, m, t); d < best {
			bestTo, bestTerms = m, t
		}
	}

	for _, m := range p.touched {
		p.outTo[m], p.inFrom[m], p.mark[m] = 0, 0, false
	}
	p.touched = p.touched[:0]

	if bestTo < 0 {
		return false
	}
	p.apply(u, old, bestTo, bestTerms)

	return true
}

func (p *partition) touch(m int) {
	if !p.mark[m] {
		p.mark[m] = true
		p.touched = append(p.touched, m)
	}
}
