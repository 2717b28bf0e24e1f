package prune

import (
	"math"

	"github.com/katalvlaran/odgraph/core"
	"go.uber.org/zap"
)

// Prune raises an integer flow threshold until every vertex that still has
// an edge meets the degree floor.
//
// For t = StartThreshold, …:
//   - rebuild a working graph from the ORIGINAL g keeping edges with
//     weight[attr] ≥ t (a missing weight counts as 0);
//   - drop vertices left without edges;
//   - empty working graph → *PruningInfeasibleError;
//   - every remaining in+out degree ≥ MinDegree → return this graph and t;
//   - otherwise advance t.
//
// Thresholds that cannot change the kept edge set are skipped: after a failed
// t the next candidate is ⌊min kept weight⌋ + 1, which is the first threshold
// that drops an edge. The final t equals that of a step-by-one loop.
//
// Pruning its own output with the same floor stops at the start threshold
// with nothing removed.
//
// Complexity: O(k·(V+E)) for k evaluated thresholds.
func Prune(g *core.Graph, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	p := &pruner{src: g, opts: o, log: o.Logger.With(zap.String("weight", o.WeightAttribute), zap.Int("min_degree", o.MinDegree))}

	return p.loop()
}

// pruner holds the state of one Prune call.
type pruner struct {
	src  *core.Graph
	opts Options
	log  *zap.Logger
}

// loop evaluates thresholds until success, infeasibility or cancellation.
func (p *pruner) loop() (*Report, error) {
	t := p.opts.StartThreshold
	for iter := 1; ; iter++ {
		if err := p.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if p.opts.MaxThreshold > 0 && t > p.opts.MaxThreshold {
			return nil, p.infeasible(t, "threshold cap reached")
		}

		work := p.working(t)
		if work.VertexCount() == 0 {
			return nil, p.infeasible(t, "graph emptied")
		}

		minDeg, minKept := p.inspect(work)
		p.log.Debug("threshold evaluated",
			zap.Int("threshold", t),
			zap.Int("vertices", work.VertexCount()),
			zap.Int("edges", work.EdgeCount()),
			zap.Int("observed_min_degree", minDeg),
		)
		if minDeg >= p.opts.MinDegree {
			return p.report(work, t, iter, minDeg), nil
		}

		skip := math.Floor(minKept) + 1
		if skip >= float64(math.MaxInt) {
			// Every int threshold keeps the lightest edge; stepping on would
			// only end once the graph empties.
			return nil, p.infeasible(t, "graph emptied")
		}
		next := t + 1
		if skip > float64(next) {
			next = int(skip)
		}
		t = next
	}
}

// working builds the graph for threshold t: kept edges, no isolated vertices.
func (p *pruner) working(t int) *core.Graph {
	attr, limit := p.opts.WeightAttribute, float64(t)
	work := p.src.Filter(func(e *core.Edge) bool { return e.Weight(attr) >= limit })
	iso := make(map[string]struct{})
	for _, id := range work.Isolated() {
		iso[id] = struct{}{}
	}
	if len(iso) > 0 {
		work.RemoveVerticesWhere(func(v *core.Vertex) bool {
			_, drop := iso[v.ID]
			return drop
		})
	}

	return work
}

// inspect returns the minimum degree and the minimum kept weight of work.
func (p *pruner) inspect(work *core.Graph) (int, float64) {
	view := work.Snapshot(p.opts.WeightAttribute)
	minDeg := math.MaxInt
	minKept := math.Inf(1)
	for i := 0; i < view.Len(); i++ {
		if d := view.Degree(i); d < minDeg {
			minDeg = d
		}
		for _, a := range view.Out(i) {
			minKept = math.Min(minKept, a.Weight)
		}
	}

	return minDeg, minKept
}

func (p *pruner) infeasible(t int, reason string) error {
	p.log.Info("pruning infeasible", zap.Int("threshold", t), zap.String("reason", reason))

	return &PruningInfeasibleError{Threshold: t, MinDegree: p.opts.MinDegree, Reason: reason}
}

func (p *pruner) report(work *core.Graph, t, iterations, minDeg int) *Report {
	r := &Report{
		FinalThreshold:  t,
		Iterations:      iterations,
		MinDegree:       minDeg,
		VerticesRemoved: p.src.VertexCount() - work.VertexCount(),
		EdgesRemoved:    p.src.EdgeCount() - work.EdgeCount(),
		Graph:           work,
	}
	for _, id := range p.src.VertexIDs() {
		if !work.HasVertex(id) {
			r.RemovedVertices = append(r.RemovedVertices, id)
		}
	}
	p.log.Info("pruning finished",
		zap.Int("threshold", t),
		zap.Int("iterations", iterations),
		zap.Int("vertices_removed", r.VerticesRemoved),
		zap.Int("edges_removed", r.EdgesRemoved),
	)

	return r
}
