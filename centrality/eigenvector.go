package centrality

import (
	"math"

	"github.com/katalvlaran/odgraph/core"
)

// Eigenvector returns eigenvector centrality by power iteration.
//
// Each weakly connected component is solved on its own and normalised to
// unit L2 norm, so a small component is not crushed by a large one. The
// iteration runs on A+I instead of A: the shift leaves the eigenvectors
// unchanged and keeps bipartite components (two-way flows between two
// groups) from oscillating.
//
// Adjacency:
//   - default: symmetrised, a_uv = w(u→v) + w(v→u)
//   - WithDirected(): in-links, x_v ← x_v + Σ_{u→v} w·x_u
//   - weights are 1 per edge unless WithWeightAttribute is set; parallel
//     edges add up.
//
// A component without edges (or with only zero weights) scores 0.
// When a component has not converged after MaxIterations, the best estimate
// is returned together with a *NonConvergenceWarning.
//
// Complexity: O(k·(V+E)) for k iterations.
func Eigenvector(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	view := g.Snapshot(o.WeightAttribute)
	it := &iterator{view: view, opts: o, x: make([]float64, view.Len()), y: make([]float64, view.Len())}
	var warn *NonConvergenceWarning
	for _, comp := range view.WeakComponents() {
		converged, residual, err := it.solve(comp)
		if err != nil {
			return nil, err
		}
		if !converged {
			if warn == nil {
				warn = &NonConvergenceWarning{Iterations: o.MaxIterations}
			}
			warn.Components++
			warn.Residual = math.Max(warn.Residual, residual)
		}
	}

	if o.ScaleToMax {
		var max float64
		for _, v := range it.x {
			max = math.Max(max, v)
		}
		if max > 0 {
			for i := range it.x {
				it.x[i] /= max
			}
		}
	}

	scores := toMap(view, it.x)
	if warn != nil {
		return scores, warn
	}

	return scores, nil
}

// iterator holds the power-iteration buffers shared by all components.
type iterator struct {
	view *core.View
	opts Options
	x, y []float64
}

// solve runs the power iteration on one component, leaving the result in
// it.x at the component's indexes.
func (it *iterator) solve(comp []int) (bool, float64, error) {
	if !it.hasWeight(comp) {
		for _, i := range comp {
			it.x[i] = 0
		}

		return true, 0, nil
	}

	start := 1 / math.Sqrt(float64(len(comp)))
	for _, i := range comp {
		it.x[i] = start
	}

	var residual float64
	for iter := 0; iter < it.opts.MaxIterations; iter++ {
		if err := it.opts.Ctx.Err(); err != nil {
			return false, 0, err
		}

		var norm float64
		for _, v := range comp {
			s := it.x[v]
			for _, a := range it.view.In(v) {
				s += a.Weight * it.x[a.To]
			}
			if !it.opts.Directed {
				for _, a := range it.view.Out(v) {
					s += a.Weight * it.x[a.To]
				}
			}
			it.y[v] = s
			norm += s * s
		}
		norm = math.Sqrt(norm)

		residual = 0
		for _, v := range comp {
			next := it.y[v] / norm
			d := next - it.x[v]
			residual += d * d
			it.x[v] = next
		}
		residual = math.Sqrt(residual)
		if residual < it.opts.Tolerance {
			return true, residual, nil
		}
	}

	return false, residual, nil
}

// hasWeight reports whether comp contains at least one arc with positive weight.
func (it *iterator) hasWeight(comp []int) bool {
	for _, v := range comp {
		for _, a := range it.view.Out(v) {
			if a.Weight > 0 {
				return true
			}
		}
	}

	return false
}
