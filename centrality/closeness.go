package centrality

import (
	"context"

	"github.com/katalvlaran/odgraph/bfs"
	"github.com/katalvlaran/odgraph/core"
	"github.com/katalvlaran/odgraph/dijkstra"
	"golang.org/x/sync/errgroup"
)

// Closeness returns, for every vertex v, reached(v) / Σ d(v,u) over the
// vertices u reachable from v along out-edges. A vertex that reaches nothing
// scores 0.
//
// Distances are hop counts by default. With WithWeightAttribute they are
// Dijkstra distances using the weight (or 1/w with WithInverseWeights) as
// cost; edges whose weight is zero or missing are not traversable.
//
// Implementation:
//   - Stage 1: Snapshot g into an immutable core.View.
//   - Stage 2: Split source indexes into Workers contiguous ranges; each
//     worker owns a scratch buffer and writes only its own output slots.
//   - Stage 3: Convert the slot slice into a map keyed by vertex ID.
//
// Complexity: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted.
func Closeness(g *core.Graph, opts ...Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	view := g.Snapshot(o.WeightAttribute)
	slots := make([]float64, view.Len())
	if err = closenessSlots(o.Ctx, view, o, slots); err != nil {
		return nil, err
	}

	return toMap(view, slots), nil
}

// closenessSlots fills slots[i] with the closeness of vertex index i.
func closenessSlots(ctx context.Context, view *core.View, o Options, slots []float64) error {
	n := view.Len()
	if n == 0 {
		return nil
	}
	workers := o.Workers
	if workers > n {
		workers = n
	}

	grp, gctx := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		grp.Go(func() error {
			return closenessRange(gctx, view, o, slots, lo, hi)
		})
	}

	return grp.Wait()
}

// closenessRange computes slots[lo:hi].
func closenessRange(ctx context.Context, view *core.View, o Options, slots []float64, lo, hi int) error {
	if o.WeightAttribute == "" {
		var s bfs.Scratch
		for src := lo; src < hi; src++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			reached, sum := bfs.Distances(view, src, &s)
			if sum > 0 {
				slots[src] = float64(reached) / float64(sum)
			}
		}

		return nil
	}

	cost := dijkstra.CostFunc(dijkstra.DirectCost)
	if o.InverseWeights {
		cost = dijkstra.InverseCost
	}
	var s dijkstra.Scratch
	for src := lo; src < hi; src++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		reached, sum := dijkstra.Distances(view, src, cost, &s)
		if sum > 0 {
			slots[src] = float64(reached) / sum
		}
	}

	return nil
}

// toMap converts index-addressed slots into an ID-keyed map.
func toMap(view *core.View, slots []float64) map[string]float64 {
	out := make(map[string]float64, len(slots))
	for i, s := range slots {
		out[view.ID(i)] = s
	}

	return out
}
