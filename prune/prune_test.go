package prune_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/core"
	"github.com/katalvlaran/odgraph/prune"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func flows(t testing.TB, recs ...builder.FlowRecord) *core.Graph {
	t.Helper()
	g, err := builder.Build(recs, nil)
	require.NoError(t, err)

	return g
}

func f(src, dst string, all float64) builder.FlowRecord {
	return builder.FlowRecord{Source: src, Destination: dst, Weights: map[string]float64{"all": all}}
}

func xyz(t testing.TB) *core.Graph {
	return flows(t, f("X", "Y", 50), f("Y", "X", 10), f("X", "Z", 2))
}

func TestPrune_EndToEnd(t *testing.T) {
	g := xyz(t)

	rep, err := prune.Prune(g, prune.WithMinDegree(1))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.FinalThreshold)
	assert.Equal(t, 3, rep.Graph.EdgeCount())
	assert.Equal(t, 0, rep.VerticesRemoved)

	rep, err = prune.Prune(g, prune.WithMinDegree(2))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.FinalThreshold)
	assert.False(t, rep.Graph.HasEdge("X", "Z"))
	assert.False(t, rep.Graph.HasVertex("Z"))
	assert.Equal(t, 1, rep.EdgesRemoved)
	assert.Equal(t, 1, rep.VerticesRemoved)
	assert.Equal(t, []string{"Z"}, rep.RemovedVertices)
	assert.Equal(t, 2, rep.MinDegree)
	assert.Equal(t, 2, rep.Iterations, "t=2 is skipped")

	// Input untouched.
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasVertex("Z"))
}

func TestPrune_Idempotent(t *testing.T) {
	recs, err := builder.RandomFlows(40, 0.3, builder.WithSeed(5), builder.WithWeightFn(builder.UniformWeightFn(0, 30)))
	require.NoError(t, err)
	g := flows(t, recs...)

	first, err := prune.Prune(g, prune.WithMinDegree(4))
	require.NoError(t, err)

	second, err := prune.Prune(first.Graph, prune.WithMinDegree(4))
	require.NoError(t, err)
	assert.Equal(t, 1, second.FinalThreshold)
	assert.Equal(t, 0, second.VerticesRemoved)
	assert.Equal(t, 0, second.EdgesRemoved)
	assert.Equal(t, first.Graph.VertexIDs(), second.Graph.VertexIDs())
}

func TestPrune_MatchesStepByOne(t *testing.T) {
	// Heavy triangle with two weak pendants: t=1 fails on D, t=4 fails on E.
	g := flows(t,
		f("A", "B", 20), f("B", "C", 20), f("C", "A", 20),
		f("A", "D", 3), f("E", "B", 7),
	)

	rep, err := prune.Prune(g, prune.WithMinDegree(2))
	require.NoError(t, err)
	assert.Equal(t, 8, rep.FinalThreshold)
	assert.Equal(t, 3, rep.Iterations)
	assert.Equal(t, []string{"D", "E"}, rep.RemovedVertices)

	// Every earlier threshold must fail the floor when evaluated on its own.
	for t0 := 1; t0 < rep.FinalThreshold; t0++ {
		single, err := prune.Prune(g, prune.WithMinDegree(2), prune.WithStartThreshold(t0), prune.WithMaxThreshold(t0))
		if err == nil {
			t.Fatalf("threshold %d already satisfies the floor, got final %d", t0, single.FinalThreshold)
		}
		assert.ErrorIs(t, err, prune.ErrPruningInfeasible)
	}
}

func TestPrune_Infeasible(t *testing.T) {
	g := flows(t, f("A", "B", 3), f("B", "C", 9))

	_, err := prune.Prune(g, prune.WithMinDegree(5))
	require.Error(t, err)
	var inf *prune.PruningInfeasibleError
	require.True(t, errors.As(err, &inf))
	assert.Equal(t, "graph emptied", inf.Reason)
	assert.Equal(t, 10, inf.Threshold)
	assert.Equal(t, 5, inf.MinDegree)

	_, err = prune.Prune(g, prune.WithMinDegree(5), prune.WithMaxThreshold(2))
	require.True(t, errors.As(err, &inf))
	assert.Equal(t, "threshold cap reached", inf.Reason)

	empty, err := builder.Build(nil, []builder.VertexRecord{{ID: "lonely"}})
	require.NoError(t, err)
	_, err = prune.Prune(empty, prune.WithMinDegree(1))
	assert.ErrorIs(t, err, prune.ErrPruningInfeasible)
}

func TestPrune_WeightsBeyondIntRange(t *testing.T) {
	g := flows(t, f("X", "Y", 1e19), f("Y", "X", 1e19), f("X", "Z", 1e19))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := prune.Prune(g, prune.WithMinDegree(2), prune.WithContext(ctx))
	require.Error(t, err)
	var inf *prune.PruningInfeasibleError
	require.True(t, errors.As(err, &inf), "got %v", err)
	assert.Equal(t, "graph emptied", inf.Reason)
	assert.Equal(t, 2, inf.MinDegree)
	assert.NoError(t, ctx.Err())
}

func TestPrune_MissingAttributeCountsAsZero(t *testing.T) {
	g := flows(t,
		builder.FlowRecord{Source: "A", Destination: "B", Weights: map[string]float64{"car": 8}},
		f("B", "A", 4),
	)

	rep, err := prune.Prune(g, prune.WithMinDegree(1))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Graph.EdgeCount())
	assert.True(t, rep.Graph.HasEdge("B", "A"))

	rep, err = prune.Prune(g, prune.WithMinDegree(1), prune.WithWeightAttribute("car"))
	require.NoError(t, err)
	assert.True(t, rep.Graph.HasEdge("A", "B"))
}

func TestPrune_Options(t *testing.T) {
	g := xyz(t)
	for name, opt := range map[string]prune.Option{
		"floor":  prune.WithMinDegree(0),
		"start":  prune.WithStartThreshold(-1),
		"cap":    prune.WithMaxThreshold(-3),
		"attr":   prune.WithWeightAttribute(""),
		"logger": prune.WithLogger(nil),
	} {
		_, err := prune.Prune(g, opt)
		assert.ErrorIs(t, err, prune.ErrOptionViolation, name)
	}
	_, err := prune.Prune(nil)
	assert.ErrorIs(t, err, prune.ErrGraphNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = prune.Prune(g, prune.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrune_Logs(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	_, err := prune.Prune(xyz(t), prune.WithMinDegree(2), prune.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("threshold evaluated").Len())
	done := logs.FilterMessage("pruning finished").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(3), done[0].ContextMap()["threshold"])
}
