package community_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/community"
	"github.com/katalvlaran/odgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// cliques builds k disjoint bidirectional cliques of size n. Vertex IDs are
// "c<clique>v<member>"; extra isolated vertices are appended.
func cliques(t testing.TB, k, n int, bridge bool, isolated ...string) *core.Graph {
	t.Helper()
	var flows []builder.FlowRecord
	id := func(c, v int) string { return fmt.Sprintf("c%dv%d", c, v) }
	for c := 0; c < k; c++ {
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if a != b {
					flows = append(flows, builder.FlowRecord{
						Source: id(c, a), Destination: id(c, b),
						Weights: map[string]float64{"all": 1},
					})
				}
			}
		}
	}
	if bridge {
		flows = append(flows,
			builder.FlowRecord{Source: id(0, n-1), Destination: id(1, 0), Weights: map[string]float64{"all": 1}},
			builder.FlowRecord{Source: id(1, 0), Destination: id(0, n-1), Weights: map[string]float64{"all": 1}},
		)
	}
	var records []builder.VertexRecord
	for _, iso := range isolated {
		records = append(records, builder.VertexRecord{ID: iso})
	}
	g, err := builder.Build(flows, records)
	require.NoError(t, err)

	return g
}

// assertSplit checks that every clique shares one label and cliques differ.
func assertSplit(t *testing.T, res *community.Result, k, n int) {
	t.Helper()
	seen := make(map[int]bool)
	for c := 0; c < k; c++ {
		label := res.Labels[fmt.Sprintf("c%dv0", c)]
		for v := 1; v < n; v++ {
			assert.Equal(t, label, res.Labels[fmt.Sprintf("c%dv%d", c, v)], "clique %d member %d", c, v)
		}
		assert.False(t, seen[label], "clique %d shares label %d", c, label)
		seen[label] = true
	}
}

func TestDetect_DisjointCliques(t *testing.T) {
	g := cliques(t, 2, 4, false)

	res, err := community.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Modules)
	assertSplit(t, res, 2, 4)
	assert.Equal(t, 0, res.Labels["c0v0"])
	assert.Equal(t, 1, res.Labels["c1v0"])

	// Two closed modules of equal flow: L = 1 + H(p) - 2 = 2 bits of 3.
	assert.InDelta(t, 3.0, res.OneLevelCodelength, 1e-9)
	assert.InDelta(t, 2.0, res.Codelength, 1e-9)

	require.Len(t, res.Communities, 2)
	for _, m := range res.Communities {
		assert.Len(t, m.Members, 4)
		assert.InDelta(t, 0.5, m.Flow, 1e-9)
		assert.InDelta(t, 0.0, m.Exit, 1e-12)
	}
}

func TestDetect_BridgedCliques(t *testing.T) {
	g := cliques(t, 2, 5, true)

	res, err := community.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Modules)
	assertSplit(t, res, 2, 5)
	assert.Less(t, res.Codelength, res.OneLevelCodelength)
	assert.Greater(t, res.Communities[0].Exit, 0.0)
}

func TestDetect_IsolatedVertexIsSingleton(t *testing.T) {
	g := cliques(t, 2, 4, false, "lonely")

	res, err := community.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Modules)
	assert.Equal(t, 2, res.Labels["lonely"])
	assert.Equal(t, []string{"lonely"}, res.Communities[2].Members)
	assertSplit(t, res, 2, 4)
}

func TestDetect_LabelsContiguous(t *testing.T) {
	flows, err := builder.RandomFlows(30, 0.15, builder.WithSeed(7))
	require.NoError(t, err)
	g, err := builder.Build(flows, nil)
	require.NoError(t, err)
	if g.EdgeCount() == 0 {
		t.Skip("random fixture produced no edges")
	}

	res, err := community.Detect(g)
	require.NoError(t, err)
	assert.Len(t, res.Labels, g.VertexCount())

	// First appearance in vertex order numbers the labels.
	next := 0
	for _, id := range g.VertexIDs() {
		l := res.Labels[id]
		require.LessOrEqual(t, l, next)
		if l == next {
			next++
		}
	}
	assert.Equal(t, res.Modules, next)
	assert.Len(t, res.Communities, res.Modules)
}

func TestDetect_Deterministic(t *testing.T) {
	g := cliques(t, 3, 4, true)

	a, err := community.Detect(g)
	require.NoError(t, err)
	b, err := community.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Codelength, b.Codelength)

	s1, err := community.Detect(g, community.WithSeed(42), community.WithTrials(3))
	require.NoError(t, err)
	s2, err := community.Detect(g, community.WithSeed(42), community.WithTrials(3))
	require.NoError(t, err)
	assert.Equal(t, s1.Labels, s2.Labels)
	assert.Equal(t, s1.Codelength, s2.Codelength)
}

func TestDetect_Trials(t *testing.T) {
	g := cliques(t, 2, 4, false)

	res, err := community.Detect(g, community.WithTrials(4), community.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Modules)
	assertSplit(t, res, 2, 4)
	assert.InDelta(t, 2.0, res.Codelength, 1e-9)
}

func TestDetect_WeightAttribute(t *testing.T) {
	g, err := builder.Build([]builder.FlowRecord{
		{Source: "A", Destination: "B", Weights: map[string]float64{"bus": 5}},
		{Source: "B", Destination: "A", Weights: map[string]float64{"bus": 5}},
		{Source: "C", Destination: "D", Weights: map[string]float64{"car": 5}},
	}, nil)
	require.NoError(t, err)

	res, err := community.Detect(g, community.WithWeightAttribute("bus"))
	require.NoError(t, err)
	assert.Equal(t, res.Labels["A"], res.Labels["B"])
	assert.NotEqual(t, res.Labels["C"], res.Labels["D"], "edges without the weight carry no flow")

	_, err = community.Detect(g, community.WithWeightAttribute("train"))
	assert.ErrorIs(t, err, community.ErrEmptyGraph)
}

func TestDetect_Errors(t *testing.T) {
	_, err := community.Detect(nil)
	assert.ErrorIs(t, err, community.ErrGraphNil)

	g, err := builder.Build(nil, []builder.VertexRecord{{ID: "A"}, {ID: "B"}})
	require.NoError(t, err)
	_, err = community.Detect(g)
	assert.ErrorIs(t, err, community.ErrEmptyGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = community.Detect(cliques(t, 2, 4, false), community.WithContext(ctx))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDetect_OptionViolations(t *testing.T) {
	g := cliques(t, 2, 3, false)
	cases := []struct {
		name string
		opt  community.Option
	}{
		{"teleportation one", community.WithTeleportation(1)},
		{"teleportation negative", community.WithTeleportation(-0.1)},
		{"zero levels", community.WithMaxLevels(0)},
		{"zero trials", community.WithTrials(0)},
		{"nil logger", community.WithLogger(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := community.Detect(g, tc.opt)
			assert.ErrorIs(t, err, community.ErrOptionViolation)
		})
	}
}

func TestDetect_Logs(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	g := cliques(t, 2, 4, false)

	_, err := community.Detect(g, community.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)
	assert.NotZero(t, logs.FilterMessage("level aggregated").Len())
	done := logs.FilterMessage("communities detected").All()
	require.Len(t, done, 1)
	assert.Equal(t, int64(2), done[0].ContextMap()["modules"])
}

func TestModularity(t *testing.T) {
	g := cliques(t, 2, 4, false)

	split := make(map[string]int)
	one := make(map[string]int)
	for _, id := range g.VertexIDs() {
		if id[1] == '1' {
			split[id] = 1
		}
		one[id] = 0
		if id[1] == '0' {
			split[id] = 0
		}
	}
	assert.InDelta(t, 0.5, community.Modularity(g, split, ""), 1e-12)
	assert.InDelta(t, 0.0, community.Modularity(g, one, "all"), 1e-12)

	res, err := community.Detect(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, community.Modularity(g, res.Labels, ""), 1e-12)

	assert.Zero(t, community.Modularity(nil, nil, ""))
	empty, err := builder.Build(nil, []builder.VertexRecord{{ID: "A"}})
	require.NoError(t, err)
	assert.Zero(t, community.Modularity(empty, nil, ""))
}
