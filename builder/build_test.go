package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func flow(src, dst string, w float64) builder.FlowRecord {
	return builder.FlowRecord{Source: src, Destination: dst, Weights: map[string]float64{"flow": w}}
}

func TestBuild_VertexOrderAndAttachment(t *testing.T) {
	flows := []builder.FlowRecord{flow("B", "A", 1), flow("A", "C", 2), flow("C", "B", 3)}
	vertices := []builder.VertexRecord{
		{ID: "A", Attributes: map[string]any{"name": "Alder", "pop": 1200}},
		{ID: "Q", Attributes: map[string]any{"name": "Quarry"}},
	}

	g, err := builder.Build(flows, vertices)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C", "Q"}, g.VertexIDs())
	assert.Equal(t, 3, g.EdgeCount())

	a, err := g.Vertex("A")
	require.NoError(t, err)
	assert.Equal(t, "Alder", a.Attributes["name"])
	assert.Equal(t, 1200, a.Attributes["pop"])

	b, err := g.Vertex("B")
	require.NoError(t, err)
	assert.Empty(t, b.Attributes, "unmatched flow endpoint gets an empty map")

	assert.Equal(t, []string{"Q"}, g.Isolated())
}

func TestBuild_Aggregation(t *testing.T) {
	flows := []builder.FlowRecord{flow("A", "B", 3), flow("A", "B", 4)}

	kept, err := builder.Build(flows, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, kept.EdgeCount())

	summed, err := builder.Build(flows, nil, builder.WithAggregation(builder.SumDuplicates))
	require.NoError(t, err)
	require.Equal(t, 1, summed.EdgeCount())
	assert.Equal(t, 7.0, summed.Edges()[0].Weight("flow"))
}

func TestBuild_SumDuplicatesMergesPerName(t *testing.T) {
	flows := []builder.FlowRecord{
		{Source: "A", Destination: "B", Weights: map[string]float64{"car": 1, "bus": 2}},
		{Source: "B", Destination: "A", Weights: map[string]float64{"car": 5}},
		{Source: "A", Destination: "B", Weights: map[string]float64{"bus": 3, "rail": 1}},
	}

	g, err := builder.Build(flows, nil, builder.WithAggregation(builder.SumDuplicates))
	require.NoError(t, err)
	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].From)
	assert.Equal(t, map[string]float64{"car": 1, "bus": 5, "rail": 1}, edges[0].Weights)
	assert.Equal(t, 5.0, edges[1].Weight("car"))
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name     string
		flows    []builder.FlowRecord
		vertices []builder.VertexRecord
		opts     []builder.Option
		want     error
	}{
		{
			name:     "duplicate vertex record",
			flows:    []builder.FlowRecord{flow("A", "B", 1)},
			vertices: []builder.VertexRecord{{ID: "A"}, {ID: "A"}},
			want:     core.ErrDuplicateVertex,
		},
		{
			name:     "strict attachment",
			flows:    []builder.FlowRecord{flow("A", "B", 1)},
			vertices: []builder.VertexRecord{{ID: "Z"}},
			opts:     []builder.Option{builder.WithStrictAttachment()},
			want:     builder.ErrMissingVertexAttribute,
		},
		{
			name:  "negative weight",
			flows: []builder.FlowRecord{flow("A", "B", -2)},
			want:  core.ErrNegativeWeight,
		},
		{
			name: "negative weight hidden by sum",
			flows: []builder.FlowRecord{
				flow("A", "B", 5), flow("A", "B", -2),
			},
			opts: []builder.Option{builder.WithAggregation(builder.SumDuplicates)},
			want: core.ErrNegativeWeight,
		},
		{
			name:     "unsupported attribute",
			flows:    []builder.FlowRecord{flow("A", "B", 1)},
			vertices: []builder.VertexRecord{{ID: "A", Attributes: map[string]any{"geom": []float64{1, 2}}}},
			want:     builder.ErrUnsupportedAttribute,
		},
		{
			name:  "empty endpoint",
			flows: []builder.FlowRecord{flow("", "B", 1)},
			want:  core.ErrEmptyVertexID,
		},
		{
			name:  "self loop without WithLoops",
			flows: []builder.FlowRecord{flow("A", "A", 1)},
			want:  core.ErrLoopNotAllowed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.flows, tc.vertices, tc.opts...)
			require.Error(t, err)
			assert.Nil(t, g, "no partial graph may escape")
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, core.ErrConstruction)
			var ce *core.ConstructionError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

func TestBuild_StrictAcceptsReferencedRecords(t *testing.T) {
	g, err := builder.Build(
		[]builder.FlowRecord{flow("A", "B", 1)},
		[]builder.VertexRecord{{ID: "B", Attributes: map[string]any{"zone": "east"}}},
		builder.WithStrictAttachment(),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, g.VertexCount())
}

func TestBuild_WithLoops(t *testing.T) {
	g, err := builder.Build([]builder.FlowRecord{flow("A", "A", 4)}, nil, builder.WithLoops())
	require.NoError(t, err)
	assert.True(t, g.Looped())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_Options(t *testing.T) {
	_, err := builder.Build(nil, nil, builder.WithLogger(nil))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.Build(nil, nil, builder.WithAggregation(builder.Aggregation(9)))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	g, err := builder.Build(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
}

func TestBuild_LogsSummary(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	_, err := builder.Build([]builder.FlowRecord{flow("A", "B", 1)}, nil, builder.WithLogger(zap.New(obsCore)))
	require.NoError(t, err)

	entries := logs.FilterMessage("graph built").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["edges"])
}

func TestParseAggregation(t *testing.T) {
	for in, want := range map[string]builder.Aggregation{
		"":                builder.KeepAll,
		"keep-all":        builder.KeepAll,
		"SUM_DUPLICATES":  builder.SumDuplicates,
		" sum-duplicates": builder.SumDuplicates,
	} {
		got, err := builder.ParseAggregation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := builder.ParseAggregation("average")
	assert.ErrorIs(t, err, builder.ErrUnknownAggregation)
	assert.Equal(t, "sum-duplicates", builder.SumDuplicates.String())
}
