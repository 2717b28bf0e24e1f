package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/community"
	"github.com/katalvlaran/odgraph/config"
	"github.com/katalvlaran/odgraph/prune"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "odgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.Prune.MinDegree)
	assert.Equal(t, "all", cfg.Prune.WeightAttribute)
	assert.InDelta(t, 0.15, cfg.Community.Teleportation, 1e-12)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Input, cfg.Input)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
graph:
  aggregation: sum-duplicates
prune:
  min_degree: 2
community:
  trials: 3
  seed: 11
logging:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sum-duplicates", cfg.Graph.Aggregation)
	assert.Equal(t, 2, cfg.Prune.MinDegree)
	assert.Equal(t, "all", cfg.Prune.WeightAttribute, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Community.Trials)
	require.NotNil(t, cfg.Community.Seed)
	assert.Equal(t, int64(11), *cfg.Community.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ODGRAPH_MIN_DEGREE", "3")
	t.Setenv("ODGRAPH_LOG_LEVEL", "WARN")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Prune.MinDegree)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "prune: [not, a, map]"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "community:\n  teleportation: 1.5\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"aggregation", func(c *config.Config) { c.Graph.Aggregation = "average" }, "Aggregation"},
		{"measure", func(c *config.Config) { c.Centrality.Measures = []string{"pagerank"} }, "Measures"},
		{"workers", func(c *config.Config) { c.Centrality.Workers = 0 }, "Workers"},
		{"tolerance", func(c *config.Config) { c.Centrality.Tolerance = 0 }, "Tolerance"},
		{"min degree", func(c *config.Config) { c.Prune.MinDegree = 0 }, "MinDegree"},
		{"prune weight", func(c *config.Config) { c.Prune.WeightAttribute = "" }, "WeightAttribute"},
		{"trials", func(c *config.Config) { c.Community.Trials = 0 }, "Trials"},
		{"same columns", func(c *config.Config) { c.Input.DestinationColumn = c.Input.SourceColumn }, "DestinationColumn"},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "Level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Prune.MinDegree = 7
	data, err := cfg.Marshal()
	require.NoError(t, err)

	loaded, err := config.Load(writeFile(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestOptionConverters(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Aggregation = "sum-duplicates"
	cfg.Prune.MinDegree = 1
	cfg.Community.Trials = 2

	g, err := builder.Build([]builder.FlowRecord{
		{Source: "A", Destination: "B", Weights: map[string]float64{"all": 3}},
		{Source: "A", Destination: "B", Weights: map[string]float64{"all": 4}},
		{Source: "B", Destination: "A", Weights: map[string]float64{"all": 2}},
	}, nil, cfg.BuilderOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	rep, err := prune.Prune(g, cfg.PruneOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.FinalThreshold)

	res, err := community.Detect(g, cfg.CommunityOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Modules)

	assert.NotEmpty(t, cfg.CentralityOptions())

	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, log)
}
