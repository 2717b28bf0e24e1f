package config

import (
	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/centrality"
	"github.com/katalvlaran/odgraph/community"
	"github.com/katalvlaran/odgraph/prune"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuilderOptions converts the graph section. The aggregation name has
// already been validated, so parsing cannot fail.
func (c Config) BuilderOptions() []builder.Option {
	agg, _ := builder.ParseAggregation(c.Graph.Aggregation)
	opts := []builder.Option{builder.WithAggregation(agg)}
	if c.Graph.StrictAttachment {
		opts = append(opts, builder.WithStrictAttachment())
	}
	if c.Graph.AllowLoops {
		opts = append(opts, builder.WithLoops())
	}

	return opts
}

// CentralityOptions converts the centrality section.
func (c Config) CentralityOptions() []centrality.Option {
	cc := c.Centrality
	opts := []centrality.Option{
		centrality.WithWorkers(cc.Workers),
		centrality.WithTolerance(cc.Tolerance),
		centrality.WithMaxIterations(cc.MaxIterations),
	}
	if len(cc.Measures) > 0 {
		opts = append(opts, centrality.WithMeasures(cc.Measures...))
	}
	if cc.WeightAttribute != "" {
		opts = append(opts, centrality.WithWeightAttribute(cc.WeightAttribute))
	}
	if cc.InverseWeights {
		opts = append(opts, centrality.WithInverseWeights())
	}
	if cc.Directed {
		opts = append(opts, centrality.WithDirected())
	}
	if cc.ScaleToMax {
		opts = append(opts, centrality.WithScaleToMax())
	}

	return opts
}

// PruneOptions converts the prune section.
func (c Config) PruneOptions() []prune.Option {
	return []prune.Option{
		prune.WithWeightAttribute(c.Prune.WeightAttribute),
		prune.WithMinDegree(c.Prune.MinDegree),
		prune.WithStartThreshold(c.Prune.StartThreshold),
		prune.WithMaxThreshold(c.Prune.MaxThreshold),
	}
}

// CommunityOptions converts the community section.
func (c Config) CommunityOptions() []community.Option {
	cc := c.Community
	opts := []community.Option{
		community.WithWeightAttribute(cc.WeightAttribute),
		community.WithTeleportation(cc.Teleportation),
		community.WithMaxLevels(cc.MaxLevels),
		community.WithTrials(cc.Trials),
	}
	if cc.Seed != nil {
		opts = append(opts, community.WithSeed(*cc.Seed))
	}

	return opts
}

// Logger builds a zap logger from the logging section.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
