// SPDX-License-Identifier: MIT
//
// File: analysis.go
// Role: End-to-end pipeline: build → (centrality ‖ prune → community) → join.
// Contract:
//   - The built graph is shared read-only by both branches; pruning works on
//     its own copy.
//   - A NonConvergenceWarning is reported in Report.Warnings, never as a
//     run failure.
// Concurrency:
//   - The two branches run on an errgroup; the first error cancels the other.

package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/centrality"
	"github.com/katalvlaran/odgraph/community"
	"github.com/katalvlaran/odgraph/config"
	"github.com/katalvlaran/odgraph/core"
	"github.com/katalvlaran/odgraph/join"
	"github.com/katalvlaran/odgraph/metrics"
	"github.com/katalvlaran/odgraph/prune"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Input is the tabular data of one run.
type Input struct {
	Flows    []builder.FlowRecord
	Vertices []builder.VertexRecord
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the run logger; every entry carries the run_id field.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRecorder reports stage durations and outcomes to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(r *runner) {
		r.rec = rec
	}
}

// runner carries the per-run state shared by the stages.
type runner struct {
	cfg config.Config
	log *zap.Logger
	rec *metrics.Recorder
}

// Run executes the full analysis of in under cfg.
//
// Implementation:
//   - Stage 1: Build the graph from flows and vertex records.
//   - Stage 2: Concurrently compute centrality on the built graph and prune
//     it, then detect communities on the pruned graph.
//   - Stage 3: Join scores and labels onto the vertex records.
//
// Errors:
//   - config.ErrInvalidConfig if cfg does not validate.
//   - construction errors from builder.Build.
//   - *prune.PruningInfeasibleError, community.ErrEmptyGraph and ctx errors
//     from the stages, wrapped with the stage name.
//   - join.ErrAttributeConflict when a vertex record already carries a
//     result key.
func Run(ctx context.Context, in Input, cfg config.Config, opts ...Option) (rep *Report, err error) {
	r := &runner{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	defer func() { r.rec.RunFinished(err) }()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	rep = &Report{RunID: uuid.NewString(), StartedAt: time.Now().UTC()}
	r.log = r.log.With(zap.String("run_id", rep.RunID))
	r.log.Info("analysis started",
		zap.Int("flows", len(in.Flows)),
		zap.Int("vertex_records", len(in.Vertices)))

	g, err := r.build(in)
	if err != nil {
		return nil, err
	}
	rep.Graph = g.Stats()

	var (
		scores  centrality.Scores
		pruned  *prune.Report
		detect  *community.Result
		warning error
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		scores, err = r.centrality(gctx, g)
		if errors.Is(err, centrality.ErrNonConvergence) {
			warning = err
			return nil
		}
		return err
	})
	eg.Go(func() error {
		var err error
		if pruned, err = r.prune(gctx, g); err != nil {
			return err
		}
		detect, err = r.community(gctx, pruned.Graph)
		return err
	})
	if err = eg.Wait(); err != nil {
		r.log.Error("analysis failed", zap.Error(err))
		return nil, err
	}
	if warning != nil {
		rep.Warnings = append(rep.Warnings, warning.Error())
	}

	start := time.Now()
	records := make([]builder.VertexRecord, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		records = append(records, builder.VertexRecord{ID: v.ID, Attributes: v.Attributes})
	}
	if rep.Vertices, err = join.Records(records, scores, detect.Labels); err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}
	r.rec.ObserveStage(metrics.StageJoin, time.Since(start))

	rep.Scores = scores.ByVertex()
	rep.Labels = detect.Labels
	rep.Pruning = summarizePrune(pruned)
	rep.Communities = summarizeCommunities(detect, community.Modularity(pruned.Graph, detect.Labels, cfg.Community.WeightAttribute))
	rep.PrunedGraph = pruned.Graph
	rep.Duration = time.Since(rep.StartedAt)

	r.log.Info("analysis finished",
		zap.Int("vertices", rep.Graph.VertexCount),
		zap.Int("final_threshold", rep.Pruning.FinalThreshold),
		zap.Int("modules", rep.Communities.Modules),
		zap.Duration("duration", rep.Duration))

	return rep, nil
}

func (r *runner) build(in Input) (*core.Graph, error) {
	start := time.Now()
	g, err := builder.Build(in.Flows, in.Vertices, append(r.cfg.BuilderOptions(), builder.WithLogger(r.log))...)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	r.rec.ObserveStage(metrics.StageBuild, time.Since(start))
	r.rec.GraphSize(metrics.GraphBuilt, g.VertexCount(), g.EdgeCount())

	return g, nil
}

// centrality passes a *NonConvergenceWarning through unwrapped, next to
// complete scores.
func (r *runner) centrality(ctx context.Context, g *core.Graph) (centrality.Scores, error) {
	start := time.Now()
	scores, err := centrality.Compute(g, append(r.cfg.CentralityOptions(), centrality.WithContext(ctx))...)
	if err != nil && !errors.Is(err, centrality.ErrNonConvergence) {
		return nil, fmt.Errorf("centrality: %w", err)
	}
	if err != nil {
		r.log.Warn("eigenvector centrality did not converge", zap.Error(err))
		r.rec.NonConvergence()
	}
	r.rec.ObserveStage(metrics.StageCentrality, time.Since(start))

	return scores, err
}

func (r *runner) prune(ctx context.Context, g *core.Graph) (*prune.Report, error) {
	start := time.Now()
	rep, err := prune.Prune(g, append(r.cfg.PruneOptions(), prune.WithContext(ctx), prune.WithLogger(r.log))...)
	if err != nil {
		return nil, fmt.Errorf("prune: %w", err)
	}
	r.rec.ObserveStage(metrics.StagePrune, time.Since(start))
	r.rec.GraphSize(metrics.GraphPruned, rep.Graph.VertexCount(), rep.Graph.EdgeCount())
	r.rec.Pruned(rep.FinalThreshold, rep.Iterations)

	return rep, nil
}

func (r *runner) community(ctx context.Context, g *core.Graph) (*community.Result, error) {
	start := time.Now()
	res, err := community.Detect(g, append(r.cfg.CommunityOptions(), community.WithContext(ctx), community.WithLogger(r.log))...)
	if err != nil {
		return nil, fmt.Errorf("community: %w", err)
	}
	r.rec.ObserveStage(metrics.StageCommunity, time.Since(start))
	r.rec.Communities(res.Modules, res.Codelength)

	return res, nil
}
