// Package metrics exposes Prometheus collectors for odgraph analysis runs.
//
// A Recorder is created once per registry. Batch runs typically use a
// private prometheus.Registry and write it out with
// prometheus.WriteToTextfile for the node-exporter textfile collector.
//
// All methods are safe on a nil *Recorder, so instrumented code never has to
// check whether metrics are enabled.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "odgraph"

// Stage names used as the "stage" label.
const (
	StageBuild      = "build"
	StageCentrality = "centrality"
	StagePrune      = "prune"
	StageCommunity  = "community"
	StageJoin       = "join"
)

// Graph kinds used as the "graph" label.
const (
	GraphBuilt  = "built"
	GraphPruned = "pruned"
)

// Recorder holds the collectors of one registry.
type Recorder struct {
	// RunsTotal counts finished runs by status (success, error).
	RunsTotal *prometheus.CounterVec

	// StageDuration measures each pipeline stage in seconds.
	StageDuration *prometheus.HistogramVec

	// Vertices and Edges report graph sizes by kind (built, pruned).
	Vertices *prometheus.GaugeVec
	Edges    *prometheus.GaugeVec

	// PruneThreshold is the final threshold of the last run.
	PruneThreshold prometheus.Gauge

	// PruneIterations is the number of thresholds the last run evaluated.
	PruneIterations prometheus.Gauge

	// Modules is the number of communities found by the last run.
	Modules prometheus.Gauge

	// Codelength is the map-equation codelength of the last run, in bits.
	Codelength prometheus.Gauge

	// NonConvergenceTotal counts eigenvector runs that hit the iteration cap.
	NonConvergenceTotal prometheus.Counter
}

// New creates the collectors and registers them with reg. A nil reg
// creates unregistered collectors.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Analysis runs by status.",
		}, []string{"status"}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each analysis stage.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		}, []string{"stage"}),
		Vertices: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Vertex count by graph kind.",
		}, []string{"graph"}),
		Edges: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edge count by graph kind.",
		}, []string{"graph"}),
		PruneThreshold: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "prune",
			Name:      "final_threshold",
			Help:      "Final pruning threshold.",
		}),
		PruneIterations: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "prune",
			Name:      "iterations",
			Help:      "Thresholds evaluated by the pruner.",
		}),
		Modules: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "community",
			Name:      "modules",
			Help:      "Detected communities.",
		}),
		Codelength: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "community",
			Name:      "codelength_bits",
			Help:      "Map-equation codelength of the partition.",
		}),
		NonConvergenceTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "centrality",
			Name:      "nonconvergence_total",
			Help:      "Eigenvector computations that did not converge.",
		}),
	}
}

// ObserveStage records the duration of stage.
func (r *Recorder) ObserveStage(stage string, d time.Duration) {
	if r == nil {
		return
	}
	r.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RunFinished counts a run as success or error.
func (r *Recorder) RunFinished(err error) {
	if r == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	r.RunsTotal.WithLabelValues(status).Inc()
}

// GraphSize reports the size of a graph of the given kind.
func (r *Recorder) GraphSize(kind string, vertices, edges int) {
	if r == nil {
		return
	}
	r.Vertices.WithLabelValues(kind).Set(float64(vertices))
	r.Edges.WithLabelValues(kind).Set(float64(edges))
}

// Pruned reports the pruner outcome.
func (r *Recorder) Pruned(threshold, iterations int) {
	if r == nil {
		return
	}
	r.PruneThreshold.Set(float64(threshold))
	r.PruneIterations.Set(float64(iterations))
}

// Communities reports the detector outcome.
func (r *Recorder) Communities(modules int, codelength float64) {
	if r == nil {
		return
	}
	r.Modules.Set(float64(modules))
	r.Codelength.Set(codelength)
}

// NonConvergence counts one eigenvector non-convergence.
func (r *Recorder) NonConvergence() {
	if r == nil {
		return
	}
	r.NonConvergenceTotal.Inc()
}
