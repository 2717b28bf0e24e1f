// Package prune defines options, results and errors for threshold pruning.
package prune

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/odgraph/core"
	"go.uber.org/zap"
)

// Defaults.
const (
	DefaultWeightAttribute = "all"
	DefaultMinDegree       = 5
	DefaultStartThreshold  = 1
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("prune: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("prune: invalid option supplied")

	// ErrPruningInfeasible is matched by *PruningInfeasibleError.
	ErrPruningInfeasible = errors.New("prune: no threshold satisfies the degree floor")
)

// PruningInfeasibleError reports that the threshold loop emptied the graph
// (or hit MaxThreshold) before every remaining vertex reached MinDegree.
type PruningInfeasibleError struct {
	// Threshold is the threshold at which the loop gave up.
	Threshold int

	// MinDegree is the configured floor.
	MinDegree int

	// Reason is "graph emptied" or "threshold cap reached".
	Reason string
}

// Error implements the error interface.
func (e *PruningInfeasibleError) Error() string {
	return fmt.Sprintf("prune: infeasible at threshold %d with degree floor %d: %s", e.Threshold, e.MinDegree, e.Reason)
}

// Is matches ErrPruningInfeasible.
func (e *PruningInfeasibleError) Is(target error) bool { return target == ErrPruningInfeasible }

// Report is the outcome of a successful Prune.
type Report struct {
	// FinalThreshold is the threshold t whose working graph was returned.
	FinalThreshold int

	// Iterations counts the thresholds actually evaluated.
	Iterations int

	// MinDegree is the smallest in+out degree in Graph.
	MinDegree int

	// VerticesRemoved and EdgesRemoved are relative to the input graph.
	VerticesRemoved int
	EdgesRemoved    int

	// RemovedVertices lists dropped vertex IDs in input order.
	RemovedVertices []string

	// Graph is the pruned working graph; the input graph is untouched.
	Graph *core.Graph
}

// Option configures Prune via functional arguments.
type Option func(*Options)

// Options holds the pruning parameters.
type Options struct {
	Ctx             context.Context
	WeightAttribute string
	MinDegree       int
	StartThreshold  int
	MaxThreshold    int // 0 = unbounded
	Logger          *zap.Logger

	err error
}

// DefaultOptions returns weight "all", floor 5, start 1, no cap, no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		WeightAttribute: DefaultWeightAttribute,
		MinDegree:       DefaultMinDegree,
		StartThreshold:  DefaultStartThreshold,
		Logger:          zap.NewNop(),
	}
}

func (o *Options) violation(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithContext sets a custom context for cancellation between thresholds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeightAttribute selects the weight compared against the threshold.
func WithWeightAttribute(name string) Option {
	return func(o *Options) {
		if name == "" {
			o.violation("empty weight attribute")
			return
		}
		o.WeightAttribute = name
	}
}

// WithMinDegree sets the degree floor (≥ 1).
func WithMinDegree(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.violation("MinDegree must be ≥ 1 (%d)", d)
			return
		}
		o.MinDegree = d
	}
}

// WithStartThreshold sets the first threshold tried (≥ 0).
func WithStartThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.violation("StartThreshold must be ≥ 0 (%d)", t)
			return
		}
		o.StartThreshold = t
	}
}

// WithMaxThreshold caps the loop; 0 disables the cap.
func WithMaxThreshold(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.violation("MaxThreshold must be ≥ 0 (%d)", t)
			return
		}
		o.MaxThreshold = t
	}
}

// WithLogger sets the logger for per-threshold progress.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.violation("nil logger")
			return
		}
		o.Logger = l
	}
}
