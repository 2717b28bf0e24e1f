// Package centrality defines options, result types and error definitions
// for per-vertex importance measures over a core.Graph.
package centrality

import (
	"context"
	"errors"
	"fmt"
)

// Measure names used as keys of Scores.
const (
	MeasureDegree      = "degree"
	MeasureCloseness   = "closeness"
	MeasureEigenvector = "eigenvector"
)

// Defaults for the power iteration.
const (
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 1000
)

// Sentinel errors.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrNonConvergence is matched by *NonConvergenceWarning.
	ErrNonConvergence = errors.New("centrality: power iteration did not converge")

	// ErrUnknownMeasure is returned by Compute for a measure name it does not know.
	ErrUnknownMeasure = errors.New("centrality: unknown measure")
)

// NonConvergenceWarning reports that eigenvector centrality hit the
// iteration cap in at least one component. The scores returned alongside
// it are the best estimate reached.
type NonConvergenceWarning struct {
	// Iterations is the cap that was reached.
	Iterations int

	// Residual is the largest L2 change between the last two iterates
	// across the components that did not converge.
	Residual float64

	// Components counts the weakly connected components that did not converge.
	Components int
}

// Error implements the error interface.
func (w *NonConvergenceWarning) Error() string {
	return fmt.Sprintf("centrality: eigenvector did not converge in %d iterations (%d component(s), residual %.3g)",
		w.Iterations, w.Components, w.Residual)
}

// Is matches ErrNonConvergence.
func (w *NonConvergenceWarning) Is(target error) bool { return target == ErrNonConvergence }

// Scores maps measure name → vertex ID → score.
type Scores map[string]map[string]float64

// Of returns the score of id under measure (0 when absent).
func (s Scores) Of(measure, id string) float64 { return s[measure][id] }

// VertexScores maps vertex ID → measure name → score.
type VertexScores map[string]map[string]float64

// ByVertex regroups s per vertex. A vertex appears once it has a score under
// any measure; measures it lacks are omitted from its inner map.
func (s Scores) ByVertex() VertexScores {
	out := make(VertexScores)
	for measure, byID := range s {
		for id, score := range byID {
			m, ok := out[id]
			if !ok {
				m = make(map[string]float64, len(s))
				out[id] = m
			}
			m[measure] = score
		}
	}

	return out
}

// Option configures centrality computations via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// computation is invoked.
type Option func(*Options)

// Options holds the parameters shared by Closeness, Eigenvector and Compute.
type Options struct {
	// Ctx allows cancellation; checked between sources and between iterations.
	Ctx context.Context

	// WeightAttribute selects the edge weight; empty means unweighted.
	WeightAttribute string

	// InverseWeights makes closeness use 1/w as distance.
	InverseWeights bool

	// Workers is the number of goroutines for closeness (1 = sequential).
	Workers int

	// Directed makes eigenvector centrality use in-links only.
	Directed bool

	// Tolerance bounds the L2 change between iterates for convergence.
	Tolerance float64

	// MaxIterations caps the power iteration.
	MaxIterations int

	// ScaleToMax divides eigenvector scores by their maximum.
	ScaleToMax bool

	// Measures selects what Compute runs; empty means all three.
	Measures []string

	err error
}

// DefaultOptions returns Options with a background context, unweighted
// sequential closeness, symmetrised eigenvector, tolerance 1e-6 and
// 1000 iterations.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Workers:       1,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

func (o *Options) violation(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeightAttribute makes closeness and eigenvector use the named weight.
func WithWeightAttribute(name string) Option {
	return func(o *Options) {
		o.WeightAttribute = name
	}
}

// WithInverseWeights makes weighted closeness treat strong flows as short
// distances (cost = 1/w). Has no effect without WithWeightAttribute.
func WithInverseWeights() Option {
	return func(o *Options) {
		o.InverseWeights = true
	}
}

// WithWorkers runs closeness searches on n goroutines.
//
//	n ≥ 1: use n workers
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("Workers must be ≥ 1 (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithDirected makes eigenvector centrality follow in-links instead of the
// symmetrised adjacency.
func WithDirected() Option {
	return func(o *Options) {
		o.Directed = true
	}
}

// WithTolerance sets the convergence tolerance (> 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) {
			o.violation("Tolerance must be > 0 (%v)", tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations caps the power iteration (≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("MaxIterations must be ≥ 1 (%d)", n)
			return
		}
		o.MaxIterations = n
	}
}

// WithScaleToMax rescales eigenvector scores so the largest is 1.
func WithScaleToMax() Option {
	return func(o *Options) {
		o.ScaleToMax = true
	}
}

// WithMeasures restricts Compute to the named measures.
func WithMeasures(names ...string) Option {
	return func(o *Options) {
		for _, n := range names {
			switch n {
			case MeasureDegree, MeasureCloseness, MeasureEigenvector:
			default:
				o.err = fmt.Errorf("%w: %q", ErrUnknownMeasure, n)
				return
			}
		}
		o.Measures = append([]string(nil), names...)
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
