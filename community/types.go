// Package community defines options, results and errors for flow-based
// community detection.
package community

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Defaults.
const (
	DefaultTeleportation = 0.15
	DefaultMaxLevels     = 64
	DefaultTrials        = 1
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("community: graph is nil")

	// ErrEmptyGraph is returned when the graph has no edge with positive weight.
	ErrEmptyGraph = errors.New("community: graph has no edges")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("community: invalid option supplied")
)

// Module is one detected community.
type Module struct {
	// Label is the module index in Result.Labels.
	Label int

	// Members lists vertex IDs in graph insertion order.
	Members []string

	// Flow is the stationary visit rate of the module.
	Flow float64

	// Exit is the flow leaving the module per step.
	Exit float64
}

// Result is the outcome of Detect.
type Result struct {
	// Labels maps vertex ID → module label, labels contiguous 0..Modules-1
	// and numbered by first appearance in vertex insertion order.
	Labels map[string]int

	// Modules is the number of distinct labels.
	Modules int

	// Codelength is the two-level map equation of the partition, in bits.
	Codelength float64

	// OneLevelCodelength is the codelength with every vertex in one module,
	// i.e. the entropy of the visit rates.
	OneLevelCodelength float64

	// Levels counts the aggregation levels the best trial went through.
	Levels int

	// Communities lists the modules ordered by label.
	Communities []Module
}

// Option configures Detect via functional arguments.
type Option func(*Options)

// Options holds the detection parameters.
type Options struct {
	Ctx             context.Context
	WeightAttribute string // empty: every edge weighs 1
	Teleportation   float64
	MaxLevels       int
	Trials          int
	Seed            int64
	Seeded          bool
	Logger          *zap.Logger

	err error
}

// DefaultOptions returns unit weights, teleportation 0.15, 64 levels, one
// unshuffled trial and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Teleportation: DefaultTeleportation,
		MaxLevels:     DefaultMaxLevels,
		Trials:        DefaultTrials,
		Logger:        zap.NewNop(),
	}
}

func (o *Options) violation(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithContext sets a custom context, checked between sweeps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWeightAttribute uses the named weight as link weight.
func WithWeightAttribute(name string) Option {
	return func(o *Options) {
		o.WeightAttribute = name
	}
}

// WithTeleportation sets the teleportation probability τ ∈ [0,1).
func WithTeleportation(tau float64) Option {
	return func(o *Options) {
		if !(tau >= 0 && tau < 1) {
			o.violation("Teleportation must be in [0,1) (%v)", tau)
			return
		}
		o.Teleportation = tau
	}
}

// WithMaxLevels caps the number of aggregation levels (≥ 1).
func WithMaxLevels(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("MaxLevels must be ≥ 1 (%d)", n)
			return
		}
		o.MaxLevels = n
	}
}

// WithTrials runs n seeded trials and keeps the shortest codelength (≥ 1).
func WithTrials(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violation("Trials must be ≥ 1 (%d)", n)
			return
		}
		o.Trials = n
	}
}

// WithSeed shuffles the node visiting order with a deterministic RNG.
// Trial k uses seed+k.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithLogger sets the logger for per-level progress.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.violation("nil logger")
			return
		}
		o.Logger = l
	}
}
