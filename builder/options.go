// SPDX-License-Identifier: MIT
// Package: odgraph/builder
//
// options.go — functional options for Build and the flow generators.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Invalid option values are recorded and surfaced as ErrOptionViolation
//     by the call that consumes them; nothing panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"go.uber.org/zap"
)

// DefaultWeightName is the weight name emitted by the generators.
const DefaultWeightName = "all"

// Option customizes Build or a generator by mutating a builderConfig.
type Option func(*builderConfig)

// builderConfig aggregates every knob used by Build and the generators.
type builderConfig struct {
	aggregation Aggregation
	strict      bool
	loops       bool
	logger      *zap.Logger

	// generator knobs
	idFn       func(int) string
	rng        *rand.Rand
	weightFn   func(*rand.Rand) float64
	weightName string

	err error
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		aggregation: KeepAll,
		logger:      zap.NewNop(),
		idFn:        strconv.Itoa,
		weightFn:    func(*rand.Rand) float64 { return 1 },
		weightName:  DefaultWeightName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// violation records the first invalid option.
func (c *builderConfig) violation(format string, args ...interface{}) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s", ErrOptionViolation, fmt.Sprintf(format, args...))
	}
}

// WithAggregation selects how flows sharing the same ordered pair are stored.
func WithAggregation(a Aggregation) Option {
	return func(c *builderConfig) {
		if a != KeepAll && a != SumDuplicates {
			c.violation("aggregation %d", int(a))
			return
		}
		c.aggregation = a
	}
}

// WithStrictAttachment makes Build fail with ErrMissingVertexAttribute when
// a VertexRecord has no matching flow endpoint.
func WithStrictAttachment() Option {
	return func(c *builderConfig) {
		c.strict = true
	}
}

// WithLoops lets flows with source == destination through as self-loops.
func WithLoops() Option {
	return func(c *builderConfig) {
		c.loops = true
	}
}

// WithLogger sets the logger used for build summaries.
func WithLogger(l *zap.Logger) Option {
	return func(c *builderConfig) {
		if l == nil {
			c.violation("nil logger")
			return
		}
		c.logger = l
	}
}

// WithIDScheme sets the generator vertex ID scheme: idx -> string.
func WithIDScheme(fn func(int) string) Option {
	return func(c *builderConfig) {
		if fn == nil {
			c.violation("nil ID scheme")
			return
		}
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic generators.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) {
		if r == nil {
			c.violation("nil rand source")
			return
		}
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-flow weight generator. The function receives
// the (possibly nil) RNG.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	return func(c *builderConfig) {
		if fn == nil {
			c.violation("nil weight function")
			return
		}
		c.weightFn = fn
	}
}

// WithWeightName sets the weight name the generators emit (default "all").
func WithWeightName(name string) Option {
	return func(c *builderConfig) {
		if name == "" {
			c.violation("empty weight name")
			return
		}
		c.weightName = name
	}
}

// UniformWeightFn returns a weight generator sampling uniformly in [min, max).
// With a nil RNG it yields min.
func UniformWeightFn(min, max float64) func(*rand.Rand) float64 {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// ExcelColumnIDFn returns the Excel-style column name for idx, e.g. 0→"A",
// 25→"Z", 26→"AA". Negative indexes map to "".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
