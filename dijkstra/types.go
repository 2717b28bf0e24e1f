// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on flow graphs.
//
// Edge cost is derived from one named weight of each edge:
//
//	direct:  cost = w       (larger weight = longer distance)
//	inverse: cost = 1/w     (stronger flow = shorter distance)
//
// Edges whose cost is zero, missing, NaN or infinite are not traversable.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– WeightAttribute:  weight name used for cost (default "all").
//	– InverseWeights:   use 1/w instead of w.
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrOptionViolation wraps every invalid option value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// DefaultWeightAttribute is the weight name used when none is configured.
const DefaultWeightAttribute = "all"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source          string  // The ID of the source vertex
	WeightAttribute string  // Edge weight name used for cost
	InverseWeights  bool    // Cost is 1/w instead of w
	ReturnPath      bool    // Whether to return the predecessor map
	MaxDistance     float64 // Maximum distance to explore

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting vertex ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithWeightAttribute selects the edge weight name used as cost.
// An empty name is ignored.
func WithWeightAttribute(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.WeightAttribute = name
		}
	}
}

// WithInverseWeights uses 1/w as cost, so heavy flows become short hops.
func WithInverseWeights() Option {
	return func(o *Options) {
		o.InverseWeights = true
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored
// and keep distance +Inf. Negative or NaN values are recorded and surfaced
// as ErrOptionViolation (wrapping ErrBadMaxDistance) when Dijkstra runs.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %w (%v)", ErrOptionViolation, ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex ID.
//
// Defaults:
//   - Source:          <as passed> (validated in Dijkstra).
//   - WeightAttribute: "all".
//   - InverseWeights:  false.
//   - ReturnPath:      false.
//   - MaxDistance:     +Inf (explore all reachable).
func DefaultOptions(source string) Options {
	return Options{
		Source:          source,
		WeightAttribute: DefaultWeightAttribute,
		MaxDistance:     math.Inf(1),
	}
}

// CostFunc converts an edge weight into a traversal cost. ok == false marks
// the edge as not traversable.
type CostFunc func(weight float64) (cost float64, ok bool)

// DirectCost uses the weight itself as cost.
func DirectCost(w float64) (float64, bool) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, false
	}

	return w, true
}

// InverseCost uses 1/w as cost.
func InverseCost(w float64) (float64, bool) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, false
	}

	return 1 / w, true
}

// costFunc picks the CostFunc matching o.
func (o Options) costFunc() CostFunc {
	if o.InverseWeights {
		return InverseCost
	}

	return DirectCost
}
