// SPDX-License-Identifier: MIT
// Package: odgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Build failures arrive wrapped in *core.ConstructionError, so
//     errors.Is(err, core.ErrConstruction) also holds.
//   • Generator parameter errors carry the method name as a prefix.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/odgraph/core"
)

// ErrMissingVertexAttribute indicates that, in strict attachment mode, a
// VertexRecord names an ID that no flow record references.
var ErrMissingVertexAttribute = errors.New("builder: vertex record has no matching flow")

// ErrUnsupportedAttribute indicates an attribute value that is neither a
// string nor a number.
var ErrUnsupportedAttribute = errors.New("builder: unsupported attribute value")

// ErrUnknownAggregation indicates an aggregation policy name that
// ParseAggregation does not recognise.
var ErrUnknownAggregation = errors.New("builder: unknown aggregation policy")

// ErrTooFewVertices indicates that a generator size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator requires WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that a WithX(...) option received a
// meaningless value (nil logger, nil RNG, empty weight name...).
var ErrOptionViolation = errors.New("builder: invalid option value")

// buildError wraps cause into a ConstructionError attributed to Build.
func buildError(id string, cause error) error {
	return &core.ConstructionError{Op: methodBuild, ID: id, Err: cause}
}

// builderErrorf returns an error of the form "<Method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
