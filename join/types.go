// Package join defines options and errors for attaching analysis results
// to vertex records and graphs.
package join

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/odgraph/core"
)

// DefaultLabelKey is the attribute key under which community labels are stored.
const DefaultLabelKey = "community"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("join: graph is nil")

	// ErrAttributeConflict is returned when a result key already exists on a
	// vertex. It is the same sentinel as core.ErrAttributeConflict, so one
	// errors.Is check covers both Records and Graph.
	ErrAttributeConflict = core.ErrAttributeConflict

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("join: invalid option supplied")
)

// Option configures a join via functional arguments.
type Option func(*Options)

// Options holds the attribute naming policy.
type Options struct {
	// Prefix is prepended to every measure name ("" by default).
	Prefix string

	// LabelKey names the community label attribute.
	LabelKey string

	err error
}

// DefaultOptions returns an empty prefix and the "community" label key.
func DefaultOptions() Options {
	return Options{LabelKey: DefaultLabelKey}
}

// WithPrefix prepends prefix to every measure attribute, e.g. "c_degree".
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithLabelKey stores community labels under key (non-empty).
func WithLabelKey(key string) Option {
	return func(o *Options) {
		if key == "" {
			if o.err == nil {
				o.err = fmt.Errorf("%w: empty label key", ErrOptionViolation)
			}
			return
		}
		o.LabelKey = key
	}
}
