// SPDX-License-Identifier: MIT
// File: errors.go
// Role: typed construction error shared by Graph and the builder package.

package core

import (
	"errors"
	"fmt"
)

// ErrConstruction is the umbrella sentinel for every failure that aborts
// graph construction. All *ConstructionError values match it under errors.Is.
var ErrConstruction = errors.New("core: graph construction failed")

// ConstructionError describes why a vertex or edge could not be added.
//
// Err holds the specific sentinel (ErrDuplicateVertex, ErrUnknownVertex,
// ErrNegativeWeight, or a builder sentinel), so callers can branch with
// errors.Is on either the umbrella or the specific cause.
type ConstructionError struct {
	// Op is the operation that failed ("AddVertex", "AddEdge", "Build").
	Op string

	// ID names the offending vertex, or the "from→to" pair for edges.
	ID string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ConstructionError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s(%s): %v", e.Op, e.ID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConstructionError) Unwrap() error { return e.Err }

// Is reports whether target is the ErrConstruction umbrella.
func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

// constructionErrorf builds a ConstructionError for op/id with cause err.
func constructionErrorf(op, id string, err error) error {
	return &ConstructionError{Op: op, ID: id, Err: err}
}
