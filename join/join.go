// SPDX-License-Identifier: MIT
//
// File: join.go
// Role: Attach centrality scores and community labels as vertex attributes.
// Contract:
//   - Inputs are never mutated; results are fresh records or a fresh Graph.
//   - Existing attribute keys are never overwritten (ErrAttributeConflict).
// Determinism:
//   - Measures are attached in sorted name order, the label last.

package join

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/centrality"
	"github.com/katalvlaran/odgraph/core"
)

// column is one attribute to attach: key plus per-vertex values.
type column struct {
	key    string
	values map[string]any
}

// columns resolves options and lays out the attributes to attach.
func columns(scores centrality.Scores, labels map[string]int, opts []Option) ([]column, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	measures := make([]string, 0, len(scores))
	for m := range scores {
		measures = append(measures, m)
	}
	sort.Strings(measures)

	cols := make([]column, 0, len(measures)+1)
	keys := make(map[string]bool, len(measures)+1)
	for _, m := range measures {
		col := column{key: o.Prefix + m, values: make(map[string]any, len(scores[m]))}
		for id, s := range scores[m] {
			col.values[id] = s
		}
		keys[col.key] = true
		cols = append(cols, col)
	}
	if labels != nil {
		if keys[o.LabelKey] {
			return nil, fmt.Errorf("%w: label key %q collides with a measure", ErrAttributeConflict, o.LabelKey)
		}
		col := column{key: o.LabelKey, values: make(map[string]any, len(labels))}
		for id, l := range labels {
			col.values[id] = l
		}
		cols = append(cols, col)
	}

	return cols, nil
}

// Records returns copies of records extended with score and label
// attributes. Vertices absent from a measure or from labels (for example
// vertices dropped by pruning) simply do not receive that key; results for
// IDs that have no record are ignored.
//
// Errors:
//   - ErrAttributeConflict: a record already carries one of the new keys.
//   - ErrOptionViolation: invalid options.
//
// Complexity: O(R·(A + K)) for R records, A existing attributes, K new keys.
func Records(records []builder.VertexRecord, scores centrality.Scores, labels map[string]int, opts ...Option) ([]builder.VertexRecord, error) {
	cols, err := columns(scores, labels, opts)
	if err != nil {
		return nil, err
	}

	out := make([]builder.VertexRecord, len(records))
	for i, rec := range records {
		attrs := make(map[string]any, len(rec.Attributes)+len(cols))
		for k, v := range rec.Attributes {
			attrs[k] = v
		}
		for _, col := range cols {
			val, ok := col.values[rec.ID]
			if !ok {
				continue
			}
			if _, exists := attrs[col.key]; exists {
				return nil, fmt.Errorf("Records: %w: %q on %q", ErrAttributeConflict, col.key, rec.ID)
			}
			attrs[col.key] = val
		}
		out[i] = builder.VertexRecord{ID: rec.ID, Attributes: attrs}
	}

	return out, nil
}

// Graph returns a copy of g whose vertices carry score and label
// attributes. g is not mutated.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrAttributeConflict: a vertex already carries one of the new keys.
//   - core.ErrVertexNotFound: a result names a vertex g does not contain.
//
// Complexity: O(K·(V + E)) for K attached keys.
func Graph(g *core.Graph, scores centrality.Scores, labels map[string]int, opts ...Option) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cols, err := columns(scores, labels, opts)
	if err != nil {
		return nil, err
	}

	out := g
	for _, col := range cols {
		if out, err = out.WithVertexAttributes(col.key, col.values); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
	}
	if out == g {
		out = g.Clone()
	}

	return out, nil
}
