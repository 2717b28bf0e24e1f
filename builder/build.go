// SPDX-License-Identifier: MIT
// Package: odgraph/builder
//
// build.go — Build(flows, vertices, opts...) constructor.
//
// Contract:
//   • Vertex IDs must be non-empty; vertex records unique (ErrDuplicateVertex).
//   • Attribute values are strings or numbers (ErrUnsupportedAttribute).
//   • Weights are finite and ≥ 0 per record (ErrNegativeWeight), checked before
//     aggregation so a sum can never hide a bad record.
//   • Returns a nil graph on any error.
//
// Complexity:
//   • Time: O(F·k + V) for F flows carrying k weights each.
//   • Space: O(V + F).
//
// Determinism:
//   • Vertex order: flow endpoints first-seen, then unreferenced records in input order.
//   • Edge order: flow input order; SumDuplicates keeps the first occurrence's slot.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/odgraph/core"
	"go.uber.org/zap"
)

const methodBuild = "Build"

// FlowRecord is one directed origin-destination flow.
type FlowRecord struct {
	Source      string
	Destination string

	// Weights holds named non-negative volumes, e.g. {"all": 120, "bus": 14}.
	Weights map[string]float64
}

// VertexRecord carries the attributes of one spatial unit.
type VertexRecord struct {
	ID         string
	Attributes map[string]any
}

// pair is an ordered (source, destination) key.
type pair struct{ from, to string }

// Build constructs a directed flow graph from flow and vertex records.
//
// Implementation:
//   - Stage 1: Resolve options; validate vertex records and attribute types.
//   - Stage 2: Validate flow weights and collect endpoints in first-seen order.
//   - Stage 3: Enforce strict attachment if requested.
//   - Stage 4: Insert vertices, then edges per the aggregation policy.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - *core.ConstructionError wrapping ErrDuplicateVertex, ErrEmptyVertexID,
//     ErrUnsupportedAttribute, ErrNegativeWeight, ErrMissingVertexAttribute,
//     ErrLoopNotAllowed.
func Build(flows []FlowRecord, vertices []VertexRecord, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	// Stage 1: vertex records.
	attrs := make(map[string]map[string]any, len(vertices))
	for _, rec := range vertices {
		if rec.ID == "" {
			return nil, buildError("", core.ErrEmptyVertexID)
		}
		if _, dup := attrs[rec.ID]; dup {
			return nil, buildError(rec.ID, core.ErrDuplicateVertex)
		}
		for key, val := range rec.Attributes {
			if !supportedValue(val) {
				return nil, buildError(rec.ID, fmt.Errorf("%w: %s=%T", ErrUnsupportedAttribute, key, val))
			}
		}
		attrs[rec.ID] = rec.Attributes
	}

	// Stage 2: flow endpoints and weights.
	order := make([]string, 0, len(vertices))
	seen := make(map[string]struct{}, len(vertices))
	note := func(id string) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			order = append(order, id)
		}
	}
	for i, f := range flows {
		if f.Source == "" || f.Destination == "" {
			return nil, buildError(fmt.Sprintf("flow %d", i), core.ErrEmptyVertexID)
		}
		for name, w := range f.Weights {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, buildError(f.Source+"→"+f.Destination,
					fmt.Errorf("%w: %s=%v", core.ErrNegativeWeight, name, w))
			}
		}
		note(f.Source)
		note(f.Destination)
	}

	// Stage 3: unreferenced vertex records.
	for _, rec := range vertices {
		if _, ok := seen[rec.ID]; ok {
			continue
		}
		if cfg.strict {
			return nil, buildError(rec.ID, ErrMissingVertexAttribute)
		}
		order = append(order, rec.ID)
	}

	// Stage 4: materialise.
	var gopts []core.GraphOption
	if cfg.loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)
	for _, id := range order {
		if err := g.AddVertex(id, attrs[id]); err != nil {
			return nil, err
		}
	}

	var err error
	switch cfg.aggregation {
	case SumDuplicates:
		err = addSummed(g, flows)
	default:
		err = addAll(g, flows)
	}
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("graph built",
		zap.Int("flows", len(flows)),
		zap.Int("vertex_records", len(vertices)),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Stringer("aggregation", cfg.aggregation),
		zap.Bool("strict", cfg.strict),
	)

	return g, nil
}

// addAll inserts one edge per flow record.
func addAll(g *core.Graph, flows []FlowRecord) error {
	for _, f := range flows {
		if _, err := g.AddEdge(f.Source, f.Destination, f.Weights); err != nil {
			return err
		}
	}

	return nil
}

// addSummed merges flows per ordered pair, summing weights name by name,
// and inserts one edge per pair in first-occurrence order.
func addSummed(g *core.Graph, flows []FlowRecord) error {
	sums := make(map[pair]map[string]float64, len(flows))
	order := make([]pair, 0, len(flows))
	for _, f := range flows {
		k := pair{f.Source, f.Destination}
		acc, ok := sums[k]
		if !ok {
			acc = make(map[string]float64, len(f.Weights))
			sums[k] = acc
			order = append(order, k)
		}
		for name, w := range f.Weights {
			acc[name] += w
		}
	}
	for _, k := range order {
		if _, err := g.AddEdge(k.from, k.to, sums[k]); err != nil {
			return err
		}
	}

	return nil
}

// supportedValue reports whether v is a string or a Go numeric type.
func supportedValue(v any) bool {
	switch v.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
