// SPDX-License-Identifier: MIT
// Package: odgraph/builder
//
// generators.go — synthetic flow record generators for fixtures and benchmarks.
//
// Contract:
//   • Vertex IDs come from the configured ID scheme in ascending index order.
//   • Weights come from the configured weight function under one weight name.
//   • Output feeds straight into Build; no self-loops are ever emitted.
//
// Determinism:
//   • Fixed emission order per generator; RandomFlows is reproducible for a
//     fixed seed because trials run in (i asc, j asc) order.

package builder

const (
	methodCompleteFlows = "CompleteFlows"
	methodCycleFlows    = "CycleFlows"
	methodRandomFlows   = "RandomFlows"

	minCompleteNodes = 1
	minCycleNodes    = 2
	minRandomNodes   = 1
	probMin          = 0.0
	probMax          = 1.0
)

// CompleteFlows returns flows for the complete directed graph on n vertices:
// every ordered pair (i,j), i≠j, once. Pair order is lexicographic by (i,j).
//
// Complexity: O(n²).
func CompleteFlows(n int, opts ...Option) ([]FlowRecord, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < minCompleteNodes {
		return nil, builderErrorf(methodCompleteFlows, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
	}

	ids := cfg.ids(n)
	flows := make([]FlowRecord, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				flows = append(flows, cfg.flow(ids[i], ids[j]))
			}
		}
	}

	return flows, nil
}

// CycleFlows returns the directed cycle 0→1→…→n-1→0.
//
// Complexity: O(n).
func CycleFlows(n int, opts ...Option) ([]FlowRecord, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < minCycleNodes {
		return nil, builderErrorf(methodCycleFlows, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
	}

	ids := cfg.ids(n)
	flows := make([]FlowRecord, 0, n)
	for i := 0; i < n; i++ {
		flows = append(flows, cfg.flow(ids[i], ids[(i+1)%n]))
	}

	return flows, nil
}

// RandomFlows samples each ordered pair (i,j), i≠j, independently with
// probability p, Erdős–Rényi style. An RNG (WithSeed/WithRand) is required
// when 0 < p < 1.
//
// Complexity: O(n²) Bernoulli trials.
func RandomFlows(n int, p float64, opts ...Option) ([]FlowRecord, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < minRandomNodes {
		return nil, builderErrorf(methodRandomFlows, ErrTooFewVertices, "n=%d < min=%d", n, minRandomNodes)
	}
	if p < probMin || p > probMax {
		return nil, builderErrorf(methodRandomFlows, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, probMin, probMax)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, builderErrorf(methodRandomFlows, ErrNeedRandSource, "p=%.6f", p)
	}

	ids := cfg.ids(n)
	var flows []FlowRecord
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			// p ∈ {0,1} is decided without consuming randomness.
			take := p == probMax
			if cfg.rng != nil && p > probMin && p < probMax {
				take = cfg.rng.Float64() < p
			}
			if take {
				flows = append(flows, cfg.flow(ids[i], ids[j]))
			}
		}
	}

	return flows, nil
}

// ids precomputes vertex IDs 0..n-1.
func (c *builderConfig) ids(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = c.idFn(i)
	}

	return ids
}

// flow emits one record with a freshly drawn weight.
func (c *builderConfig) flow(from, to string) FlowRecord {
	return FlowRecord{
		Source:      from,
		Destination: to,
		Weights:     map[string]float64{c.weightName: c.weightFn(c.rng)},
	}
}
