package builder

import (
	"fmt"
	"strings"
)

// Aggregation is the policy for flow records that share an ordered
// (source, destination) pair.
type Aggregation int

const (
	// KeepAll stores one edge per flow record (parallel edges).
	KeepAll Aggregation = iota

	// SumDuplicates merges records with the same ordered pair into one edge,
	// summing each named weight.
	SumDuplicates
)

// String returns the configuration name of a.
func (a Aggregation) String() string {
	switch a {
	case KeepAll:
		return "keep-all"
	case SumDuplicates:
		return "sum-duplicates"
	default:
		return fmt.Sprintf("Aggregation(%d)", int(a))
	}
}

// ParseAggregation maps "keep-all" / "sum-duplicates" (case-insensitive,
// underscores accepted) to an Aggregation. The empty string means KeepAll.
func ParseAggregation(s string) (Aggregation, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", "keep-all":
		return KeepAll, nil
	case "sum-duplicates":
		return SumDuplicates, nil
	default:
		return KeepAll, fmt.Errorf("%w: %q", ErrUnknownAggregation, s)
	}
}
