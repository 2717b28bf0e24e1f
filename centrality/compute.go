package centrality

import (
	"errors"

	"github.com/katalvlaran/odgraph/core"
)

// Compute runs the selected measures (all three by default) and gathers them
// into Scores. A *NonConvergenceWarning from the eigenvector stage is passed
// through next to complete Scores; every other error aborts with nil Scores.
func Compute(g *core.Graph, opts ...Option) (Scores, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	measures := o.Measures
	if len(measures) == 0 {
		measures = []string{MeasureDegree, MeasureCloseness, MeasureEigenvector}
	}

	scores := make(Scores, len(measures))
	var warning error
	for _, m := range measures {
		switch m {
		case MeasureDegree:
			scores[m] = Degree(g)
		case MeasureCloseness:
			if scores[m], err = Closeness(g, opts...); err != nil {
				return nil, err
			}
		case MeasureEigenvector:
			vals, err := Eigenvector(g, opts...)
			var nc *NonConvergenceWarning
			switch {
			case errors.As(err, &nc):
				warning = nc
			case err != nil:
				return nil, err
			}
			scores[m] = vals
		}
	}

	return scores, warning
}
