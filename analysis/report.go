package analysis

import (
	"time"

	"github.com/katalvlaran/odgraph/builder"
	"github.com/katalvlaran/odgraph/centrality"
	"github.com/katalvlaran/odgraph/community"
	"github.com/katalvlaran/odgraph/core"
	"github.com/katalvlaran/odgraph/prune"
)

// Report is the outcome of one Run. It marshals to JSON as the CLI output.
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`

	// Graph summarises the built (unpruned) graph.
	Graph *core.GraphStats `json:"graph"`

	// Scores is keyed vertex ID → measure name → score.
	Scores      centrality.VertexScores `json:"scores"`
	Labels      map[string]int          `json:"labels"`
	Pruning     PruneSummary            `json:"pruning"`
	Communities CommunitySummary        `json:"communities"`

	// Vertices are the input vertex records with scores and labels joined,
	// in graph vertex order.
	Vertices []builder.VertexRecord `json:"vertices"`

	// Warnings carries non-fatal conditions such as eigenvector non-convergence.
	Warnings []string `json:"warnings,omitempty"`

	// PrunedGraph is the graph communities were detected on.
	PrunedGraph *core.Graph `json:"-"`
}

// PruneSummary is the serialisable part of a prune.Report.
type PruneSummary struct {
	FinalThreshold  int      `json:"final_threshold"`
	Iterations      int      `json:"iterations"`
	MinDegree       int      `json:"min_degree"`
	VerticesRemoved int      `json:"vertices_removed"`
	EdgesRemoved    int      `json:"edges_removed"`
	RemovedVertices []string `json:"removed_vertices"`
}

// CommunitySummary is the serialisable part of a community.Result.
type CommunitySummary struct {
	Modules            int              `json:"modules"`
	Codelength         float64          `json:"codelength"`
	OneLevelCodelength float64          `json:"one_level_codelength"`
	Levels             int              `json:"levels"`
	Modularity         float64          `json:"modularity"`
	Members            map[int][]string `json:"members"`
	Flow               map[int]float64  `json:"flow"`
}

func summarizePrune(r *prune.Report) PruneSummary {
	return PruneSummary{
		FinalThreshold:  r.FinalThreshold,
		Iterations:      r.Iterations,
		MinDegree:       r.MinDegree,
		VerticesRemoved: r.VerticesRemoved,
		EdgesRemoved:    r.EdgesRemoved,
		RemovedVertices: r.RemovedVertices,
	}
}

func summarizeCommunities(r *community.Result, modularity float64) CommunitySummary {
	s := CommunitySummary{
		Modules:            r.Modules,
		Codelength:         r.Codelength,
		OneLevelCodelength: r.OneLevelCodelength,
		Levels:             r.Levels,
		Modularity:         modularity,
		Members:            make(map[int][]string, len(r.Communities)),
		Flow:               make(map[int]float64, len(r.Communities)),
	}
	for _, m := range r.Communities {
		s.Members[m.Label] = m.Members
		s.Flow[m.Label] = m.Flow
	}

	return s
}
