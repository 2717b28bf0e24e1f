package bfs_test

import (
	"testing"

	"github.com/katalvlaran/odgraph/bfs"
	"github.com/katalvlaran/odgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flows builds a graph from "A>B" style pairs, creating vertices on first sight.
func flows(t testing.TB, pairs ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		var from, to string
		for i := 0; i < len(p); i++ {
			if p[i] == '>' {
				from, to = p[:i], p[i+1:]
			}
		}
		for _, id := range []string{from, to} {
			if !g.HasVertex(id) {
				require.NoError(t, g.AddVertex(id, nil))
			}
		}
		_, err := g.AddEdge(from, to, map[string]float64{"all": 1})
		require.NoError(t, err)
	}

	return g
}

// TestDistances checks hop depths, reach counts and sums from every source.
func TestDistances(t *testing.T) {
	g := flows(t, "A>B", "B>C", "A>C", "C>A", "D>A")
	v := g.Snapshot("")
	var s bfs.Scratch

	cases := []struct {
		src     string
		reached int
		sum     int
		depth   map[string]int
	}{
		{"A", 2, 2, map[string]int{"A": 0, "B": 1, "C": 1, "D": -1}},
		{"B", 2, 3, map[string]int{"A": 2, "B": 0, "C": 1, "D": -1}},
		{"C", 2, 3, map[string]int{"A": 1, "B": 2, "C": 0, "D": -1}},
		{"D", 3, 5, map[string]int{"A": 1, "B": 2, "C": 2, "D": 0}},
	}
	for _, tc := range cases {
		src, ok := v.Index(tc.src)
		require.True(t, ok)
		reached, sum := bfs.Distances(v, src, &s)
		assert.Equal(t, tc.reached, reached, "reached from %s", tc.src)
		assert.Equal(t, tc.sum, sum, "sum from %s", tc.src)
		for id, want := range tc.depth {
			i, _ := v.Index(id)
			assert.Equal(t, want, s.Depth(i), "%s→%s", tc.src, id)
		}
	}
}

// TestDistances_ScratchReuse verifies a Scratch sized for a small View grows
// for a larger one and that out-of-range indices report unreached.
func TestDistances_ScratchReuse(t *testing.T) {
	var s bfs.Scratch
	small := flows(t, "A>B").Snapshot("")
	reached, sum := bfs.Distances(small, 0, &s)
	assert.Equal(t, 1, reached)
	assert.Equal(t, 1, sum)

	large := flows(t, "A>B", "B>C", "C>D", "D>E").Snapshot("")
	reached, sum = bfs.Distances(large, 0, &s)
	assert.Equal(t, 4, reached)
	assert.Equal(t, 1+2+3+4, sum)

	assert.Equal(t, -1, s.Depth(-1))
	assert.Equal(t, -1, s.Depth(large.Len()))
}
