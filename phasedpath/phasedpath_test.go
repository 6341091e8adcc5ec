package phasedpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapGraph map[string][]Edge

func (g mapGraph) Edges(node string) []Edge { return g[node] }

func TestSearch_NegativeWeightFlipsPhase(t *testing.T) {
	g := mapGraph{
		"a": {{To: "b", Weight: -1, Kind: SegmentEdge}},
		"b": {{To: "c", Weight: 1, Kind: AdjacencyEdge}},
	}
	res, err := Search(g, WithSource("a"))
	require.NoError(t, err)

	_, ok := res.DistanceTo("b", Even)
	assert.False(t, ok, "a negative-weight edge should land on odd phase, not even")

	d, ok := res.DistanceTo("b", Odd)
	require.True(t, ok)
	assert.Equal(t, 1.0, d)

	d, ok = res.DistanceTo("c", Odd)
	require.True(t, ok)
	assert.Equal(t, 2.0, d)
}

func TestSearch_PicksShortestOfMultiplePaths(t *testing.T) {
	g := mapGraph{
		"a": {
			{To: "b", Weight: 5, Kind: AdjacencyEdge},
			{To: "c", Weight: 1, Kind: AdjacencyEdge},
		},
		"c": {{To: "b", Weight: 1, Kind: AdjacencyEdge}},
	}
	res, err := Search(g, WithSource("a"), WithReturnPaths())
	require.NoError(t, err)

	d, ok := res.DistanceTo("b", Even)
	require.True(t, ok)
	assert.Equal(t, 2.0, d)

	path, ok := res.PathTo("b", Even)
	require.True(t, ok)
	require.Len(t, path, 3)
	assert.Equal(t, "a", path[0].Node)
	assert.Equal(t, "c", path[1].Node)
	assert.Equal(t, "b", path[2].Node)
}

func TestSearch_RejectsZeroWeight(t *testing.T) {
	g := mapGraph{"a": {{To: "b", Weight: 0, Kind: AdjacencyEdge}}}
	_, err := Search(g, WithSource("a"))
	assert.ErrorIs(t, err, ErrZeroWeight)
}

func TestSearch_RequiresSource(t *testing.T) {
	_, err := Search(mapGraph{})
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestSearch_NilGraph(t *testing.T) {
	_, err := Search(nil, WithSource("a"))
	assert.ErrorIs(t, err, ErrNilGraph)
}
