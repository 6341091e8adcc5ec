package cactus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_LinearSegmentAndAdjacency(t *testing.T) {
	b := NewBuilder().Add(
		RootNet("root"),
		LinearSegment("1", "root", []float64{1, 1}),
		LinearSegment("2", "root", []float64{1, 1}),
		Adjacency("1h", "2t", 2),
	)
	c, err := b.Build()
	require.NoError(t, err)

	neigh, err := c.Neighbors("1h")
	require.NoError(t, err)
	assert.Equal(t, 2.0, neigh["2t"])

	ploidy, err := c.Ploidy("c:1")
	require.NoError(t, err)
	assert.Equal(t, 2, ploidy)

	net, err := c.NodeNet("1h")
	require.NoError(t, err)
	assert.Equal(t, "root", net)
}

func TestCactus_AddNode_RejectsDuplicateAndEmpty(t *testing.T) {
	c := New()
	require.NoError(t, c.AddNode(Node{ID: "a", Edges: map[string]float64{}}))

	err := c.AddNode(Node{ID: "a", Edges: map[string]float64{}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = c.AddNode(Node{ID: "", Edges: map[string]float64{}})
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestCactus_RemoveEdgeFlow_DeletesWhenExhausted(t *testing.T) {
	c := New()
	require.NoError(t, c.AddNode(Node{ID: "a", Edges: map[string]float64{}}))
	require.NoError(t, c.AddNode(Node{ID: "b", Edges: map[string]float64{}}))
	require.NoError(t, c.SetEdge("a", "b", 3))

	require.NoError(t, c.RemoveEdgeFlow("a", "b", 1))
	neigh, err := c.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, 2.0, neigh["b"])

	require.NoError(t, c.RemoveEdgeFlow("a", "b", 2))
	neigh, err = c.Neighbors("a")
	require.NoError(t, err)
	_, ok := neigh["b"]
	assert.False(t, ok)
}

func TestBuilder_SegmentChain_WiresInteriorNetsAndAdjacency(t *testing.T) {
	b := NewBuilder().Add(
		RootNet("root"),
		SegmentChain("chain", "root", []BlockSpec{
			{ID: "b0", Length: 2, CopyNumbers: []float64{4}},
			{ID: "b1", Length: 3, CopyNumbers: []float64{4}},
			{ID: "b2", Length: 1, CopyNumbers: []float64{1}},
		}),
	)
	c, err := b.Build()
	require.NoError(t, err)

	ch, err := c.Chain("chain")
	require.NoError(t, err)
	assert.Equal(t, []string{"b0", "b1", "b2"}, ch.Blocks)

	b0, err := c.Block("b0")
	require.NoError(t, err)
	assert.Equal(t, "root", b0.StartNet)
	assert.NotEqual(t, "root", b0.EndNet, "interior junction should get its own net")

	b1, err := c.Block("b1")
	require.NoError(t, err)
	assert.Equal(t, b0.EndNet, b1.StartNet, "consecutive blocks share their junction net")

	b2, err := c.Block("b2")
	require.NoError(t, err)
	assert.Equal(t, "root", b2.EndNet)

	neigh, err := c.Neighbors("chain:b0t")
	require.NoError(t, err)
	assert.Contains(t, neigh, "chain:b1h", "consecutive blocks are wired by an adjacency edge")
}

func TestCactus_MergeNets_UnionsChainsAndRepointsBlocks(t *testing.T) {
	b := NewBuilder().Add(
		RootNet("netA"),
		LinearSegment("1", "netA", []float64{1}),
		RootNet("netB"),
		LinearSegment("2", "netB", []float64{1}),
	)
	c, err := b.Build()
	require.NoError(t, err)

	newID, err := c.MergeNets([]string{"netA", "netB"})
	require.NoError(t, err)

	chains, err := c.ChainsInNet(newID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c:1", "c:2"}, chains)

	blk, err := c.Block("b:1")
	require.NoError(t, err)
	assert.Equal(t, newID, blk.StartNet)
	assert.Equal(t, newID, blk.EndNet)

	_, err = c.Net("netA")
	assert.ErrorIs(t, err, ErrNetNotFound)
}

func TestCactus_ReplaceChainBlocks_SplicesSingleBlockIn(t *testing.T) {
	b := NewBuilder().Add(
		RootNet("root"),
		SegmentChain("chain", "root", []BlockSpec{
			{ID: "b0", Length: 1, CopyNumbers: []float64{4}},
			{ID: "b1", Length: 1, CopyNumbers: []float64{4}},
			{ID: "b2", Length: 1, CopyNumbers: []float64{1}},
		}),
	)
	c, err := b.Build()
	require.NoError(t, err)

	merged := Block{ID: "merged", Ends: [2]string{"chain:b0h", "chain:b1t"}, Length: 2, CopyNumbers: []float64{4}}
	require.NoError(t, c.ReplaceChainBlocks("chain", 0, 2, merged))

	ch, err := c.Chain("chain")
	require.NoError(t, err)
	assert.Equal(t, []string{"merged", "b2"}, ch.Blocks)

	_, err = c.Block("b0")
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestCactus_CopyNumber_OutOfRange(t *testing.T) {
	c := New()
	require.NoError(t, c.AddNode(Node{ID: "a", Edges: map[string]float64{}, Segments: []float64{1, 2}}))

	_, err := c.CopyNumber("a", 5)
	assert.ErrorIs(t, err, ErrNoPloidy)

	v, err := c.CopyNumber("a", 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}
