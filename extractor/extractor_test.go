package extractor

import (
	"math"
	"testing"

	"github.com/mfansler/cnavg-go/cactus"
	"github.com/mfansler/cnavg-go/module"
	"github.com/mfansler/cnavg-go/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleFixture builds three segments wired into a single closed loop:
// 1h-2t-2h-3t-3h-1t-1h, entirely via adjacency/segment edges of flow 2.
func triangleFixture(t *testing.T) *cactus.Cactus {
	t.Helper()
	b := cactus.NewBuilder().Add(
		cactus.RootNet("root"),
		cactus.LinearSegment("1", "root", []float64{2}),
		cactus.LinearSegment("2", "root", []float64{2}),
		cactus.LinearSegment("3", "root", []float64{2}),
		cactus.Adjacency("1h", "2t", 2),
		cactus.Adjacency("2h", "3t", 2),
		cactus.Adjacency("3h", "1t", 2),
	)
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestExtractCycle_FindsClosedLoop(t *testing.T) {
	c := triangleFixture(t)
	m := module.New(c, []string{"1h", "1t", "2h", "2t", "3h", "3t"})

	cycle, err := ExtractCycle(m, "1h", rng.New(1))
	require.NoError(t, err)
	assert.Greater(t, cycle.Len(), 0)
	assert.Equal(t, 2.0, math.Abs(cycle.Value()), "the first edge taken may be a segment edge, which carries a negative weight")
}

func TestExtractAndRemove_DrainsFlow(t *testing.T) {
	c := triangleFixture(t)
	m := module.New(c, []string{"1h", "1t", "2h", "2t", "3h", "3t"})

	before := m.TotalFlow()
	require.Greater(t, before, 0.0)

	_, err := ExtractAndRemove(m, "1h", rng.New(1))
	require.NoError(t, err)

	after := m.TotalFlow()
	assert.Less(t, after, before)
}

func TestPickOutCycles_ExhaustsFlow(t *testing.T) {
	c := triangleFixture(t)
	m := module.New(c, []string{"1h", "1t", "2h", "2t", "3h", "3t"})

	events, err := PickOutCycles(m, "group-1", rng.New(1))
	require.NoError(t, err)
	require.NotEmpty(t, events)

	assert.Equal(t, 0.0, m.TotalFlow())
	for _, ev := range events {
		assert.Equal(t, "group-1", ev.GroupID)
	}
}

func TestClosePseudoTelomeres_ConnectsBareSegmentEnds(t *testing.T) {
	b := cactus.NewBuilder().Add(
		cactus.RootNet("root"),
		cactus.LinearSegment("1", "root", []float64{3}),
	)
	c, err := b.Build()
	require.NoError(t, err)

	require.NoError(t, ClosePseudoTelomeres(c))

	neigh, err := c.Neighbors("1h")
	require.NoError(t, err)
	assert.Equal(t, 3.0, neigh[TelomereHub])
}
