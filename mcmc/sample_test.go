package mcmc

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mfansler/cnavg-go/edgeflow"
	"github.com/mfansler/cnavg-go/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCTest_AlwaysAcceptsImprovement(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	assert.True(t, MCTest(1.0, 2.0, 1.0, r))
	assert.True(t, MCTest(2.0, 2.0, 1.0, r))
}

func TestMCTest_SometimesAcceptsWorse(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	accepted := 0
	for i := 0; i < 1000; i++ {
		if MCTest(3.0, 2.0, 5.0, r) {
			accepted++
		}
	}
	assert.Greater(t, accepted, 0)
	assert.Less(t, accepted, 1000)
}

func TestSample_MonotoneImprovementConverges(t *testing.T) {
	edge, err := edgeflow.NewEdge("a", "b", 1, 0)
	require.NoError(t, err)
	edge2, err := edgeflow.NewEdge("b", "a", 1, 1)
	require.NoError(t, err)
	cycle, err := edgeflow.NewCycle([]edgeflow.Edge{edge, edge2})
	require.NoError(t, err)

	initial := history.New(nil)
	counter := 0
	propose := func(cur history.History, r *rand.Rand) (history.History, error) {
		counter++
		if len(cur.Events) >= 5 {
			return cur, nil
		}
		return cur.WithEvent(edgeflow.NewEvent(cycle, "g", 0.1)), nil
	}
	cost := func(h history.History) float64 {
		// Lower cost the more events explained, capped at 5: a monotone
		// landscape the sampler should always climb toward.
		return float64(5 - len(h.Events))
	}

	best, err := Sample(context.Background(), initial, 50, propose, cost, WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, 5, len(best.Events))
}

func TestSample_RespectsContextCancellation(t *testing.T) {
	initial := history.New(nil)
	propose := func(cur history.History, r *rand.Rand) (history.History, error) {
		return cur, nil
	}
	cost := func(h history.History) float64 { return 0 }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	best, err := Sample(ctx, initial, 1000, propose, cost)
	require.NoError(t, err)
	assert.Equal(t, initial, best)
}

func TestSample_RequiresProposeAndCost(t *testing.T) {
	_, err := Sample(context.Background(), history.New(nil), 1, nil, func(history.History) float64 { return 0 })
	assert.ErrorIs(t, err, ErrNilProposal)

	_, err = Sample(context.Background(), history.New(nil), 1, func(h history.History, r *rand.Rand) (history.History, error) { return h, nil }, nil)
	assert.ErrorIs(t, err, ErrNilCost)
}

func TestSample_MaxTimerStopsEarly(t *testing.T) {
	initial := history.New(nil)
	propose := func(cur history.History, r *rand.Rand) (history.History, error) {
		time.Sleep(2 * time.Millisecond)
		return cur, nil
	}
	cost := func(h history.History) float64 { return 0 }

	best, err := Sample(context.Background(), initial, 1_000_000, propose, cost, WithMaxTimer(10*time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, initial, best)
}
