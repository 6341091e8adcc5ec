package extractor

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mfansler/cnavg-go/edgeflow"
	"github.com/mfansler/cnavg-go/module"
)

// PickOutCycles repeatedly extracts the minimum-|value| cycle from m until
// no edge with real flow remains. Every successfully closed cycle is
// wrapped into an Event and returned unconditionally; ratio-based filtering
// of low-flow cycles is history.HighFlowHistory's job, not this one's — by
// the time a cycle gets here it has already consumed real residual flow and
// dropping it silently would leave that flow unaccounted for.
func PickOutCycles(m *module.Module, groupID string, r *rand.Rand) ([]edgeflow.Event, error) {
	total := m.TotalFlow()
	if total <= 0 {
		return nil, nil
	}

	var events []edgeflow.Event
	for {
		start, ok := minimumEdgeStart(m)
		if !ok {
			break
		}
		cycle, err := ExtractAndRemove(m, start, r)
		if err != nil {
			return nil, fmt.Errorf("PickOutCycles: %w", err)
		}
		events = append(events, edgeflow.NewEvent(cycle, groupID, cycle.Value()/total))
	}
	return events, nil
}

// minimumEdgeStart returns the node at which the smallest-|value| edge
// still carrying real flow in m originates, breaking ties by node id for
// determinism. Starting extraction from the bottleneck edge, rather than
// from an arbitrary active node, is what keeps each extracted cycle as
// small as possible: that edge's magnitude is exactly the flow the cycle
// will carry, so starting anywhere larger just wastes candidate paths that
// ExtractCycle will have to discard once it hits the same bottleneck
// mid-walk anyway.
func minimumEdgeStart(m *module.Module) (string, bool) {
	bestNode := ""
	bestWeight := 0.0
	found := false
	for _, id := range m.Nodes() {
		for _, e := range m.Edges(id) {
			if !found || math.Abs(e.Weight) < math.Abs(bestWeight) ||
				(math.Abs(e.Weight) == math.Abs(bestWeight) && id < bestNode) {
				bestNode, bestWeight, found = id, e.Weight, true
			}
		}
	}
	return bestNode, found
}
