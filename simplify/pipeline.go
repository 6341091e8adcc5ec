package simplify

import (
	"math"

	"github.com/mfansler/cnavg-go/edgeflow"
)

// SimplifyEvents runs Stabilize over every event's cycle and flattens the
// result back into Events, preserving each event's group and scaling its
// flow ratio down proportionally to the sub-cycle's share of the original
// cycle's flow. Magnitudes drive the scaling; ev.Ratio's own sign is kept
// as-is, since a sub-cycle's bottleneck can land on either an adjacency or
// a segment edge independent of which one anchored the original cycle.
func SimplifyEvents(events []edgeflow.Event) []edgeflow.Event {
	var out []edgeflow.Event
	for _, ev := range events {
		originalValue := math.Abs(ev.Value())
		if originalValue == 0 {
			continue
		}
		subs := Stabilize(ev.Cycle)
		for _, sub := range subs {
			ratio := ev.Ratio * (math.Abs(sub.Value()) / originalValue)
			out = append(out, edgeflow.NewEvent(sub, ev.GroupID, ratio))
		}
	}
	return out
}
