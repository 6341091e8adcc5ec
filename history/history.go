// Package history assembles accepted rearrangement events into a History,
// and provides the scoring functions — rearrangement cost, total explained
// flow ratio, and per-group density — the MCMC sampler uses to propose and
// accept or reject candidate histories.
package history

import (
	"sort"

	"github.com/mfansler/cnavg-go/config"
	"github.com/mfansler/cnavg-go/edgeflow"
)

// History is an ordered, immutable-by-convention collection of accepted
// rearrangement events. Methods that would mutate the set return a new
// History rather than modifying the receiver, so a sampler can keep a
// reference to the best-so-far history while trying proposals against a
// copy.
type History struct {
	Events []edgeflow.Event
}

// New wraps a slice of events into a History, leaving the slice's order
// untouched.
func New(events []edgeflow.Event) History {
	cp := make([]edgeflow.Event, len(events))
	copy(cp, events)
	return History{Events: cp}
}

// WithEvent returns a new History with ev appended.
func (h History) WithEvent(ev edgeflow.Event) History {
	out := make([]edgeflow.Event, len(h.Events)+1)
	copy(out, h.Events)
	out[len(h.Events)] = ev
	return History{Events: out}
}

// WithoutLast returns a new History with its last event removed, or h
// unchanged if it is already empty.
func (h History) WithoutLast() History {
	if len(h.Events) == 0 {
		return h
	}
	out := make([]edgeflow.Event, len(h.Events)-1)
	copy(out, h.Events[:len(h.Events)-1])
	return History{Events: out}
}

// ByGroup returns the subset of h's events whose GroupID matches groupID.
func (h History) ByGroup(groupID string) []edgeflow.Event {
	var out []edgeflow.Event
	for _, ev := range h.Events {
		if ev.GroupID == groupID {
			out = append(out, ev)
		}
	}
	return out
}

// TotalRatio sums the flow ratio explained across every event in h.
func (h History) TotalRatio() float64 {
	total := 0.0
	for _, ev := range h.Events {
		total += ev.Ratio
	}
	return total
}

// RearrangementCost is the number of independent events a history requires
// to explain its data: the simplest reasonable cost metric for Metropolis
// comparison, since every additional event is an additional rearrangement
// the model has to posit.
func (h History) RearrangementCost() int {
	return len(h.Events)
}

// SeedHistory filters events down to HighFlowHistory (by config.MinCycleFlow)
// and orders them by descending flow ratio, establishing the deterministic
// starting point a sampler explores from: biggest, most confident signals
// are explained first.
func SeedHistory(events []edgeflow.Event) History {
	return New(HighFlowHistory(events, config.MinCycleFlow))
}

// HighFlowHistory returns the subset of events whose Ratio is strictly
// greater than minRatio, sorted by descending Ratio.
func HighFlowHistory(events []edgeflow.Event, minRatio float64) []edgeflow.Event {
	var out []edgeflow.Event
	for _, ev := range events {
		if ev.Ratio > minRatio {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ratio > out[j].Ratio
	})
	return out
}

// ChangedCNV reports whether a proposed copy-number value differs from the
// current one by more than config.CNVChangeEpsilon — the threshold below
// which a change is treated as numerical noise rather than a real edit
// that must be propagated up through the chain/net tree it sits in.
func ChangedCNV(oldCN, newCN float64) bool {
	d := oldCN - newCN
	if d < 0 {
		d = -d
	}
	return d > config.CNVChangeEpsilon
}

// Density returns a net's selection weight for the sampler's proposal step:
// the fraction of its total flow ratio not yet explained by events already
// in h. Nets further from fully explained are proportionally more likely to
// be picked for resampling.
func Density(h History, groupID string, groupTotalRatio float64) float64 {
	explained := 0.0
	for _, ev := range h.ByGroup(groupID) {
		explained += ev.Ratio
	}
	remaining := groupTotalRatio - explained
	if remaining < 0 {
		return 0
	}
	return remaining
}
