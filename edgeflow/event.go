package edgeflow

// Event wraps a Cycle with the provenance needed by the history assembler
// and the simplifier: which chain/net grouping it was extracted from, and
// its flow ratio relative to the module's total remaining flow (used by
// highFlowHistory-style filtering and by the net-selection weighting in the
// sampler).
type Event struct {
	Cycle Cycle
	// GroupID names the chain or net the cycle was extracted from. It is
	// opaque to edgeflow; cactus assigns it.
	GroupID string
	// Ratio is Cycle.Value() divided by the module's total flow at
	// extraction time. It carries the same sign as the cycle's value:
	// history.HighFlowHistory's minRatio cutoff is a plain >, so a
	// negative-valued cycle's Ratio is naturally filtered out rather than
	// compared by magnitude.
	Ratio float64
}

// NewEvent wraps a cycle with its extraction provenance.
func NewEvent(c Cycle, groupID string, ratio float64) Event {
	return Event{Cycle: c, GroupID: groupID, Ratio: ratio}
}

// Value is a convenience accessor for the wrapped cycle's flow value.
func (e Event) Value() float64 { return e.Cycle.Value() }
