package edgeflow

import (
	"errors"
	"math"
)

// ErrEmptyCycle indicates an operation was attempted on a Cycle with no edges.
var ErrEmptyCycle = errors.New("edgeflow: empty cycle")

// ErrNotClosed indicates that a Cycle's edges do not form a closed walk:
// the finish of the last edge does not match the start of the first.
var ErrNotClosed = errors.New("edgeflow: cycle is not closed")

// Cycle is an ordered, closed walk of alternating segment/adjacency edges.
// Index 0 is arbitrary: StartAt and Reverse both produce an equivalent cycle
// describing the same closed walk, just traversed from a different edge or
// in the opposite direction.
type Cycle struct {
	edges []Edge
}

// NewCycle builds a Cycle from edges, validating that the walk is closed
// (edges[i].Finish == edges[i+1].Start, wrapping around) and non-empty.
func NewCycle(edges []Edge) (Cycle, error) {
	if len(edges) == 0 {
		return Cycle{}, ErrEmptyCycle
	}
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		if e.Finish != next.Start {
			return Cycle{}, ErrNotClosed
		}
	}
	cp := make([]Edge, len(edges))
	copy(cp, edges)
	return Cycle{edges: cp}, nil
}

// Edges returns a copy of the cycle's edge sequence.
func (c Cycle) Edges() []Edge {
	out := make([]Edge, len(c.edges))
	copy(out, c.edges)
	return out
}

// Len returns the number of edges in the cycle.
func (c Cycle) Len() int { return len(c.edges) }

// At returns the edge at position i (0-indexed, wrapping is the caller's
// responsibility).
func (c Cycle) At(i int) Edge { return c.edges[i] }

// Value returns the cycle's flow value: the edge of smallest magnitude
// across the cycle, sign preserved, since that magnitude is the largest
// amount that can be extracted from every edge simultaneously and the sign
// records which phase/orientation that bottleneck edge carries.
func (c Cycle) Value() float64 {
	if len(c.edges) == 0 {
		return 0
	}
	bottleneck := c.edges[0].Value
	for _, e := range c.edges[1:] {
		if math.Abs(e.Value) < math.Abs(bottleneck) {
			bottleneck = e.Value
		}
	}
	return bottleneck
}

// StartAt returns an equivalent cycle rotated so that edge k becomes the
// first edge.
func (c Cycle) StartAt(k int) Cycle {
	n := len(c.edges)
	if n == 0 {
		return c
	}
	k = ((k % n) + n) % n
	out := make([]Edge, n)
	for i := 0; i < n; i++ {
		out[i] = c.edges[(k+i)%n]
	}
	return Cycle{edges: out}
}

// Reverse returns the cycle traversed in the opposite direction: edges are
// reversed individually and the sequence order is flipped so the walk
// remains closed.
func (c Cycle) Reverse() Cycle {
	n := len(c.edges)
	out := make([]Edge, n)
	for i, e := range c.edges {
		out[n-1-i] = e.Reversed()
	}
	return Cycle{edges: out}
}

// WithFlow returns a copy of the cycle with every edge's magnitude reduced
// by delta, sign preserved: a positive edge moves toward zero, a negative
// edge moves toward zero from the other side. Callers typically pass
// math.Abs(c.Value()) to fully extinguish the bottleneck edge(s) in the
// cycle.
func (c Cycle) WithFlow(delta float64) Cycle {
	out := make([]Edge, len(c.edges))
	for i, e := range c.edges {
		if e.Value > 0 {
			e.Value -= delta
		} else {
			e.Value += delta
		}
		out[i] = e
	}
	return Cycle{edges: out}
}
