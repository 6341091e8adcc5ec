// Package edgeflow defines the signed-edge and cycle primitives that every
// later stage — the adjacency table, the two-phase shortest-path search, the
// cycle extractor, and the simplifier — operates on.
//
// A rearrangement history is built entirely out of directed edges between
// signed node endpoints (an endpoint names a breakpoint and a strand, e.g.
// "5h"/"5t" for the head/tail of segment 5) and closed Cycles made of an
// alternating sequence of those edges. Nothing here understands chains,
// nets, or ploidy — that belongs to the cactus package.
package edgeflow

import (
	"errors"
	"fmt"
)

// ErrEmptyEndpoint indicates that an edge was constructed with a blank
// start or finish node identifier.
var ErrEmptyEndpoint = errors.New("edgeflow: empty endpoint")

// ErrZeroValue indicates that an edge or cycle was assigned a zero flow
// value, where SPEC_FULL.md's data model requires value ∈ ℝ\{0}: the sign
// carries orientation (which phase of the two-phase search an edge belongs
// to, which side of a destructive overlap a position sits on), so a value
// of exactly zero is meaningless rather than merely small.
var ErrZeroValue = errors.New("edgeflow: value must be nonzero")

// Index identifies which physical edge between two endpoints an edge stands
// for: -1 for an adjacency edge, and a non-negative slot for a segment edge
// (the extractor uses 0, since module sums a segment's copy numbers over its
// ploidy indices). It is opaque to edgeflow itself and preserved by Reversed;
// simplify compares it to tell whether two traversals share one edge.
type Index int

// Edge is a single directed connection between two node endpoints, carrying
// the signed residual flow still available along it. The sign is
// significant: it is what drives the two-phase alternating search a cycle
// is extracted with (phasedpath.Search flips phase on a negative weight) and what
// distinguishes an even overlap from a destructive one during
// simplification.
type Edge struct {
	Start  string
	Finish string
	Value  float64
	Index  Index
}

// NewEdge constructs an Edge, validating that both endpoints are non-empty
// and the value is nonzero. Value may be negative: orientation, not
// magnitude, is what a negative value signals here.
func NewEdge(start, finish string, value float64, idx Index) (Edge, error) {
	if start == "" || finish == "" {
		return Edge{}, ErrEmptyEndpoint
	}
	if value == 0 {
		return Edge{}, fmt.Errorf("edgeflow: NewEdge(%s,%s)=%g: %w", start, finish, value, ErrZeroValue)
	}
	return Edge{Start: start, Finish: finish, Value: value, Index: idx}, nil
}

// Reversed returns the edge traversed in the opposite direction. Reversing
// an edge flips its orientation, so its value is negated along with
// swapping its endpoints.
func (e Edge) Reversed() Edge {
	return Edge{Start: e.Finish, Finish: e.Start, Value: -e.Value, Index: e.Index}
}

// String renders the edge as "start->finish(value)" for logging/debugging.
func (e Edge) String() string {
	return fmt.Sprintf("%s->%s(%g)", e.Start, e.Finish, e.Value)
}
