// Package lindecomp implements the linear-decomposition oracle: given a set
// of reference cycles, it decides whether a candidate cycle is a
// non-negative integer combination of them.
package lindecomp

import "github.com/mfansler/cnavg-go/edgeflow"

// elementKey identifies one element of the signed-edge alphabet a cycle is
// built from. Segment and adjacency edges are undirected for this purpose:
// an edge and its reverse map to the same element, so the key normalizes
// the edge's two endpoints into a canonical order.
func elementKey(e edgeflow.Edge) string {
	a, b := e.Start, e.Finish
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

// Mapping assigns each distinct element seen across a set of reference
// cycles a stable row index, so every cycle can be expressed as a vector
// over the same coordinate space.
type Mapping struct {
	index map[string]int
	order []string
}

// NewMapping builds a Mapping from the union of elements in cycles.
func NewMapping(cycles []edgeflow.Cycle) *Mapping {
	m := &Mapping{index: make(map[string]int)}
	for _, c := range cycles {
		for _, e := range c.Edges() {
			k := elementKey(e)
			if _, ok := m.index[k]; !ok {
				m.index[k] = len(m.order)
				m.order = append(m.order, k)
			}
		}
	}
	return m
}

// Len returns the number of distinct elements in the mapping.
func (m *Mapping) Len() int { return len(m.order) }

// IndexOf returns the row index of e's element and whether it is known to
// the mapping.
func (m *Mapping) IndexOf(e edgeflow.Edge) (int, bool) {
	idx, ok := m.index[elementKey(e)]
	return idx, ok
}

// UnitaryVector expresses cycle as a vector over m's coordinate space: +1
// at the element introduced by an even-position edge, -1 at an odd-position
// edge, matching the alternating sign convention a signed cycle carries.
// It returns false if cycle references an element absent from m.
func (m *Mapping) UnitaryVector(cycle edgeflow.Cycle) ([]float64, bool) {
	v := make([]float64, m.Len())
	for i, e := range cycle.Edges() {
		idx, ok := m.IndexOf(e)
		if !ok {
			return nil, false
		}
		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}
		v[idx] += sign
	}
	return v, true
}
