package simplify

import (
	"sort"

	"github.com/mfansler/cnavg-go/edgeflow"
)

// overlapKey canonically identifies a physical edge slot independent of the
// direction it was traversed: the same segment or adjacency edge walked
// forward and walked backward produce the same key.
type overlapKey struct {
	lo, hi string
	idx    edgeflow.Index
}

func adjacencyKey(e edgeflow.Edge) overlapKey {
	a, b := e.Start, e.Finish
	if b < a {
		a, b = b, a
	}
	return overlapKey{a, b, e.Index}
}

// selfOverlap marks two positions in a cycle's edge sequence that traverse
// the same physical edge slot: the walk revisits it, directly or in
// reverse, rather than passing through once.
type selfOverlap struct {
	localCut, remoteCut int
}

// cycleSelfOverlaps finds, for every overlapKey seen more than once, each
// pair of consecutive positions that share it, sorted by the earlier
// position. A walk that never revisits a
// physical edge slot has none.
func cycleSelfOverlaps(edges []edgeflow.Edge) []selfOverlap {
	positions := make(map[overlapKey][]int)
	for i, e := range edges {
		positions[adjacencyKey(e)] = append(positions[adjacencyKey(e)], i)
	}
	var out []selfOverlap
	for _, idxs := range positions {
		if len(idxs) < 2 {
			continue
		}
		sort.Ints(idxs)
		for i := 0; i < len(idxs)-1; i++ {
			out = append(out, selfOverlap{idxs[i], idxs[i+1]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].localCut < out[j].localCut })
	return out
}

// destructiveOverlaps narrows cycleSelfOverlaps to the pairs whose two
// edges carry opposite signed Value: a genuine redundant repeat, as opposed
// to an even overlap (see overlap.go), which shares sign instead.
func destructiveOverlaps(edges []edgeflow.Edge) []selfOverlap {
	var out []selfOverlap
	for _, ov := range cycleSelfOverlaps(edges) {
		if edges[ov.localCut].Value == -edges[ov.remoteCut].Value {
			out = append(out, ov)
		}
	}
	return out
}

// isDirectRepeat reports whether the two positions of ov traverse the
// shared edge slot in the same direction (a tandem duplication of the
// intervening walk, cleanly splittable into two independent sub-walks), as
// opposed to a reverse repeat that traverses it in opposite directions and
// has no consistent way to assign the shared flow between two sub-cycles.
func isDirectRepeat(edges []edgeflow.Edge, ov selfOverlap) bool {
	return edges[ov.localCut].Start == edges[ov.remoteCut].Start
}

// splitDirectRedundancy splits edges at a direct repeat into the two
// independent closed sub-walks that share only the repeated node: the inner
// walk [localCut,remoteCut) and the outer walk [remoteCut,n)+[0,localCut).
func splitDirectRedundancy(edges []edgeflow.Edge, ov selfOverlap) [][]edgeflow.Edge {
	inner := append([]edgeflow.Edge{}, edges[ov.localCut:ov.remoteCut]...)
	outer := append([]edgeflow.Edge{}, edges[ov.remoteCut:]...)
	outer = append(outer, edges[:ov.localCut]...)
	return [][]edgeflow.Edge{inner, outer}
}

// SplitRedundancy splits a cycle at every direct self-overlap into
// independent sub-cycles, recursing until none remain. A reverse (inverted)
// repeat has no consistent way to assign shared flow between two
// sub-cycles without guessing at the underlying rearrangement, so a cycle
// whose only overlaps are reverse repeats is dropped instead of split
// arbitrarily.
//
// SplitRedundancy is idempotent on a cycle with no self-overlap: it returns
// the cycle unchanged as the sole element of the result.
func SplitRedundancy(c edgeflow.Cycle) []edgeflow.Cycle {
	edges := c.Edges()
	overlaps := destructiveOverlaps(edges)
	if len(overlaps) == 0 {
		return []edgeflow.Cycle{c}
	}
	var ov selfOverlap
	found := false
	for _, o := range overlaps {
		if isDirectRepeat(edges, o) {
			ov, found = o, true
			break
		}
	}
	if !found {
		return nil
	}

	var out []edgeflow.Cycle
	for _, sub := range splitDirectRedundancy(edges, ov) {
		if len(sub) == 0 {
			continue
		}
		cyc, err := edgeflow.NewCycle(sub)
		if err != nil {
			continue
		}
		out = append(out, SplitRedundancy(cyc)...)
	}
	return out
}
