package simplify

import "github.com/mfansler/cnavg-go/edgeflow"

// isEvenOverlap reports whether the two positions of ov enter their shared
// node from the same direction: the same-sign counterpart to a destructive
// overlap (redundancy.go), which enters from opposite directions instead.
// An even overlap has nothing to cancel, but it does mark a point where the
// walk crosses itself and can be cut into two independent closed sub-walks.
func isEvenOverlap(edges []edgeflow.Edge, ov selfOverlap) bool {
	return edges[ov.localCut].Start == edges[ov.remoteCut].Start &&
		edges[ov.localCut].Value == edges[ov.remoteCut].Value
}

// breakEvenOverlap cuts edges at an even overlap into its two independent
// closed sub-walks, sharing only the revisited node: the inner walk
// [localCut,remoteCut) and the outer walk [remoteCut,n)+[0,localCut).
func breakEvenOverlap(edges []edgeflow.Edge, ov selfOverlap) [][]edgeflow.Edge {
	inner := append([]edgeflow.Edge{}, edges[ov.localCut:ov.remoteCut]...)
	outer := append([]edgeflow.Edge{}, edges[ov.remoteCut:]...)
	outer = append(outer, edges[:ov.localCut]...)
	return [][]edgeflow.Edge{inner, outer}
}

// BreakEvenOverlaps cuts c at its first even self-overlap, if any, into the
// two sub-cycles that share only the revisited node. The bool result
// reports whether a cut was made; callers re-run it (and RemoveHairpins and
// SplitRedundancy) until the cycle set stops changing, since cutting one
// overlap can expose another.
func BreakEvenOverlaps(c edgeflow.Cycle) ([]edgeflow.Cycle, bool) {
	edges := c.Edges()
	for _, ov := range cycleSelfOverlaps(edges) {
		if !isEvenOverlap(edges, ov) {
			continue
		}
		var out []edgeflow.Cycle
		for _, sub := range breakEvenOverlap(edges, ov) {
			if len(sub) == 0 {
				continue
			}
			cyc, err := edgeflow.NewCycle(sub)
			if err != nil {
				continue
			}
			out = append(out, cyc)
		}
		return out, true
	}
	return []edgeflow.Cycle{c}, false
}

// Stabilize repeatedly applies RemoveHairpins, SplitRedundancy and
// BreakEvenOverlaps across a worklist of cycles until none of them change
// anything, in the fixed three-pass order hairpin.go documents: cutting
// one overlap can expose a hairpin or another overlap that was invisible
// before the cut.
func Stabilize(c edgeflow.Cycle) []edgeflow.Cycle {
	pending := []edgeflow.Cycle{c}
	var out []edgeflow.Cycle
	for len(pending) > 0 {
		cur := pending[0]
		pending = pending[1:]

		reduced := RemoveHairpins(cur)
		if reduced.Len() == 0 {
			continue
		}

		if len(destructiveOverlaps(reduced.Edges())) > 0 {
			pending = append(pending, SplitRedundancy(reduced)...)
			continue
		}

		if split, didBreak := BreakEvenOverlaps(reduced); didBreak {
			pending = append(pending, split...)
			continue
		}

		out = append(out, reduced)
	}
	return out
}
