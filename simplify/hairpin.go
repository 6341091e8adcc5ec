// Package simplify reduces a raw extracted cycle to the canonical form the
// history assembler expects: hairpins collapsed, destructive (opposite-sign)
// self-overlaps split into independent sub-cycles, and even (same-sign)
// self-overlaps cut into their two sub-walks. The three passes run in that fixed order, since
// each can expose overlap structure the previous pass did not see.
package simplify

import "github.com/mfansler/cnavg-go/edgeflow"

// destructiveOverlap reports whether a and b are the same physical edge
// traversed in opposite directions: same endpoints reversed, same Index,
// and exactly opposite signed Value. Matching endpoints alone isn't
// enough — two distinct edges between the same node pair can share
// endpoints without being the same underlying edge walked backward.
func destructiveOverlap(a, b edgeflow.Edge) bool {
	return a.Start == b.Finish && a.Finish == b.Start &&
		a.Index == b.Index && a.Value == -b.Value
}

// detectHairpin returns the position of the first edge whose immediate
// successor destructively overlaps it.
func detectHairpin(edges []edgeflow.Edge) (int, bool) {
	n := len(edges)
	for i := 0; i < n; i++ {
		if destructiveOverlap(edges[i], edges[(i+1)%n]) {
			return i, true
		}
	}
	return 0, false
}

// hairpinLength finds how far a destructive overlap at index extends
// outward symmetrically: the walk out from index and the walk back from
// index+1 must keep destructively overlapping, step for step, until they
// stop (or meet in the middle, in which case the whole cycle is one
// symmetric hairpin).
func hairpinLength(edges []edgeflow.Edge, index int) int {
	n := len(edges)
	maxLen := n / 2
	for length := 1; length < maxLen; length++ {
		a := edges[((index-length)%n+n)%n]
		b := edges[(index+1+length)%n]
		if !destructiveOverlap(a, b) {
			return length
		}
	}
	return maxLen
}

// rotate returns edges read starting from position k, wrapping around.
func rotate(edges []edgeflow.Edge, k int) []edgeflow.Edge {
	n := len(edges)
	out := make([]edgeflow.Edge, n)
	for i := 0; i < n; i++ {
		out[i] = edges[(k+i)%n]
	}
	return out
}

// RemoveHairpins repeatedly strips the maximal destructive-overlap hairpin
// found in cycle until none remain. A hairpin that turns out to span half
// the cycle or more annihilates the whole thing, since there is nothing
// left outside the symmetric out-and-back; RemoveHairpins then returns the
// zero Cycle, which callers treat as "this event vanished".
func RemoveHairpins(c edgeflow.Cycle) edgeflow.Cycle {
	cur := c
	for {
		edges := cur.Edges()
		index, ok := detectHairpin(edges)
		if !ok {
			return cur
		}
		n := len(edges)
		length := hairpinLength(edges, index)
		if length >= n/2 {
			return edgeflow.Cycle{}
		}
		kept := rotate(edges, (index+1)%n)[length : n-length]
		if len(kept) == 0 {
			return edgeflow.Cycle{}
		}
		next, err := edgeflow.NewCycle(kept)
		if err != nil {
			// Stripping a verified destructive-overlap pair always preserves
			// closure; unreachable in practice, but don't propagate a broken
			// cycle if it somehow happens.
			return cur
		}
		cur = next
	}
}
