// Package extractor pulls individual rearrangement cycles out of a module's
// residual flow graph: it closes pseudo-telomeres so chromosome ends can
// participate in cycles, finds the minimum-flow closing edge for a start
// node, and repeatedly extracts cycles until the module's flow is exhausted.
package extractor

import (
	"fmt"
	"sort"

	"github.com/mfansler/cnavg-go/cactus"
)

// TelomereHub is the synthetic node id every pseudo-telomere is connected
// to. A pseudo-telomere is a node with a segment edge to its twin but no
// adjacency partner: the physical end of a linear chromosome. Routing every
// telomere through a single shared hub lets the cycle extractor treat
// "leaves the chromosome at one end, re-enters at another" as an ordinary
// cycle closure instead of a special case threaded through every other
// algorithm here.
const TelomereHub = "~telomere~"

// ClosePseudoTelomeres finds every node in g with a non-empty segment but no
// adjacency edges, and wires it to TelomereHub with weight equal to its
// segment flow. It is idempotent: running it twice leaves the graph
// unchanged the second time.
func ClosePseudoTelomeres(g *cactus.Cactus) error {
	ids := g.NodeIDs()
	sort.Strings(ids)

	hubExists := false
	for _, id := range ids {
		if id == TelomereHub {
			hubExists = true
			break
		}
	}
	if !hubExists {
		if err := g.AddNode(cactus.Node{ID: TelomereHub, Edges: map[string]float64{}}); err != nil {
			return fmt.Errorf("ClosePseudoTelomeres: %w", err)
		}
	}

	for _, id := range ids {
		if id == TelomereHub {
			continue
		}
		n, err := g.Node(id)
		if err != nil {
			return fmt.Errorf("ClosePseudoTelomeres: %w", err)
		}
		if len(n.Edges) > 0 || len(n.Segments) == 0 {
			continue
		}
		flow := 0.0
		for _, v := range n.Segments {
			flow += v
		}
		if flow <= 0 {
			continue
		}
		if err := g.SetEdge(id, TelomereHub, flow); err != nil {
			return fmt.Errorf("ClosePseudoTelomeres: %w", err)
		}
		if err := g.SetEdge(TelomereHub, id, flow); err != nil {
			return fmt.Errorf("ClosePseudoTelomeres: %w", err)
		}
	}
	return nil
}
