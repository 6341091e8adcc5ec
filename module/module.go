// Package module adapts a cactus.Cactus graph into the alternating
// adjacency/segment edge view that phasedpath.Search and the extractor
// operate on, and maintains the node-pair adjacency table used to pick the
// next edge during cycle extraction.
package module

import (
	"errors"
	"math"
	"sort"

	"github.com/mfansler/cnavg-go/cactus"
	"github.com/mfansler/cnavg-go/config"
	"github.com/mfansler/cnavg-go/phasedpath"
)

// ErrNodeNotFound indicates a node id has no entry in the underlying cactus graph.
var ErrNodeNotFound = errors.New("module: node not found")

// Module wraps a single cactus net's residual flow graph: the set of nodes
// reachable from that net's boundary, their adjacency edges, and the
// segment edges linking each node to its twin.
type Module struct {
	g     *cactus.Cactus
	nodes map[string]bool
}

// New builds a Module over every node reachable from seed nodes within g.
// Reachability is computed once at construction time: the node membership
// does not change when g is mutated afterward (e.g. via RemoveFlow), while
// edge and flow queries always re-read current values from g directly.
func New(g *cactus.Cactus, seeds []string) *Module {
	nodes := make(map[string]bool)
	queue := append([]string{}, seeds...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if nodes[id] {
			continue
		}
		nodes[id] = true
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		if n.Twin != "" && !nodes[n.Twin] {
			queue = append(queue, n.Twin)
		}
		for neigh := range n.Edges {
			if !nodes[neigh] {
				queue = append(queue, neigh)
			}
		}
	}
	return &Module{g: g, nodes: nodes}
}

// realValue clamps a flow value to zero if it is at or below the minimum
// flow threshold, treating numerically extinguished flow as absent.
func realValue(v float64) float64 {
	if v <= config.MinFlow {
		return 0
	}
	return v
}

// Nodes returns the module's node ids in sorted order, for deterministic
// iteration.
func (m *Module) Nodes() []string {
	out := make([]string, 0, len(m.nodes))
	for id := range m.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether id belongs to this module.
func (m *Module) Contains(id string) bool {
	return m.nodes[id]
}

// Edges implements phasedpath.Graph: node's twin (via a segment edge) plus
// every adjacency neighbor with real residual flow. Segment edges are
// reported with a negative weight and adjacency edges with a positive one:
// this is the signed orientation a cycle's value propagates through, not
// just a structural label, so a walk that crosses a segment edge always
// flips phase and one that stays on an adjacency edge never does.
func (m *Module) Edges(node string) []phasedpath.Edge {
	n, err := m.g.Node(node)
	if err != nil {
		return nil
	}
	var out []phasedpath.Edge
	if n.Twin != "" {
		seg, serr := m.segmentValue(node)
		if serr == nil && seg > 0 {
			out = append(out, phasedpath.Edge{To: n.Twin, Weight: -seg, Kind: phasedpath.SegmentEdge})
		}
	}
	neighbors := make([]string, 0, len(n.Edges))
	for neigh := range n.Edges {
		neighbors = append(neighbors, neigh)
	}
	sort.Strings(neighbors)
	for _, neigh := range neighbors {
		v := realValue(n.Edges[neigh])
		if v > 0 {
			out = append(out, phasedpath.Edge{To: neigh, Weight: v, Kind: phasedpath.AdjacencyEdge})
		}
	}
	return out
}

// segmentValue returns the total residual copy number on node's segment
// edge to its twin, summed across ploidy indices.
func (m *Module) segmentValue(node string) (float64, error) {
	n, err := m.g.Node(node)
	if err != nil {
		return 0, ErrNodeNotFound
	}
	total := 0.0
	for _, v := range n.Segments {
		total += v
	}
	return realValue(total), nil
}

// AdjacencyValue returns the real-valued adjacency flow from a to b, or 0 if
// none exists or it has been extinguished.
func (m *Module) AdjacencyValue(a, b string) float64 {
	n, err := m.g.Node(a)
	if err != nil {
		return 0
	}
	return realValue(n.Edges[b])
}

// SegmentValue returns the real-valued segment flow remaining on node's
// edge to its twin.
func (m *Module) SegmentValue(node string) float64 {
	v, err := m.segmentValue(node)
	if err != nil {
		return 0
	}
	return v
}

// RemoveFlow subtracts |delta| worth of residual flow from edge a->b in the
// underlying cactus graph. If a and b are twins, this is a segment edge and
// the reduction is applied to their shared copy number; otherwise it is an
// adjacency edge and both directions (a->b and b->a) are decremented, since
// adjacency edges are symmetric. delta's sign is irrelevant: orientation
// lives in the caller's Edge.Value, not in how much flow is consumed.
func (m *Module) RemoveFlow(a, b string, delta float64) error {
	delta = math.Abs(delta)
	if twin, err := m.Twin(a); err == nil && twin == b {
		return m.g.RemoveSegmentFlow(a, delta)
	}
	if err := m.g.RemoveEdgeFlow(a, b, delta); err != nil {
		return err
	}
	return m.g.RemoveEdgeFlow(b, a, delta)
}

// Twin returns the twin endpoint of node, per the underlying cactus graph.
func (m *Module) Twin(node string) (string, error) {
	n, err := m.g.Node(node)
	if err != nil {
		return "", ErrNodeNotFound
	}
	return n.Twin, nil
}

// TotalFlow sums the real-valued flow across every edge (segment and
// adjacency) in the module, counting each undirected adjacency edge once.
func (m *Module) TotalFlow() float64 {
	total := 0.0
	seen := make(map[[2]string]bool)
	seenSegment := make(map[string]bool)
	for _, id := range m.Nodes() {
		n, err := m.g.Node(id)
		if err != nil {
			continue
		}
		if n.Twin != "" && !seenSegment[n.Twin] {
			seenSegment[id] = true
			total += m.SegmentValue(id)
		}
		for neigh, v := range n.Edges {
			key := [2]string{id, neigh}
			rev := [2]string{neigh, id}
			if seen[key] || seen[rev] {
				continue
			}
			seen[key] = true
			total += realValue(v)
		}
	}
	return total
}
