package extractor

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/mfansler/cnavg-go/edgeflow"
	"github.com/mfansler/cnavg-go/module"
	"github.com/mfansler/cnavg-go/phasedpath"
)

// ErrNoCycle indicates no closed cycle could be found through start: every
// outgoing edge from start either has no flow or no path back.
var ErrNoCycle = errors.New("extractor: no cycle through start")

// ExtractCycle finds the minimum-distance cycle through start: over every
// outgoing edge from start, it searches for the shortest phased path back
// to start on the phase that makes the walk close consistently, then keeps
// the candidate with the smallest total path distance. Ties are broken
// uniformly at random via r, matching the extractor's job of not imposing
// an arbitrary deterministic bias among equally good candidates.
func ExtractCycle(m *module.Module, start string, r *rand.Rand) (edgeflow.Cycle, error) {
	firstEdges := m.Edges(start)
	if len(firstEdges) == 0 {
		return edgeflow.Cycle{}, fmt.Errorf("ExtractCycle(%s): %w", start, ErrNoCycle)
	}
	// Sort for determinism before randomized tie-break.
	sort.Slice(firstEdges, func(i, j int) bool {
		if firstEdges[i].To != firstEdges[j].To {
			return firstEdges[i].To < firstEdges[j].To
		}
		return firstEdges[i].Kind < firstEdges[j].Kind
	})

	type candidate struct {
		firstEdge phasedpath.Edge
		path      []phasedpath.State
		total     float64
	}
	var best []candidate
	bestDist := -1.0

	for _, e := range firstEdges {
		closePhase := phasedpath.Even
		if e.Weight < 0 {
			closePhase = phasedpath.Odd
		}
		res, err := phasedpath.Search(m, phasedpath.WithSource(e.To), phasedpath.WithStartPhase(closePhase), phasedpath.WithReturnPaths())
		if err != nil {
			return edgeflow.Cycle{}, fmt.Errorf("ExtractCycle(%s): %w", start, err)
		}
		d, ok := res.DistanceTo(start, phasedpath.Even)
		if !ok {
			continue
		}
		total := e.Weight + d
		if bestDist < 0 || total < bestDist {
			bestDist = total
			path, _ := res.PathTo(start, phasedpath.Even)
			best = []candidate{{firstEdge: e, path: path, total: total}}
		} else if total == bestDist {
			path, _ := res.PathTo(start, phasedpath.Even)
			best = append(best, candidate{firstEdge: e, path: path, total: total})
		}
	}
	if len(best) == 0 {
		return edgeflow.Cycle{}, fmt.Errorf("ExtractCycle(%s): %w", start, ErrNoCycle)
	}
	chosen := best[0]
	if len(best) > 1 {
		chosen = best[r.Intn(len(best))]
	}

	edges := []edgeflow.Edge{}
	firstIdx := edgeflow.Index(-1)
	if chosen.firstEdge.Kind == phasedpath.SegmentEdge {
		firstIdx = 0
	}
	ee, err := edgeflow.NewEdge(start, chosen.firstEdge.To, chosen.firstEdge.Weight, firstIdx)
	if err != nil {
		return edgeflow.Cycle{}, fmt.Errorf("ExtractCycle(%s): %w", start, err)
	}
	edges = append(edges, ee)

	for i := 0; i+1 < len(chosen.path); i++ {
		cur, next := chosen.path[i], chosen.path[i+1]
		w, kind, ok := findEdge(m, cur.Node, next.Node)
		if !ok {
			return edgeflow.Cycle{}, fmt.Errorf("ExtractCycle(%s): internal: missing edge %s->%s", start, cur.Node, next.Node)
		}
		idx := edgeflow.Index(-1)
		if kind == phasedpath.SegmentEdge {
			idx = 0
		}
		e, err := edgeflow.NewEdge(cur.Node, next.Node, w, idx)
		if err != nil {
			return edgeflow.Cycle{}, fmt.Errorf("ExtractCycle(%s): %w", start, err)
		}
		edges = append(edges, e)
	}

	cycle, err := edgeflow.NewCycle(edges)
	if err != nil {
		return edgeflow.Cycle{}, fmt.Errorf("ExtractCycle(%s): %w", start, err)
	}
	return cycle, nil
}

func findEdge(m *module.Module, from, to string) (float64, phasedpath.EdgeKind, bool) {
	for _, e := range m.Edges(from) {
		if e.To == to {
			return e.Weight, e.Kind, true
		}
	}
	return 0, 0, false
}

// ExtractAndRemove extracts the minimum-distance cycle through start, then
// removes its flow value from every edge it used, returning the extracted
// cycle.
func ExtractAndRemove(m *module.Module, start string, r *rand.Rand) (edgeflow.Cycle, error) {
	cycle, err := ExtractCycle(m, start, r)
	if err != nil {
		return edgeflow.Cycle{}, err
	}
	flow := cycle.Value()
	for _, e := range cycle.Edges() {
		if err := m.RemoveFlow(e.Start, e.Finish, flow); err != nil {
			return edgeflow.Cycle{}, fmt.Errorf("ExtractAndRemove: %w", err)
		}
	}
	return cycle, nil
}
