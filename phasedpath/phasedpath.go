package phasedpath

import (
	"container/heap"
	"fmt"
	"math"
)

// Result holds the even/odd distances computed by Search, plus optional
// predecessor links for path reconstruction.
type Result struct {
	dist map[State]float64
	pred map[State]State
}

// DistanceTo returns the shortest phased distance to (node, phase), and
// whether that state was reached at all.
func (r *Result) DistanceTo(node string, phase Phase) (float64, bool) {
	d, ok := r.dist[State{Node: node, Phase: phase}]
	return d, ok
}

// PathTo reconstructs the shortest walk (as a sequence of states, source
// first) to (node, phase). It returns false if the state was unreached or
// WithReturnPaths was not set.
func (r *Result) PathTo(node string, phase Phase) ([]State, bool) {
	if r.pred == nil {
		return nil, false
	}
	target := State{Node: node, Phase: phase}
	if _, ok := r.dist[target]; !ok {
		return nil, false
	}
	var path []State
	cur := target
	for {
		path = append([]State{cur}, path...)
		prev, ok := r.pred[cur]
		if !ok {
			break
		}
		cur = prev
	}
	return path, true
}

// nodeItem is one entry in the search heap: a candidate distance to a state
// at the time it was pushed. Entries become stale when a state is finalized
// with a smaller distance later on; rather than mutate or remove stale
// entries in place, the runner marks them via version and skips them when
// popped (lazy decrease-key). seq is the push order; entries with equal
// dist pop first-in first-out.
type nodeItem struct {
	state   State
	dist    float64
	version int
	seq     int
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	return pq[i].dist < pq[j].dist || (pq[i].dist == pq[j].dist && pq[i].seq < pq[j].seq)
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Search computes shortest phased distances from Options.Source (on
// Options.StartPhase) to every reachable (node, phase) state in g.
func Search(g Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Source == "" {
		return nil, ErrEmptySource
	}

	dist := make(map[State]float64)
	version := make(map[State]int)
	var pred map[State]State
	if o.ReturnPaths {
		pred = make(map[State]State)
	}

	start := State{Node: o.Source, Phase: o.StartPhase}
	dist[start] = 0
	version[start] = 1

	pq := &nodePQ{{state: start, dist: 0, version: 1}}
	heap.Init(pq)

	hops := make(map[State]int)
	hops[start] = 0
	seq := 0

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		if item.version != version[item.state] {
			continue // stale entry, superseded by a shorter path
		}
		u := item.state
		if o.MaxHops > 0 && hops[u] >= o.MaxHops {
			continue
		}
		for _, e := range g.Edges(u.Node) {
			if e.Weight == 0 {
				return nil, fmt.Errorf("Search: edge %s->%s: %w", u.Node, e.To, ErrZeroWeight)
			}
			nextPhase := u.Phase
			if e.Weight < 0 {
				nextPhase = u.Phase.Other()
			}
			v := State{Node: e.To, Phase: nextPhase}
			nd := item.dist + math.Abs(e.Weight)
			cur, known := dist[v]
			if !known || nd < cur {
				dist[v] = nd
				version[v]++
				hops[v] = hops[u] + 1
				if pred != nil {
					pred[v] = u
				}
				seq++
				heap.Push(pq, &nodeItem{state: v, dist: nd, version: version[v], seq: seq})
			}
		}
	}

	return &Result{dist: dist, pred: pred}, nil
}
