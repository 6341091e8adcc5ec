package cactus

import (
	"fmt"
	"sync"
)

// Cactus is the full normalized cactus-graph substrate: nodes with their
// adjacency/segment edges, plus the block/chain/net/group hierarchy that
// relates them. All mutating methods are safe for concurrent use; each
// method holds the read or write lock for its own call only, so a sequence
// of calls (such as one normalizer or cycle-extractor pass) is not atomic
// as a whole.
type Cactus struct {
	mu sync.RWMutex

	nodes  map[string]*Node
	blocks map[string]*Block
	chains map[string]*Chain
	nets   map[string]*Net
	groups map[string]*Group

	nodeBlock  map[string]string // node id -> owning block id
	blockChain map[string]string // block id -> owning chain id
	chainNet   map[string]string // chain id -> child net id (the net nested inside it, if any)
	netChain   map[string]string // net id -> parent chain id (inverse of Net.Parent, cached)
	groupNet   map[string]string // net id -> owning group id

	rootNet string
}

// New returns an empty Cactus graph.
func New() *Cactus {
	return &Cactus{
		nodes:      make(map[string]*Node),
		blocks:     make(map[string]*Block),
		chains:     make(map[string]*Chain),
		nets:       make(map[string]*Net),
		groups:     make(map[string]*Group),
		nodeBlock:  make(map[string]string),
		blockChain: make(map[string]string),
		chainNet:   make(map[string]string),
		netChain:   make(map[string]string),
		groupNet:   make(map[string]string),
	}
}

// AddNode inserts a node, erroring if its id is blank or already present.
func (c *Cactus) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.nodes[n.ID]; ok {
		return fmt.Errorf("AddNode(%s): %w", n.ID, ErrDuplicateID)
	}
	c.nodes[n.ID] = cloneNode(&n)
	return nil
}

// Node returns a copy of the node with the given id.
func (c *Cactus) Node(id string) (Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("Node(%s): %w", id, ErrNodeNotFound)
	}
	return *cloneNode(n), nil
}

// SetEdge sets the adjacency flow from a to b (directed; callers that want
// symmetric adjacency set both directions explicitly).
func (c *Cactus) SetEdge(a, b string, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.nodes[a]
	if !ok {
		return fmt.Errorf("SetEdge(%s,%s): %w", a, b, ErrNodeNotFound)
	}
	if _, ok := c.nodes[b]; !ok {
		return fmt.Errorf("SetEdge(%s,%s): %w", a, b, ErrNodeNotFound)
	}
	n.Edges[b] = value
	return nil
}

// RemoveEdgeFlow decrements the flow on the directed edge a->b by delta,
// deleting the edge outright if the residual would drop to or below zero.
func (c *Cactus) RemoveEdgeFlow(a, b string, delta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.nodes[a]
	if !ok {
		return fmt.Errorf("RemoveEdgeFlow(%s,%s): %w", a, b, ErrNodeNotFound)
	}
	v, ok := n.Edges[b]
	if !ok {
		return fmt.Errorf("RemoveEdgeFlow(%s,%s): %w", a, b, ErrNodeNotFound)
	}
	remaining := v - delta
	if remaining <= 0 {
		delete(n.Edges, b)
		return nil
	}
	n.Edges[b] = remaining
	return nil
}

// RemoveSegmentFlow decrements the residual copy number carried on node's
// segment edge to its twin by delta, scaling every ploidy index down
// proportionally so the per-index profile shape is preserved. Both node and
// its twin are updated, since a segment's copy number is shared by both
// ends. A delta at or beyond the node's total segment flow zeroes it out
// rather than going negative.
func (c *Cactus) RemoveSegmentFlow(node string, delta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.nodes[node]
	if !ok {
		return fmt.Errorf("RemoveSegmentFlow(%s): %w", node, ErrNodeNotFound)
	}
	total := 0.0
	for _, v := range n.Segments {
		total += v
	}
	if total <= 0 {
		return nil
	}
	factor := (total - delta) / total
	if factor < 0 {
		factor = 0
	}
	for i := range n.Segments {
		n.Segments[i] *= factor
	}
	if n.Twin != "" {
		if twin, ok := c.nodes[n.Twin]; ok {
			for i := range twin.Segments {
				twin.Segments[i] *= factor
			}
		}
	}
	return nil
}

// Neighbors returns a copy of node id's outgoing adjacency edges.
func (c *Cactus) Neighbors(id string) (map[string]float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nodes[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%s): %w", id, ErrNodeNotFound)
	}
	out := make(map[string]float64, len(n.Edges))
	for k, v := range n.Edges {
		out[k] = v
	}
	return out, nil
}

// NodeIDs returns every node id currently in the graph, in no particular order.
func (c *Cactus) NodeIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.nodes))
	for id := range c.nodes {
		ids = append(ids, id)
	}
	return ids
}

// AddBlock inserts a block and indexes its two boundary nodes against it.
func (c *Cactus) AddBlock(b Block) error {
	if b.ID == "" {
		return ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.blocks[b.ID]; ok {
		return fmt.Errorf("AddBlock(%s): %w", b.ID, ErrDuplicateID)
	}
	c.blocks[b.ID] = &b
	for _, end := range b.Ends {
		c.nodeBlock[end] = b.ID
	}
	return nil
}

// AddChain inserts a chain, wiring each of its blocks to it.
func (c *Cactus) AddChain(ch Chain) error {
	if ch.ID == "" {
		return ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.chains[ch.ID]; ok {
		return fmt.Errorf("AddChain(%s): %w", ch.ID, ErrDuplicateID)
	}
	c.chains[ch.ID] = &ch
	for _, blockID := range ch.Blocks {
		c.blockChain[blockID] = ch.ID
	}
	return nil
}

// AddNet inserts a net. If parent is non-empty, the net is recorded as the
// child of that chain.
func (c *Cactus) AddNet(n Net) error {
	if n.ID == "" {
		return ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.nets[n.ID]; ok {
		return fmt.Errorf("AddNet(%s): %w", n.ID, ErrDuplicateID)
	}
	c.nets[n.ID] = &n
	if n.Parent != "" {
		c.chainNet[n.Parent] = n.ID
		c.netChain[n.ID] = n.Parent
	} else {
		c.rootNet = n.ID
	}
	return nil
}

// AddGroup inserts a group and records which group owns each of its nets.
func (c *Cactus) AddGroup(g Group) error {
	if g.ID == "" {
		return ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.groups[g.ID]; ok {
		return fmt.Errorf("AddGroup(%s): %w", g.ID, ErrDuplicateID)
	}
	c.groups[g.ID] = &g
	for _, netID := range g.Nets {
		c.groupNet[netID] = g.ID
	}
	return nil
}

// Chain returns a copy of the chain with the given id.
func (c *Cactus) Chain(id string) (Chain, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ch, ok := c.chains[id]
	if !ok {
		return Chain{}, fmt.Errorf("Chain(%s): %w", id, ErrChainNotFound)
	}
	return *ch, nil
}

// Net returns a copy of the net with the given id.
func (c *Cactus) Net(id string) (Net, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nets[id]
	if !ok {
		return Net{}, fmt.Errorf("Net(%s): %w", id, ErrNetNotFound)
	}
	return *n, nil
}

// RootNet returns the id of the graph's root net.
func (c *Cactus) RootNet() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rootNet
}

// ChainIDs returns every chain id in the graph, in no particular order.
func (c *Cactus) ChainIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.chains))
	for id := range c.chains {
		ids = append(ids, id)
	}
	return ids
}

// NetIDs returns every net id in the graph, in no particular order.
func (c *Cactus) NetIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, 0, len(c.nets))
	for id := range c.nets {
		ids = append(ids, id)
	}
	return ids
}

// ChildNet returns the id of the net nested inside chain id, and whether one exists.
func (c *Cactus) ChildNet(chainID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.chainNet[chainID]
	return id, ok
}

// NodeNet returns the id of the net that owns the chain containing node id's block.
func (c *Cactus) NodeNet(nodeID string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	blockID, ok := c.nodeBlock[nodeID]
	if !ok {
		return "", fmt.Errorf("NodeNet(%s): %w", nodeID, ErrNodeNotFound)
	}
	chainID, ok := c.blockChain[blockID]
	if !ok {
		return "", fmt.Errorf("NodeNet(%s): %w", nodeID, ErrChainNotFound)
	}
	for netID, net := range c.nets {
		for _, ch := range net.Chains {
			if ch == chainID {
				return netID, nil
			}
		}
	}
	return "", fmt.Errorf("NodeNet(%s): %w", nodeID, ErrNetNotFound)
}

// Block returns a copy of the block with the given id.
func (c *Cactus) Block(id string) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.blocks[id]
	if !ok {
		return Block{}, fmt.Errorf("Block(%s): %w", id, ErrBlockNotFound)
	}
	return *b, nil
}

// BlockLength returns the genomic length of block id.
func (c *Cactus) BlockLength(id string) (int, error) {
	b, err := c.Block(id)
	if err != nil {
		return 0, err
	}
	return b.Length, nil
}

// BlockCopyNumber returns the copy number block id carries at ploidyIdx.
func (c *Cactus) BlockCopyNumber(id string, ploidyIdx int) (float64, error) {
	b, err := c.Block(id)
	if err != nil {
		return 0, err
	}
	if ploidyIdx < 0 || ploidyIdx >= len(b.CopyNumbers) {
		return 0, fmt.Errorf("BlockCopyNumber(%s,%d): %w", id, ploidyIdx, ErrNoPloidy)
	}
	return b.CopyNumbers[ploidyIdx], nil
}

// BlockNets returns the ids of the nets block id's head and tail boundaries
// sit in.
func (c *Cactus) BlockNets(id string) (start, end string, err error) {
	b, err := c.Block(id)
	if err != nil {
		return "", "", err
	}
	return b.StartNet, b.EndNet, nil
}

// MergeNets replaces every net named in ids with a single new net whose
// child-chain list is the union of theirs, and repoints every block
// boundary that referenced one of the old ids at the new one. It returns
// the new net's id. Passing fewer than two distinct ids is a no-op that
// returns the single id unchanged.
func (c *Cactus) MergeNets(ids []string) (string, error) {
	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			unique[id] = struct{}{}
		}
	}
	if len(unique) < 2 {
		for id := range unique {
			return id, nil
		}
		return "", nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var chains []string
	seenChain := make(map[string]struct{})
	wasRoot := false
	var parent string
	for id := range unique {
		n, ok := c.nets[id]
		if !ok {
			return "", fmt.Errorf("MergeNets(%s): %w", id, ErrNetNotFound)
		}
		for _, ch := range n.Chains {
			if _, dup := seenChain[ch]; !dup {
				seenChain[ch] = struct{}{}
				chains = append(chains, ch)
			}
		}
		if id == c.rootNet {
			wasRoot = true
		}
		if n.Parent != "" {
			parent = n.Parent
		}
	}

	newID := "net:" + joinSorted(unique)
	merged := Net{ID: newID, Chains: chains, Parent: parent}
	c.nets[newID] = &merged
	if parent != "" {
		c.chainNet[parent] = newID
		c.netChain[newID] = parent
	}
	if wasRoot {
		c.rootNet = newID
	}

	for id := range unique {
		delete(c.nets, id)
		delete(c.netChain, id)
		if owner, ok := c.groupNet[id]; ok {
			c.groupNet[newID] = owner
			delete(c.groupNet, id)
		}
	}
	for chainID, netID := range c.chainNet {
		if _, ok := unique[netID]; ok {
			c.chainNet[chainID] = newID
		}
	}
	for _, b := range c.blocks {
		if _, ok := unique[b.StartNet]; ok {
			b.StartNet = newID
		}
		if _, ok := unique[b.EndNet]; ok {
			b.EndNet = newID
		}
	}
	return newID, nil
}

func joinSorted(ids map[string]struct{}) string {
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	// deterministic, human-legible id without importing sort for two cases
	// normalize ever merges (2 or 3 nets): simple insertion sort.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	joined := ""
	for i, id := range out {
		if i > 0 {
			joined += "+"
		}
		joined += id
	}
	return joined
}

// ReplaceChainBlocks splices a single block into chainID's block list in
// place of the half-open range [from,to), re-indexing nodeBlock/blockChain
// for the change. The blocks previously at that range are dropped from the
// graph entirely: normalization's pinch uses this to collapse a segment
// that has just had its surrounding nets merged into one fused block.
func (c *Cactus) ReplaceChainBlocks(chainID string, from, to int, merged Block) error {
	if merged.ID == "" {
		return ErrEmptyID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.chains[chainID]
	if !ok {
		return fmt.Errorf("ReplaceChainBlocks(%s): %w", chainID, ErrChainNotFound)
	}
	if from < 0 || to > len(ch.Blocks) || from >= to {
		return fmt.Errorf("ReplaceChainBlocks(%s,%d,%d): %w", chainID, from, to, ErrNoPloidy)
	}

	for _, old := range ch.Blocks[from:to] {
		delete(c.blocks, old)
		delete(c.blockChain, old)
	}
	c.blocks[merged.ID] = &merged
	for _, end := range merged.Ends {
		c.nodeBlock[end] = merged.ID
	}
	c.blockChain[merged.ID] = chainID

	next := make([]string, 0, len(ch.Blocks)-(to-from)+1)
	next = append(next, ch.Blocks[:from]...)
	next = append(next, merged.ID)
	next = append(next, ch.Blocks[to:]...)
	ch.Blocks = next
	return nil
}

// Ploidy returns the number of parallel alleles a chain carries, i.e. the
// length of the Segments slice on its boundary nodes.
func (c *Cactus) Ploidy(chainID string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ch, ok := c.chains[chainID]
	if !ok {
		return 0, fmt.Errorf("Ploidy(%s): %w", chainID, ErrChainNotFound)
	}
	if len(ch.Ends) == 0 {
		return 0, nil
	}
	n, ok := c.nodes[ch.Ends[0]]
	if !ok {
		return 0, fmt.Errorf("Ploidy(%s): %w", chainID, ErrNodeNotFound)
	}
	return len(n.Segments), nil
}

// CopyNumber returns the copy number of node id at the given ploidy index.
func (c *Cactus) CopyNumber(nodeID string, ploidyIdx int) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nodes[nodeID]
	if !ok {
		return 0, fmt.Errorf("CopyNumber(%s): %w", nodeID, ErrNodeNotFound)
	}
	if ploidyIdx < 0 || ploidyIdx >= len(n.Segments) {
		return 0, fmt.Errorf("CopyNumber(%s,%d): %w", nodeID, ploidyIdx, ErrNoPloidy)
	}
	return n.Segments[ploidyIdx], nil
}

// GroupOf returns the id of the group owning net id, and whether one exists.
func (c *Cactus) GroupOf(netID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.groupNet[netID]
	return id, ok
}

// SetChainBlocks replaces the block list of an existing chain, re-indexing
// blockChain for the new list. Used by the normalizer to pinch adjacent
// blocks together.
func (c *Cactus) SetChainBlocks(chainID string, blocks []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, ok := c.chains[chainID]
	if !ok {
		return fmt.Errorf("SetChainBlocks(%s): %w", chainID, ErrChainNotFound)
	}
	for _, old := range ch.Blocks {
		delete(c.blockChain, old)
	}
	ch.Blocks = append([]string{}, blocks...)
	for _, b := range blocks {
		c.blockChain[b] = chainID
	}
	return nil
}

// ChainsInNet returns a copy of net id's child chain list.
func (c *Cactus) ChainsInNet(netID string) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.nets[netID]
	if !ok {
		return nil, fmt.Errorf("ChainsInNet(%s): %w", netID, ErrNetNotFound)
	}
	out := make([]string, len(n.Chains))
	copy(out, n.Chains)
	return out, nil
}
