package cactus

// Node is one signed endpoint of a genomic segment (e.g. the head or tail of
// a breakpoint). Twin names the complementary endpoint of the same segment;
// Partner names the node this one is adjacent to across a structural
// junction, if any. Edges holds residual adjacency flow keyed by neighbor
// node id; Segments holds the per-ploidy-index copy number carried on the
// segment edge to Twin.
type Node struct {
	ID       string
	Twin     string
	Partner  string
	Edges    map[string]float64
	Segments []float64
}

// cloneNode returns a deep copy of n so callers mutating the copy never
// perturb the graph's internal state.
func cloneNode(n *Node) *Node {
	edges := make(map[string]float64, len(n.Edges))
	for k, v := range n.Edges {
		edges[k] = v
	}
	segs := make([]float64, len(n.Segments))
	copy(segs, n.Segments)
	return &Node{ID: n.ID, Twin: n.Twin, Partner: n.Partner, Edges: edges, Segments: segs}
}

// Block is a maximal run of parallel chain structure between two boundary
// nodes: the elementary unit a Chain is built out of. StartNet and EndNet
// name the nets its head and tail boundary sit in; for most blocks this is
// the chain's own parent net, but interior blocks of a multi-block chain
// each sit between two distinct nets, which is what lets normalization
// pinch a contiguous run of them without touching the rest of the chain.
// Length and CopyNumbers carry the block's genomic length and its
// per-ploidy-index copy number, the quantities normalization compares.
type Block struct {
	ID          string
	Ends        [2]string
	StartNet    string
	EndNet      string
	Length      int
	CopyNumbers []float64
}

// Chain is an ordered sequence of blocks running between the two boundary
// nodes of the net it belongs to.
type Chain struct {
	ID     string
	Blocks []string
	Ends   [2]string
}

// Net is one node of the cactus tree: a junction that a set of child chains
// attach to. Parent names the chain this net sits inside, or "" for the
// root net.
type Net struct {
	ID     string
	Chains []string
	Parent string
}

// Group is a ploidy-linked cluster of nets: nets whose copy-number indices
// must move together during normalization because they represent the same
// physical allele across different parts of the graph.
type Group struct {
	ID   string
	Nets []string
}
