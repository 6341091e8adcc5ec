package cactus

import "fmt"

// Constructor applies a deterministic mutation to a Cactus graph under
// construction. Constructors must validate their own parameters and return
// sentinel errors rather than panicking; Build wraps any error with the
// constructor's position for context.
//
// This mirrors the graph-fixture builder pattern used elsewhere in this
// codebase, narrowed to the cactus domain: real callers hand this library a
// *Cactus built by their own upstream pipeline, and Builder exists so tests
// and examples can assemble small fixtures without hand-writing every
// AddNode/AddBlock/AddChain/AddNet call.
type Constructor func(c *Cactus) error

// Builder accumulates Constructors and applies them in order to a fresh
// Cactus graph.
type Builder struct {
	cons []Constructor
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends constructors to the builder's pipeline and returns the
// builder for chaining.
func (b *Builder) Add(cons ...Constructor) *Builder {
	b.cons = append(b.cons, cons...)
	return b
}

// Build runs every accumulated constructor against a fresh Cactus graph, in
// the order they were added, and returns the result. The first error aborts
// the build.
func (b *Builder) Build() (*Cactus, error) {
	c := New()
	for i, fn := range b.cons {
		if err := fn(c); err != nil {
			return nil, fmt.Errorf("Builder.Build: constructor %d: %w", i, err)
		}
	}
	return c, nil
}

// LinearSegment returns a Constructor adding a single two-ended segment:
// nodes head/tail with the given per-ploidy copy numbers, a block and chain
// spanning them, nested inside a net (created if absent).
func LinearSegment(segmentID string, netID string, copyNumbers []float64) Constructor {
	return func(c *Cactus) error {
		head := segmentID + "h"
		tail := segmentID + "t"
		if err := c.AddNode(Node{ID: head, Twin: tail, Edges: map[string]float64{}, Segments: copyNumbers}); err != nil {
			return err
		}
		if err := c.AddNode(Node{ID: tail, Twin: head, Edges: map[string]float64{}, Segments: copyNumbers}); err != nil {
			return err
		}
		blockID := "b:" + segmentID
		block := Block{
			ID:          blockID,
			Ends:        [2]string{head, tail},
			StartNet:    netID,
			EndNet:      netID,
			Length:      1,
			CopyNumbers: append([]float64{}, copyNumbers...),
		}
		if err := c.AddBlock(block); err != nil {
			return err
		}
		chainID := "c:" + segmentID
		if err := c.AddChain(Chain{ID: chainID, Blocks: []string{blockID}, Ends: [2]string{head, tail}}); err != nil {
			return err
		}
		if _, err := c.Net(netID); err != nil {
			if err := c.AddNet(Net{ID: netID, Chains: []string{chainID}}); err != nil {
				return err
			}
			return nil
		}
		c.mu.Lock()
		net := c.nets[netID]
		net.Chains = append(net.Chains, chainID)
		c.mu.Unlock()
		return nil
	}
}

// BlockSpec describes one block of a multi-block chain built by SegmentChain.
type BlockSpec struct {
	ID          string
	Length      int
	CopyNumbers []float64
}

// SegmentChain returns a Constructor adding a chain of several blocks in
// series, nested inside netID exactly as LinearSegment nests a one-block
// chain. Each interior junction between consecutive blocks gets its own
// freshly-created net private to this chain, so a later pinch can merge
// just the nets touched by a sub-run of the chain without disturbing its
// other blocks.
func SegmentChain(chainID string, netID string, specs []BlockSpec) Constructor {
	return func(c *Cactus) error {
		if len(specs) == 0 {
			return fmt.Errorf("SegmentChain(%s): %w", chainID, ErrEmptyID)
		}
		blockIDs := make([]string, len(specs))
		boundary := netID
		for i, spec := range specs {
			head := chainID + ":" + spec.ID + "h"
			tail := chainID + ":" + spec.ID + "t"
			if err := c.AddNode(Node{ID: head, Twin: tail, Edges: map[string]float64{}, Segments: spec.CopyNumbers}); err != nil {
				return err
			}
			if err := c.AddNode(Node{ID: tail, Twin: head, Edges: map[string]float64{}, Segments: spec.CopyNumbers}); err != nil {
				return err
			}

			next := netID
			if i < len(specs)-1 {
				next = chainID + ":net" + fmt.Sprint(i)
				if err := c.AddNet(Net{ID: next}); err != nil {
					return err
				}
			}

			block := Block{
				ID:          spec.ID,
				Ends:        [2]string{head, tail},
				StartNet:    boundary,
				EndNet:      next,
				Length:      spec.Length,
				CopyNumbers: append([]float64{}, spec.CopyNumbers...),
			}
			if err := c.AddBlock(block); err != nil {
				return err
			}
			blockIDs[i] = spec.ID

			if i > 0 {
				prevTail := chainID + ":" + specs[i-1].ID + "t"
				if err := c.SetEdge(prevTail, head, 1); err != nil {
					return err
				}
				if err := c.SetEdge(head, prevTail, 1); err != nil {
					return err
				}
			}
			boundary = next
		}

		if err := c.AddChain(Chain{ID: chainID, Blocks: blockIDs, Ends: [2]string{
			chainID + ":" + specs[0].ID + "h",
			chainID + ":" + specs[len(specs)-1].ID + "t",
		}}); err != nil {
			return err
		}

		if _, err := c.Net(netID); err != nil {
			return c.AddNet(Net{ID: netID, Chains: []string{chainID}})
		}
		c.mu.Lock()
		net := c.nets[netID]
		net.Chains = append(net.Chains, chainID)
		c.mu.Unlock()
		return nil
	}
}

// Adjacency returns a Constructor adding a symmetric adjacency edge between
// two existing node endpoints with the given flow value.
func Adjacency(a, b string, value float64) Constructor {
	return func(c *Cactus) error {
		if err := c.SetEdge(a, b, value); err != nil {
			return err
		}
		return c.SetEdge(b, a, value)
	}
}

// RootNet returns a Constructor that adds an empty root net with the given
// id, if one is not already present.
func RootNet(netID string) Constructor {
	return func(c *Cactus) error {
		if _, err := c.Net(netID); err == nil {
			return nil
		}
		return c.AddNet(Net{ID: netID})
	}
}
