// Package phasedpath computes shortest paths over a signed, alternating-edge
// graph: an edge with a negative weight (module gives every Segment edge
// one) crosses to the complementary strand, flipping the current phase, and
// an edge with a positive weight (an Adjacency edge) stays on the same
// strand. A path's even/odd distance to a node is the shortest walk from the
// source that arrives at that node on an even (resp. odd) number of
// negative-weight crossings; the cycle extractor needs both, since a cycle closes
// only when it returns to its start node on the phase it left with.
package phasedpath

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource indicates Options.Source was left blank.
	ErrEmptySource = errors.New("phasedpath: empty source")

	// ErrNilGraph indicates a nil Graph was passed to Search.
	ErrNilGraph = errors.New("phasedpath: nil graph")

	// ErrZeroWeight indicates an edge with zero weight was encountered; a
	// weight of exactly zero carries no orientation and cannot drive a
	// phase transition.
	ErrZeroWeight = errors.New("phasedpath: zero edge weight")

	// ErrBadMaxHops indicates a non-positive MaxHops was supplied via WithMaxHops.
	ErrBadMaxHops = errors.New("phasedpath: max hops must be > 0")
)

// Phase names which strand a walk currently occupies.
type Phase int

const (
	Even Phase = iota
	Odd
)

// Other returns the opposite phase.
func (p Phase) Other() Phase {
	if p == Even {
		return Odd
	}
	return Even
}

// EdgeKind labels which structural class an edge belongs to (adjacency vs.
// segment), for callers that want to tell them apart when reconstructing a
// walk. It plays no role in Search itself: phase transitions are driven by
// the sign of Weight, not by Kind, since a walk's phase is really tracking
// the sign of the residual value propagating along it.
type EdgeKind int

const (
	AdjacencyEdge EdgeKind = iota
	SegmentEdge
)

// Edge is one outgoing edge from a node, as reported by Graph. Weight is
// signed: its magnitude is the traversal cost, and its sign determines
// whether taking this edge flips the walk's phase (negative) or keeps it
// (positive). Weight must never be zero.
type Edge struct {
	To     string
	Weight float64
	Kind   EdgeKind
}

// Graph is the minimal read interface Search needs: the outgoing edges of a
// node. Implementations are expected to be thread-safe if shared across
// concurrent Search calls; Search itself only reads.
type Graph interface {
	Edges(node string) []Edge
}

// State names a (node, phase) pair: the actual vertex a phased search moves
// between.
type State struct {
	Node  string
	Phase Phase
}

// Options configures a Search call.
type Options struct {
	Source      string
	StartPhase  Phase
	MaxHops     int // 0 means unbounded
	ReturnPaths bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the Options used before any Option overrides are
// applied: no source set, starting on the even phase, unbounded hops, no
// path reconstruction. Callers must supply WithSource.
func DefaultOptions() Options {
	return Options{StartPhase: Even, MaxHops: 0, ReturnPaths: false}
}

// WithSource sets the node a search starts from. Required; Search returns
// ErrEmptySource if it is never set.
func WithSource(source string) Option {
	return func(o *Options) { o.Source = source }
}

// WithStartPhase sets the phase the walk begins on.
func WithStartPhase(p Phase) Option {
	return func(o *Options) { o.StartPhase = p }
}

// WithMaxHops bounds the number of edges a walk may take. Panics if hops <= 0;
// this is a static configuration error, not a runtime data error.
func WithMaxHops(hops int) Option {
	if hops <= 0 {
		panic(fmt.Sprintf("phasedpath: WithMaxHops(%d): %v", hops, ErrBadMaxHops))
	}
	return func(o *Options) { o.MaxHops = hops }
}

// WithReturnPaths enables predecessor tracking so Result.PathTo can
// reconstruct the shortest walk to a state.
func WithReturnPaths() Option {
	return func(o *Options) { o.ReturnPaths = true }
}
