// Package cactus models the normalized cactus-graph substrate that a
// rearrangement history is reconstructed from: signed nodes joined by
// adjacency and segment edges, grouped into blocks, chains, nets, and
// groups exactly as a cactus decomposition of a breakpoint graph does.
//
// The package does not compute a cactus decomposition from raw sequencing
// data — that step happens upstream, in whatever pipeline hands this
// library its input. cactus only represents the result and lets callers
// (or, in tests, the Builder below) assemble one directly.
package cactus

import "errors"

var (
	// ErrEmptyID indicates a node, block, chain, net, or group was given a
	// blank identifier.
	ErrEmptyID = errors.New("cactus: empty id")

	// ErrNodeNotFound indicates a referenced node id has no entry in the graph.
	ErrNodeNotFound = errors.New("cactus: node not found")

	// ErrChainNotFound indicates a referenced chain id has no entry in the graph.
	ErrChainNotFound = errors.New("cactus: chain not found")

	// ErrNetNotFound indicates a referenced net id has no entry in the graph.
	ErrNetNotFound = errors.New("cactus: net not found")

	// ErrBlockNotFound indicates a referenced block id has no entry in the graph.
	ErrBlockNotFound = errors.New("cactus: block not found")

	// ErrDuplicateID indicates an attempt to add a node, block, chain, net, or
	// group whose id already exists.
	ErrDuplicateID = errors.New("cactus: id already exists")

	// ErrNoPloidy indicates a ploidy index outside [0, Ploidy(chain)) was
	// requested for a copy-number lookup.
	ErrNoPloidy = errors.New("cactus: ploidy index out of range")
)
