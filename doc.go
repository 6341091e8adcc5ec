// Package cnavg reconstructs plausible histories of structural genome
// rearrangements from observed copy-number variation.
//
// Given an adjacency graph encoding the balance of genomic segment flow
// across breakpoints, it decomposes that flow into elementary
// rearrangement cycles and samples histories of those cycles weighted by
// a rearrangement-cost objective, via Metropolis-Hastings.
//
// The engine is organized bottom-up across subpackages:
//
//	matrix/      — dense matrices, QR/LU decomposition, matrix inversion
//	config/      — tunable thresholds shared across the pipeline
//	rng/         — deterministic, derivable *rand.Rand streams
//	edgeflow/    — Edge, Cycle and Event: the flow-graph primitives
//	cactus/      — in-memory cactus substrate (nodes, blocks, chains, nets, groups)
//	phasedpath/  — two-phase alternating-edge Dijkstra over a phased graph
//	module/      — adapts a cactus region into a phasedpath.Graph
//	normalize/   — restructures a cactus so flow is uniform along each chain
//	extractor/   — pulls elementary cycles out of a module via phasedpath
//	simplify/    — canonicalizes cycles: hairpins, redundancy, even overlaps
//	lindecomp/   — tests whether a cycle is a non-negative integer combination
//	               of a reference basis of cycles
//	history/     — assembles and scores accepted events into a History
//	mcmc/        — Metropolis-Hastings sampler over the space of Histories
//	emit/        — writer interfaces accepted histories are streamed through
//
// Construction of the input adjacency graph from biological data, the
// upstream cactus-graph construction itself, file parsing, a CLI, and
// human-readable renderers (Newick, DOT, Braney) are out of scope: this
// module ships only the interfaces those collaborators would satisfy,
// plus an in-memory fixture builder sufficient to exercise and test the
// core engine on its own.
package cnavg
