// Package config collects the numeric constants that tune the cactus
// normalizer, the cycle extractor, and the MCMC history sampler.
//
// These are exported as plain values rather than a Config struct: every
// consumer package needs all of them and none of them is ever overridden
// per-call, so a struct would only add indirection. Algorithms that want a
// different value take it as an explicit parameter or functional option
// instead of mutating these.
package config

import "time"

const (
	// MinFlow is the smallest edge flow considered non-zero. Flows at or
	// below this threshold are treated as numerically extinguished.
	MinFlow = 1e-10

	// MinCycleFlow is the smallest cycle flow kept by the history seeder;
	// cycles below this ratio of the total are pruned before sampling.
	MinCycleFlow = 1e-2

	// RoundingError bounds the acceptable deviation of a linear-decomposition
	// weight from its nearest integer before it is rejected as non-integral.
	RoundingError = 1e-10

	// Temperature is the initial Metropolis-Hastings temperature.
	Temperature = 1.0

	// TemperatureRelaxation is the multiplicative factor applied to the
	// current temperature each time a proposal is rejected, so the sampler
	// gradually accepts worse moves the longer it goes without progress.
	TemperatureRelaxation = 1.01

	// CNVChangeEpsilon is the minimum copy-number delta that counts as a
	// real change when propagating an edit through chains and nets.
	CNVChangeEpsilon = 1e-6
)

// MaxTimerLength bounds how long a single Sample call may run before it
// returns its best history so far instead of continuing to explore.
const MaxTimerLength = 86400 * time.Second
