// Package mcmc implements the Metropolis-Hastings sampler that explores the
// space of cactus rearrangement histories: starting from a seeded history,
// it repeatedly proposes a modification, scores it, and accepts or rejects
// the proposal according to the Metropolis criterion, gradually relaxing
// its temperature on rejection so the walk does not get stuck.
//
// mcmc itself knows nothing about cactus graphs, nets, or cycles — the
// caller supplies a Proposal function that knows how to produce a
// candidate history, and a Cost function that scores one, keeping this
// package reusable for the scoring/acceptance loop alone.
package mcmc

import (
	"time"

	"github.com/mfansler/cnavg-go/config"
	"github.com/mfansler/cnavg-go/rng"
)

// Options configures a Sample call.
type Options struct {
	Temperature           float64
	TemperatureRelaxation float64
	MaxTimer              time.Duration
	Seed                  int64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the library's default sampler configuration.
func DefaultOptions() Options {
	return Options{
		Temperature:           config.Temperature,
		TemperatureRelaxation: config.TemperatureRelaxation,
		MaxTimer:              config.MaxTimerLength,
		Seed:                  rng.DefaultSeed(),
	}
}

// WithTemperature overrides the initial Metropolis temperature. Panics if
// t <= 0, a static configuration error.
func WithTemperature(t float64) Option {
	if t <= 0 {
		panic("mcmc: WithTemperature requires t > 0")
	}
	return func(o *Options) { o.Temperature = t }
}

// WithMaxTimer bounds wall-clock time spent sampling. Panics if d <= 0.
func WithMaxTimer(d time.Duration) Option {
	if d <= 0 {
		panic("mcmc: WithMaxTimer requires d > 0")
	}
	return func(o *Options) { o.MaxTimer = d }
}

// WithSeed fixes the sampler's root RNG seed for reproducibility.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
