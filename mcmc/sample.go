package mcmc

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/mfansler/cnavg-go/history"
	"github.com/mfansler/cnavg-go/rng"
)

// ErrNilProposal indicates Sample was called with a nil Proposal function.
var ErrNilProposal = errors.New("mcmc: nil proposal function")

// ErrNilCost indicates Sample was called with a nil Cost function.
var ErrNilCost = errors.New("mcmc: nil cost function")

// Proposal produces a candidate history derived from current, using r for
// any randomness it needs. It returns an error only for conditions that
// should abort sampling entirely, not for "no good move available" (it
// should just return current unchanged in that case).
type Proposal func(current history.History, r *rand.Rand) (history.History, error)

// Cost scores a history; lower is better. Sample compares costs with the
// Metropolis criterion, never with ordering beyond less-than/greater-than.
type Cost func(h history.History) float64

// MCTest applies the Metropolis acceptance criterion: always accept an
// improving or equal-cost move, and accept a worse move with probability
// exp((oldCost-newCost)/temperature).
func MCTest(newCost, oldCost, temperature float64, r *rand.Rand) bool {
	if newCost <= oldCost {
		return true
	}
	if temperature <= 0 {
		return false
	}
	p := math.Exp((oldCost - newCost) / temperature)
	return r.Float64() < p
}

// Sample runs up to size Metropolis-Hastings iterations starting from
// initial, returning the lowest-cost history seen. It stops early if ctx is
// cancelled or Options.MaxTimer elapses, in either case returning the best
// history found so far rather than an error: a time-bounded exploration
// that ran out of budget is a normal outcome, not a failure.
//
// Only the best-so-far and current histories are retained in memory at any
// point, matching the "keep only minimal and latest" discipline the
// original sampler this is modeled on used to bound memory during long
// runs.
func Sample(ctx context.Context, initial history.History, size int, propose Proposal, cost Cost, opts ...Option) (history.History, error) {
	if propose == nil {
		return history.History{}, ErrNilProposal
	}
	if cost == nil {
		return history.History{}, ErrNilCost
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := rng.New(o.Seed)
	deadline := time.Now().Add(o.MaxTimer)

	current := initial
	currentCost := cost(current)
	best := current
	bestCost := currentCost
	temperature := o.Temperature

	for i := 0; i < size; i++ {
		select {
		case <-ctx.Done():
			return best, nil
		default:
		}
		if time.Now().After(deadline) {
			return best, nil
		}

		candidate, err := propose(current, r)
		if err != nil {
			return best, err
		}
		candidateCost := cost(candidate)

		if MCTest(candidateCost, currentCost, temperature, r) {
			current = candidate
			currentCost = candidateCost
			temperature = o.Temperature
			if candidateCost < bestCost {
				best = candidate
				bestCost = candidateCost
			}
		} else {
			temperature *= o.TemperatureRelaxation
		}
	}

	return best, nil
}
