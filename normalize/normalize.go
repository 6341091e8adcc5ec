package normalize

import (
	"math/rand"

	"github.com/mfansler/cnavg-go/cactus"
	"github.com/mfansler/cnavg-go/rng"
)

// maxIterations bounds the normalization loop so a pathological input
// (e.g. a run of near-tied candidates that keep reappearing after a pinch)
// cannot spin forever.
const maxIterations = 10000

// Normalize repeatedly selects a pinch candidate, weighted toward longer
// runs via rng.WeightedChoice, and pinches it, until either no candidate
// remains or maxIterations is reached. It reports how many pinches were
// performed.
func Normalize(c *cactus.Cactus, r *rand.Rand) (int, error) {
	pinches := 0
	for i := 0; i < maxIterations; i++ {
		cands, err := AllCandidates(c)
		if err != nil {
			return pinches, err
		}
		if len(cands) == 0 {
			break
		}
		weights := make([]float64, len(cands))
		for i, cand := range cands {
			weights[i] = cand.Weight
		}
		idx := rng.WeightedChoice(weights, r)
		if idx < 0 {
			break
		}
		if err := Pinch(c, cands[idx]); err != nil {
			return pinches, err
		}
		pinches++
	}
	return pinches, nil
}

// ChainFullyNormalized reports whether chainID has no pinch candidate left:
// no contiguous run of its blocks is distinguishable from its own circular
// complement at any ploidy index.
func ChainFullyNormalized(c *cactus.Cactus, chainID string) (bool, error) {
	cands, err := Candidates(c, chainID)
	if err != nil {
		return false, err
	}
	return len(cands) == 0, nil
}

// IsFullyNormalized reports whether every chain in c is fully normalized.
func IsFullyNormalized(c *cactus.Cactus) (bool, error) {
	for _, chainID := range c.ChainIDs() {
		ok, err := ChainFullyNormalized(c, chainID)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
