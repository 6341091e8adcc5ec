// Package normalize implements cactus-graph normalization: within each
// chain, repeatedly finding a contiguous run of blocks whose copy-number
// profile is distinct enough from the rest of the same chain (its circular
// complement) to be pinched out, and merging the nets that run touches
// until no chain has any such run left at any ploidy index.
package normalize

import (
	"fmt"

	"github.com/mfansler/cnavg-go/cactus"
)

// gapFraction is the minimum fractional separation between a segment's mean
// copy number and its complement's required to consider them distinct
// alleles rather than noisy estimates of the same one.
const gapFraction = 0.1

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// segmentMean returns the length-weighted mean copy number of blocks at
// ploidyIdx.
func segmentMean(c *cactus.Cactus, blocks []string, ploidyIdx int) (float64, error) {
	totalLen := 0
	sum := 0.0
	for _, b := range blocks {
		cn, err := c.BlockCopyNumber(b, ploidyIdx)
		if err != nil {
			return 0, fmt.Errorf("segmentMean: %w", err)
		}
		length, err := c.BlockLength(b)
		if err != nil {
			return 0, fmt.Errorf("segmentMean: %w", err)
		}
		sum += cn * float64(length)
		totalLen += length
	}
	if totalLen == 0 {
		return 0, nil
	}
	return sum / float64(totalLen), nil
}

// testSegment reports whether chain[indexA:indexB] is distinguishable from
// its circular complement chain[indexB:]+chain[:indexA]: the two means must
// be separated by more than gapFraction of the smaller magnitude, and every
// block inside the segment must individually sit closer to the segment's
// own mean than to the complement's — ruling out a segment that only looks
// different on average because of one outlying block.
func testSegment(c *cactus.Cactus, chainID string, indexA, indexB int) (bool, error) {
	ch, err := c.Chain(chainID)
	if err != nil {
		return false, err
	}
	n := len(ch.Blocks)
	segment := ch.Blocks[indexA:indexB]
	complement := make([]string, 0, n-(indexB-indexA))
	complement = append(complement, ch.Blocks[indexB:]...)
	complement = append(complement, ch.Blocks[:indexA]...)

	ploidy, err := c.Ploidy(chainID)
	if err != nil {
		return false, err
	}
	for idx := 0; idx < ploidy; idx++ {
		meanA, err := segmentMean(c, segment, idx)
		if err != nil {
			return false, err
		}
		meanB, err := segmentMean(c, complement, idx)
		if err != nil {
			return false, err
		}
		min := abs(meanA)
		if abs(meanB) < min {
			min = abs(meanB)
		}
		if !(abs(meanA-meanB) > gapFraction*min) {
			return false, nil
		}
		for _, b := range segment {
			cn, err := c.BlockCopyNumber(b, idx)
			if err != nil {
				return false, err
			}
			if !(abs(meanA-cn) < abs(meanB-cn)) {
				return false, nil
			}
		}
	}
	return true, nil
}
