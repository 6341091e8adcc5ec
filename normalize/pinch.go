package normalize

import (
	"fmt"
	"math"

	"github.com/mfansler/cnavg-go/cactus"
)

// Candidate names a contiguous run of one chain's blocks, chain[IndexA:
// IndexB], that testSegment found distinguishable from the rest of the
// chain, along with a weight (exp(run length)) used to bias pinch order
// toward longer, more confidently estimated runs over short noisy ones.
type Candidate struct {
	ChainID        string
	IndexA, IndexB int
	Weight         float64
}

// Candidates returns every pinch candidate within chainID: every
// 0 <= indexA < indexB < len(chain) such that testSegment(indexA, indexB)
// holds. indexB never reaches len(chain) itself, matching the upstream
// algorithm this is ported from — the run's circular complement is always
// free to wrap around and include the chain's last block, it just never
// appears as indexA's own run.
func Candidates(c *cactus.Cactus, chainID string) ([]Candidate, error) {
	ch, err := c.Chain(chainID)
	if err != nil {
		return nil, err
	}
	n := len(ch.Blocks)
	var out []Candidate
	for indexB := 1; indexB < n; indexB++ {
		for indexA := 0; indexA < indexB; indexA++ {
			ok, err := testSegment(c, chainID, indexA, indexB)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			out = append(out, Candidate{
				ChainID: chainID,
				IndexA:  indexA,
				IndexB:  indexB,
				Weight:  math.Exp(float64(indexB - indexA)),
			})
		}
	}
	return out, nil
}

// AllCandidates returns every pinch candidate across every chain in c.
func AllCandidates(c *cactus.Cactus) ([]Candidate, error) {
	var all []Candidate
	for _, chainID := range c.ChainIDs() {
		cands, err := Candidates(c, chainID)
		if err != nil {
			return nil, err
		}
		all = append(all, cands...)
	}
	return all, nil
}

// touchedNets returns the set of net ids a (sub)slice of a chain's blocks
// touches at its two open ends.
func touchedNets(c *cactus.Cactus, blocks []string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for _, b := range blocks {
		start, end, err := c.BlockNets(b)
		if err != nil {
			return nil, err
		}
		out[start] = struct{}{}
		out[end] = struct{}{}
	}
	return out, nil
}

func symmetricDifference(a, b map[string]struct{}) []string {
	var out []string
	for id := range a {
		if _, ok := b[id]; !ok {
			out = append(out, id)
		}
	}
	for id := range b {
		if _, ok := a[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// Pinch merges the nets a candidate segment touches and collapses the
// segment's own blocks into one fused block in their place. Which nets are
// "touched" depends on the segment's length, matching three distinct shapes
// of cactus net topology:
//   - length 1: the segment is a single block, so both nets it sits
//     between are merged into one.
//   - length 2: the segment's two blocks share one interior net between
//     them; merging the segment into the rest of the chain means merging
//     the two OUTER nets it touches, i.e. the symmetric difference of the
//     two blocks' own net sets (the shared interior net cancels out).
//   - length >= 3: the run has interior blocks with their own private
//     nets, which must stay untouched; only the two outer nets (minus
//     anything also touched by an interior block) are merged.
func Pinch(c *cactus.Cactus, cand Candidate) error {
	ch, err := c.Chain(cand.ChainID)
	if err != nil {
		return err
	}
	segment := ch.Blocks[cand.IndexA:cand.IndexB]
	if len(segment) == 0 {
		return fmt.Errorf("Pinch(%s,%d,%d): empty segment", cand.ChainID, cand.IndexA, cand.IndexB)
	}

	var mergeIDs []string
	switch {
	case len(segment) == 1:
		start, end, err := c.BlockNets(segment[0])
		if err != nil {
			return err
		}
		mergeIDs = []string{start, end}
	case len(segment) == 2:
		startNets, err := touchedNets(c, segment[:1])
		if err != nil {
			return err
		}
		endNets, err := touchedNets(c, segment[1:])
		if err != nil {
			return err
		}
		mergeIDs = symmetricDifference(startNets, endNets)
	default:
		startNets, err := touchedNets(c, segment[:1])
		if err != nil {
			return err
		}
		endNets, err := touchedNets(c, segment[len(segment)-1:])
		if err != nil {
			return err
		}
		insideNets, err := touchedNets(c, segment[1:len(segment)-1])
		if err != nil {
			return err
		}
		outer := make(map[string]struct{})
		for id := range startNets {
			outer[id] = struct{}{}
		}
		for id := range endNets {
			outer[id] = struct{}{}
		}
		for id := range outer {
			if _, inside := insideNets[id]; inside {
				delete(outer, id)
			}
		}
		for id := range outer {
			mergeIDs = append(mergeIDs, id)
		}
	}

	if _, err := c.MergeNets(mergeIDs); err != nil {
		return fmt.Errorf("Pinch(%s,%d,%d): %w", cand.ChainID, cand.IndexA, cand.IndexB, err)
	}

	ploidy, err := c.Ploidy(cand.ChainID)
	if err != nil {
		return err
	}
	totalLen := 0
	cn := make([]float64, ploidy)
	for _, b := range segment {
		length, err := c.BlockLength(b)
		if err != nil {
			return err
		}
		totalLen += length
		for idx := 0; idx < ploidy; idx++ {
			v, err := c.BlockCopyNumber(b, idx)
			if err != nil {
				return err
			}
			cn[idx] += v * float64(length)
		}
	}
	for idx := range cn {
		cn[idx] /= float64(totalLen)
	}

	startNet, _, err := c.BlockNets(segment[0])
	if err != nil {
		return err
	}
	_, endNet, err := c.BlockNets(segment[len(segment)-1])
	if err != nil {
		return err
	}
	first, err := c.Block(segment[0])
	if err != nil {
		return err
	}
	last, err := c.Block(segment[len(segment)-1])
	if err != nil {
		return err
	}

	merged := cactus.Block{
		ID:          fmt.Sprintf("pinched:%s:%d:%d", cand.ChainID, cand.IndexA, cand.IndexB),
		Ends:        [2]string{first.Ends[0], last.Ends[1]},
		StartNet:    startNet,
		EndNet:      endNet,
		Length:      totalLen,
		CopyNumbers: cn,
	}
	if err := c.ReplaceChainBlocks(cand.ChainID, cand.IndexA, cand.IndexB, merged); err != nil {
		return fmt.Errorf("Pinch(%s,%d,%d): %w", cand.ChainID, cand.IndexA, cand.IndexB, err)
	}
	return nil
}
