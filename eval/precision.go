/*
	eval package measures how many of the top ranked candidate pairs turn
	out to be edges withheld from the training graph.
*/

package eval

import (
	"fmt"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/rank"
)

// HeldOutSet is an immutable, orientation-agnostic set of withheld edges.
type HeldOutSet struct {
	pairs map[graph.NodePair]struct{}
}

// NewHeldOutSet returns a HeldOutSet containing the provided edges. An edge
// (a, b) is stored once regardless of its orientation. Self-loops are
// ignored since no candidate pair can ever match them.
func NewHeldOutSet(edges []graph.Edge) HeldOutSet {
	set := HeldOutSet{pairs: make(map[graph.NodePair]struct{}, len(edges))}
	for _, e := range edges {
		p, err := graph.NewPair(e.U, e.V)
		if err != nil {
			continue
		}
		set.pairs[p] = struct{}{}
	}

	return set
}

// Contains reports whether (a, b) or (b, a) was supplied.
func (s HeldOutSet) Contains(a, b graph.NodeID) bool {
	p, err := graph.NewPair(a, b)
	if err != nil {
		return false
	}

	_, exists := s.pairs[p]
	return exists
}

// Len returns the number of distinct held-out pairs.
func (s HeldOutSet) Len() int { return len(s.pairs) }

// PrecisionResult is the outcome of evaluating the top K ranked pairs.
type PrecisionResult struct {
	K             int
	TruePositives int
	Precision     float64
}

// PrecisionAtK returns the fraction of the first k ranked pairs that are
// present in heldOut.
func PrecisionAtK(ranked rank.RankedList, heldOut HeldOutSet, k int) (PrecisionResult, error) {
	if err := checkCutoff(ranked, k); err != nil {
		return PrecisionResult{}, err
	}

	tp := truePositives(ranked, heldOut, 0, k)

	return newResult(k, tp), nil
}

// PrecisionCurve evaluates several cutoffs with a single pass over the
// ranked list. Results follow the order of ks.
func PrecisionCurve(ranked rank.RankedList, heldOut HeldOutSet, ks []int) ([]PrecisionResult, error) {
	maxK := 0
	for _, k := range ks {
		if err := checkCutoff(ranked, k); err != nil {
			return nil, err
		}
		if k > maxK {
			maxK = k
		}
	}

	// hits[i] holds the true positives within the first i ranked pairs.
	hits := make([]int, maxK+1)
	for i := 0; i < maxK; i++ {
		hits[i+1] = hits[i] + truePositives(ranked, heldOut, i, i+1)
	}

	out := make([]PrecisionResult, len(ks))
	for i, k := range ks {
		out[i] = newResult(k, hits[k])
	}

	return out, nil
}

func checkCutoff(ranked rank.RankedList, k int) error {
	if k <= 0 {
		return fmt.Errorf("precision at %d: %w", k, ErrInvalidK)
	}

	if ranked.Len() < k {
		return &InsufficientCandidatesError{K: k, Available: ranked.Len()}
	}

	return nil
}

func truePositives(ranked rank.RankedList, heldOut HeldOutSet, from, to int) int {
	var tp int
	for i := from; i < to; i++ {
		p := ranked.At(i).Pair
		if heldOut.Contains(p.U, p.V) {
			tp++
		}
	}

	return tp
}

func newResult(k, tp int) PrecisionResult {
	return PrecisionResult{
		K:             k,
		TruePositives: tp,
		Precision:     float64(tp) / float64(k),
	}
}
