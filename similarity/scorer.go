/*
	similarity package scores candidate node pairs with neighbor-overlap
	measures: Jaccard coefficient, Adamic-Adar index, resource allocation
	index and preferential attachment.
*/

package similarity

import (
	"fmt"
	"math"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// ScoreFunc computes the similarity of u and v. Implementations are pure
// functions of the index and never modify it; they are symmetric in u and v.
type ScoreFunc func(idx *graph.Index, u, v graph.NodeID) float64

// JaccardScore returns |N(u) ∩ N(v)| / |N(u) ∪ N(v)|, or 0 when both
// neighborhoods are empty.
func JaccardScore(idx *graph.Index, u, v graph.NodeID) float64 {
	nu, nv := idx.Neighbors(u), idx.Neighbors(v)

	union := nu.UnionSize(nv)
	if union == 0 {
		return 0
	}

	return float64(len(nu.Intersection(nv))) / float64(union)
}

// AdamicAdarScore returns the sum of 1/ln(deg(w)) over the common neighbors
// w of u and v. Common neighbors with degree 1 would contribute 1/ln(1) and
// are skipped.
func AdamicAdarScore(idx *graph.Index, u, v graph.NodeID) float64 {
	var score float64

	for _, w := range idx.Neighbors(u).Intersection(idx.Neighbors(v)) {
		deg := idx.Degree(w)
		if deg <= 1 {
			continue
		}

		score += 1.0 / math.Log(float64(deg))
	}

	return score
}

// ResourceAllocationScore returns the sum of 1/deg(w) over the common
// neighbors w of u and v.
func ResourceAllocationScore(idx *graph.Index, u, v graph.NodeID) float64 {
	var score float64

	// A common neighbor is adjacent to both u and v so deg(w) >= 1.
	for _, w := range idx.Neighbors(u).Intersection(idx.Neighbors(v)) {
		score += 1.0 / float64(idx.Degree(w))
	}

	return score
}

// PreferentialAttachmentScore returns deg(u) * deg(v).
func PreferentialAttachmentScore(idx *graph.Index, u, v graph.NodeID) float64 {
	return float64(idx.Degree(u) * idx.Degree(v))
}

// ScoreFuncFor returns the ScoreFunc implementing m.
func ScoreFuncFor(m Metric) (ScoreFunc, error) {
	switch m {
	case Jaccard:
		return JaccardScore, nil
	case AdamicAdar:
		return AdamicAdarScore, nil
	case ResourceAllocation:
		return ResourceAllocationScore, nil
	case PreferentialAttachment:
		return PreferentialAttachmentScore, nil
	default:
		return nil, fmt.Errorf("score function for %s: %w", m, ErrUnknownMetric)
	}
}

// Score computes metric m for every pair. The returned records are in the
// same order as pairs so that sequences for different metrics over the same
// pairs can be zipped by index.
func Score(idx *graph.Index, m Metric, pairs []graph.NodePair) ([]ScoreRecord, error) {
	fn, err := ScoreFuncFor(m)
	if err != nil {
		return nil, err
	}

	return scoreWith(idx, m, fn, pairs), nil
}

func scoreWith(idx *graph.Index, m Metric, fn ScoreFunc, pairs []graph.NodePair) []ScoreRecord {
	records := make([]ScoreRecord, len(pairs))
	for i, p := range pairs {
		records[i] = ScoreRecord{
			Pair:   p,
			Score:  fn(idx, p.U, p.V),
			Metric: m,
		}
	}

	return records
}
