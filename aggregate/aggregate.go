/*
	aggregate package folds the per-metric score sequences into a single
	composite score per candidate pair.
*/

package aggregate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/floats"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/similarity"
)

// Weights maps a metric to its weight in the composite score. Metrics
// without an entry have weight 0.
type Weights map[similarity.Metric]float64

// DefaultWeights returns equal weights for Jaccard, Adamic-Adar and
// resource allocation. Preferential attachment is left out since its scale
// grows with the degree product and would swamp the other three.
func DefaultWeights() Weights {
	return Weights{
		similarity.Jaccard:                1,
		similarity.AdamicAdar:             1,
		similarity.ResourceAllocation:     1,
		similarity.PreferentialAttachment: 0,
	}
}

// ParseWeights converts a metric name keyed map, as read from a
// configuration file, into Weights.
func ParseWeights(raw map[string]float64) (Weights, error) {
	var err error

	w := make(Weights, len(raw))
	for name, weight := range raw {
		m, pErr := similarity.ParseMetric(name)
		if pErr != nil {
			err = multierror.Append(err, pErr)
			continue
		}

		w[m] = weight
	}

	if err != nil {
		return nil, fmt.Errorf("parse aggregation weights: %w", err)
	}

	return w, nil
}

// Validate checks that every weight is finite and non-negative, that no
// weight is assigned to the composite metric and that at least one weight
// is positive.
func (w Weights) Validate() error {
	var err error

	var total float64
	for _, m := range w.sortedMetrics() {
		weight := w[m]

		switch {
		case m == similarity.Composite:
			err = multierror.Append(err, errors.New("composite metric cannot be weighted"))
		case math.IsNaN(weight) || math.IsInf(weight, 0):
			err = multierror.Append(err, fmt.Errorf("invalid weight for %s, must be finite", m))
		case weight < 0:
			err = multierror.Append(err, fmt.Errorf("invalid weight for %s, must be >= 0", m))
		default:
			total += weight
		}
	}

	if total == 0 {
		err = multierror.Append(err, errors.New("at least one metric weight must be > 0"))
	}

	return err
}

// active returns the metrics with a positive weight in canonical order
// along with their weights.
func (w Weights) active() ([]similarity.Metric, []float64) {
	var (
		metrics []similarity.Metric
		weights []float64
	)

	for _, m := range w.sortedMetrics() {
		if w[m] > 0 {
			metrics = append(metrics, m)
			weights = append(weights, w[m])
		}
	}

	return metrics, weights
}

func (w Weights) sortedMetrics() []similarity.Metric {
	metrics := make([]similarity.Metric, 0, len(w))
	for m := range w {
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool { return metrics[i] < metrics[j] })

	return metrics
}

// Combine computes the weighted arithmetic mean of the metric scores of
// every pair:
//
//	composite(p) = Σ w_m·s_m(p) / Σ w_m
//
// over the metrics with a positive weight. A nil weights map selects
// DefaultWeights. A pair missing from a metric's sequence contributes 0 for
// that metric; a pair listed more than once in a sequence keeps its last
// score. The output records carry the Composite metric, one per distinct
// pair, in the order in which pairs are first seen when walking the
// weighted metrics in canonical order.
func Combine(scores map[similarity.Metric][]similarity.ScoreRecord, weights Weights) ([]similarity.ScoreRecord, error) {
	if weights == nil {
		weights = DefaultWeights()
	}

	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("combine scores: invalid weights: %w", err)
	}

	metrics, w := weights.active()

	var (
		order   []graph.NodePair
		columns [][]float64
	)
	if aligned(scores, metrics) {
		order, columns = alignedColumns(scores, metrics)
	} else {
		order, columns = mappedColumns(scores, metrics)
	}

	composite := make([]float64, len(order))
	for i, col := range columns {
		floats.AddScaled(composite, w[i], col)
	}
	floats.Scale(1/floats.Sum(w), composite)

	out := make([]similarity.ScoreRecord, len(order))
	for i, p := range order {
		out[i] = similarity.ScoreRecord{
			Pair:   p,
			Score:  composite[i],
			Metric: similarity.Composite,
		}
	}

	return out, nil
}

// aligned reports whether all weighted sequences list the same distinct
// pairs in the same order.
func aligned(scores map[similarity.Metric][]similarity.ScoreRecord, metrics []similarity.Metric) bool {
	ref := scores[metrics[0]]

	seen := make(map[graph.NodePair]struct{}, len(ref))
	for _, r := range ref {
		if _, dup := seen[r.Pair]; dup {
			return false
		}
		seen[r.Pair] = struct{}{}
	}

	for _, m := range metrics[1:] {
		seq := scores[m]
		if len(seq) != len(ref) {
			return false
		}

		for i := range seq {
			if seq[i].Pair != ref[i].Pair {
				return false
			}
		}
	}

	return true
}

func alignedColumns(
	scores map[similarity.Metric][]similarity.ScoreRecord, metrics []similarity.Metric,
) ([]graph.NodePair, [][]float64) {

	ref := scores[metrics[0]]
	order := make([]graph.NodePair, len(ref))
	for i, r := range ref {
		order[i] = r.Pair
	}

	columns := make([][]float64, len(metrics))
	for i, m := range metrics {
		col := make([]float64, len(ref))
		for j, r := range scores[m] {
			col[j] = r.Score
		}
		columns[i] = col
	}

	return order, columns
}

func mappedColumns(
	scores map[similarity.Metric][]similarity.ScoreRecord, metrics []similarity.Metric,
) ([]graph.NodePair, [][]float64) {

	var order []graph.NodePair
	position := make(map[graph.NodePair]int)
	for _, m := range metrics {
		for _, r := range scores[m] {
			if _, seen := position[r.Pair]; !seen {
				position[r.Pair] = len(order)
				order = append(order, r.Pair)
			}
		}
	}

	columns := make([][]float64, len(metrics))
	for i, m := range metrics {
		col := make([]float64, len(order))
		for _, r := range scores[m] {
			// Duplicate pairs within one sequence keep the last score.
			col[position[r.Pair]] = r.Score
		}
		columns[i] = col
	}

	return order, columns
}
