package similarity

import (
	"errors"
	"fmt"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// ErrUnknownMetric is returned when a metric value or name is not
// recognized.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric identifies the measure that produced a score.
type Metric int

// The supported metrics. Composite tags the output of the score aggregator.
const (
	Jaccard Metric = iota
	AdamicAdar
	ResourceAllocation
	PreferentialAttachment
	Composite
)

var metricNames = map[Metric]string{
	Jaccard:                "jaccard",
	AdamicAdar:             "adamic_adar",
	ResourceAllocation:     "resource_allocation",
	PreferentialAttachment: "preferential_attachment",
	Composite:              "composite",
}

// Metrics returns the four pairwise similarity metrics in canonical order.
func Metrics() []Metric {
	return []Metric{Jaccard, AdamicAdar, ResourceAllocation, PreferentialAttachment}
}

// String returns the configuration name of the metric.
func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}

	return fmt.Sprintf("metric(%d)", int(m))
}

// ParseMetric maps a configuration name back to its Metric.
func ParseMetric(name string) (Metric, error) {
	for m, n := range metricNames {
		if n == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("parse metric %q: %w", name, ErrUnknownMetric)
}

// ScoreRecord is the score a metric assigned to a candidate pair.
type ScoreRecord struct {
	Pair   graph.NodePair
	Score  float64
	Metric Metric
}
