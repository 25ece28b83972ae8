/*
	predictor package runs a complete link prediction evaluation: it loads
	a training graph, scores the non-adjacent node pairs, aggregates and
	ranks the scores and measures precision against the held-out edges.
*/

package predictor

//go:generate mockgen -package mocks -destination mocks/mocks.go github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource Source,EdgeIterator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/aggregate"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/eval"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/pairs"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/rank"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/similarity"
)

// Timings holds the duration of every stage of a run.
type Timings struct {
	GraphLoad   time.Duration
	Enumeration time.Duration
	Scoring     time.Duration
	Aggregation time.Duration
	Evaluation  time.Duration
	Total       time.Duration
}

// Report is the outcome of a single run.
type Report struct {
	RunID uuid.UUID

	NumOfNodes      int
	NumOfEdges      int
	NumOfHeldOut    int
	NumOfCandidates int

	// Precision at TopK for every pairwise metric and the composite score.
	Precision map[similarity.Metric]eval.PrecisionResult

	// Precision at each configured cutoff, per metric. Empty when no
	// cutoffs were configured.
	Curves map[similarity.Metric][]eval.PrecisionResult

	// Composite scores in candidate order; this is the feature handed to a
	// downstream classifier.
	Composite []similarity.ScoreRecord

	// Ranked composite scores.
	Ranked rank.RankedList

	ScoringStats similarity.Stats
	Timings      Timings
}

// Predictor evaluates link prediction metrics over a graph.
type Predictor struct {
	config     Config
	calculator *similarity.Calculator
}

// New creates and returns a fully configured Predictor instance.
func New(config Config) (*Predictor, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("link predictor: config validation failed: %w", err)
	}

	calc, err := similarity.NewCalculator(similarity.Config{
		ComputeWorkers: config.NumOfComputeWorkers,
		ChunkSize:      config.ChunkSize,
	})
	if err != nil {
		return nil, fmt.Errorf("link predictor: config validation failed: %w", err)
	}

	return &Predictor{
		config:     config,
		calculator: calc,
	}, nil
}

// Run executes a complete evaluation and blocks until it finishes, fails
// or the context gets cancelled.
func (p *Predictor) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.New()}
	logger := p.config.Logger.WithField("run_id", report.RunID.String())

	logger.Info("started link prediction run")
	startedAt := p.config.Clock.Now()

	logger.WithField("stage", "graph_load").Debug("starting stage")
	tick := p.config.Clock.Now()
	idx, heldOut, err := p.loadGraph()
	if err != nil {
		return nil, err
	}
	report.NumOfNodes, report.NumOfEdges = idx.NumNodes(), idx.NumEdges()
	report.NumOfHeldOut = heldOut.Len()
	report.Timings.GraphLoad = p.config.Clock.Now().Sub(tick)

	logger.WithField("stage", "enumeration").Debug("starting stage")
	tick = p.config.Clock.Now()
	candidates, err := pairs.NonEdges(idx, p.config.Limit)
	if err != nil {
		return nil, err
	}
	report.NumOfCandidates = len(candidates)
	report.Timings.Enumeration = p.config.Clock.Now().Sub(tick)

	logger.WithField("stage", "scoring").Debug("starting stage")
	tick = p.config.Clock.Now()
	scores, err := p.calculator.Score(ctx, idx, candidates)
	if err != nil {
		return nil, err
	}
	report.ScoringStats = p.calculator.Stats()
	report.Timings.Scoring = p.config.Clock.Now().Sub(tick)

	logger.WithField("stage", "aggregation").Debug("starting stage")
	tick = p.config.Clock.Now()
	if report.Composite, err = aggregate.Combine(scores, p.config.Weights); err != nil {
		return nil, err
	}
	report.Timings.Aggregation = p.config.Clock.Now().Sub(tick)

	logger.WithField("stage", "evaluation").Debug("starting stage")
	tick = p.config.Clock.Now()
	if err = p.evaluate(ctx, scores, report, heldOut); err != nil {
		return nil, err
	}
	report.Timings.Evaluation = p.config.Clock.Now().Sub(tick)
	report.Timings.Total = p.config.Clock.Now().Sub(startedAt)

	fields := logrus.Fields{
		"nodes":                 report.NumOfNodes,
		"edges":                 report.NumOfEdges,
		"held_out_edges":        report.NumOfHeldOut,
		"candidates":            report.NumOfCandidates,
		"top_k":                 p.config.TopK,
		"graph_load_duration":   report.Timings.GraphLoad,
		"enumeration_duration":  report.Timings.Enumeration,
		"scoring_duration":      report.Timings.Scoring,
		"aggregation_duration":  report.Timings.Aggregation,
		"evaluation_duration":   report.Timings.Evaluation,
		"total_processing_time": report.Timings.Total,
	}
	for m, res := range report.Precision {
		fields["precision_"+m.String()] = res.Precision
	}
	logger.WithFields(fields).Info("completed link prediction run")

	return report, nil
}

// loadGraph builds the training graph index and the held-out edge set.
func (p *Predictor) loadGraph() (*graph.Index, eval.HeldOutSet, error) {
	trainEdges, err := edgesource.Collect(p.config.TrainSource)
	if err != nil {
		return nil, eval.HeldOutSet{}, fmt.Errorf("load training edges: %w", err)
	}

	idx, err := graph.Build(trainEdges)
	if err != nil {
		return nil, eval.HeldOutSet{}, err
	}

	heldOutEdges, err := edgesource.Collect(p.config.HeldOutSource)
	if err != nil {
		return nil, eval.HeldOutSet{}, fmt.Errorf("load held-out edges: %w", err)
	}

	return idx, eval.NewHeldOutSet(heldOutEdges), nil
}

// evaluate ranks the score sequence of every metric and the composite score
// and measures their precision. Each metric is handled by its own
// goroutine writing into its own result slot.
func (p *Predictor) evaluate(
	ctx context.Context, scores similarity.Scores, report *Report, heldOut eval.HeldOutSet,
) error {

	metrics := append(similarity.Metrics(), similarity.Composite)
	sequences := make([][]similarity.ScoreRecord, len(metrics))
	for i, m := range metrics {
		sequences[i] = scores[m]
	}
	sequences[len(metrics)-1] = report.Composite

	var (
		ranked    = make([]rank.RankedList, len(metrics))
		precision = make([]eval.PrecisionResult, len(metrics))
		curves    = make([][]eval.PrecisionResult, len(metrics))
	)

	g, gCtx := errgroup.WithContext(ctx)
	for i := range metrics {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			ranked[i] = rank.Rank(sequences[i])

			res, err := eval.PrecisionAtK(ranked[i], heldOut, p.config.TopK)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", metrics[i], err)
			}
			precision[i] = res

			if len(p.config.Cutoffs) != 0 {
				if curves[i], err = eval.PrecisionCurve(ranked[i], heldOut, p.config.Cutoffs); err != nil {
					return fmt.Errorf("evaluate %s: %w", metrics[i], err)
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	report.Precision = make(map[similarity.Metric]eval.PrecisionResult, len(metrics))
	report.Curves = make(map[similarity.Metric][]eval.PrecisionResult, len(metrics))
	for i, m := range metrics {
		report.Precision[m] = precision[i]
		if curves[i] != nil {
			report.Curves[m] = curves[i]
		}
	}
	report.Ranked = ranked[len(metrics)-1]

	return nil
}
