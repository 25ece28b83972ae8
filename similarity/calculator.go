package similarity

import (
	"context"
	"fmt"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/internal/accumulator"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/pipeline"
)

// Scores holds one index-aligned score sequence per metric.
type Scores map[Metric][]ScoreRecord

// Stats summarizes the most recent Calculator run.
type Stats struct {
	ScoredPairs  int64
	ScoredChunks int64
	// MeanScores holds the mean score of every computed metric.
	MeanScores map[Metric]float64
}

// Calculator scores candidate pairs with several metrics in parallel. The
// candidate sequence is split into fixed-size chunks that are scored by a
// pool of workers; the results are stitched back together by chunk index so
// the output keeps the input order.
//
// A Calculator may be reused but must not run concurrent Score calls.
type Calculator struct {
	cfg Config

	scoredPairs  accumulator.IntAccumulator
	scoredChunks accumulator.IntAccumulator
	scoreSums    map[Metric]*accumulator.Float64Accumulator
}

// NewCalculator returns a new Calculator using the provided config options.
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("similarity calculator config validation failed: %w", err)
	}

	return &Calculator{cfg: cfg}, nil
}

// Score computes the requested metrics (all four pairwise metrics if none
// are given) for every pair. Each returned sequence is aligned with pairs.
func (c *Calculator) Score(
	ctx context.Context, idx *graph.Index, pairs []graph.NodePair, metrics ...Metric,
) (Scores, error) {

	if len(metrics) == 0 {
		metrics = Metrics()
	}

	fns := make([]ScoreFunc, len(metrics))
	for i, m := range metrics {
		fn, err := ScoreFuncFor(m)
		if err != nil {
			return nil, err
		}
		fns[i] = fn
	}

	c.resetStats(metrics)

	src := &chunkSource{pairs: pairs, chunkSize: c.cfg.ChunkSize}
	numOfChunks := (len(pairs) + c.cfg.ChunkSize - 1) / c.cfg.ChunkSize
	sink := &chunkSink{results: make([][][]ScoreRecord, numOfChunks)}

	proc := pipeline.ProcessorFunc(
		func(_ context.Context, p pipeline.Payload) (pipeline.Payload, error) {
			chunk := p.(*chunkPayload)

			chunk.records = make([][]ScoreRecord, len(metrics))
			for i, m := range metrics {
				chunk.records[i] = scoreWith(idx, m, fns[i], chunk.pairs)
				c.scoreSums[m].Add(sumScores(chunk.records[i]))
			}

			c.scoredPairs.Add(int64(len(chunk.pairs)))
			c.scoredChunks.Add(1)

			return chunk, nil
		})

	p := pipeline.New(pipeline.NewFixedWorkerPool(proc, c.cfg.ComputeWorkers))
	if err := p.Execute(ctx, src, sink); err != nil {
		return nil, fmt.Errorf("score candidate pairs: %w", err)
	}

	// A cancelled context stops the pipeline without an error from any of
	// its components.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("score candidate pairs: %w", err)
	}

	return mergeChunks(metrics, sink.results, len(pairs)), nil
}

// Stats returns a summary of the most recent Score call.
func (c *Calculator) Stats() Stats {
	stats := Stats{
		ScoredPairs:  c.scoredPairs.Get(),
		ScoredChunks: c.scoredChunks.Get(),
		MeanScores:   make(map[Metric]float64, len(c.scoreSums)),
	}

	for m, sum := range c.scoreSums {
		if stats.ScoredPairs > 0 {
			stats.MeanScores[m] = sum.Get() / float64(stats.ScoredPairs)
		}
	}

	return stats
}

func (c *Calculator) resetStats(metrics []Metric) {
	c.scoredPairs.Set(0)
	c.scoredChunks.Set(0)

	c.scoreSums = make(map[Metric]*accumulator.Float64Accumulator, len(metrics))
	for _, m := range metrics {
		c.scoreSums[m] = new(accumulator.Float64Accumulator)
	}
}

// mergeChunks concatenates the per-chunk results in chunk index order.
func mergeChunks(metrics []Metric, results [][][]ScoreRecord, numOfPairs int) Scores {
	scores := make(Scores, len(metrics))

	for i, m := range metrics {
		merged := make([]ScoreRecord, 0, numOfPairs)
		for _, chunk := range results {
			merged = append(merged, chunk[i]...)
		}

		scores[m] = merged
	}

	return scores
}

func sumScores(records []ScoreRecord) float64 {
	var sum float64
	for _, r := range records {
		sum += r.Score
	}

	return sum
}

// Static and compile-time check to ensure chunkPayload implements the
// pipeline Payload interface.
var _ pipeline.Payload = (*chunkPayload)(nil)

type chunkPayload struct {
	index   int
	pairs   []graph.NodePair
	records [][]ScoreRecord
}

func (p *chunkPayload) MarkAsProcessed() {}

// chunkSource slices the candidate pairs into consecutive chunks.
type chunkSource struct {
	pairs     []graph.NodePair
	chunkSize int
	next      int
	current   *chunkPayload
}

func (s *chunkSource) Next(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}

	from := s.next * s.chunkSize
	if from >= len(s.pairs) {
		return false
	}

	to := from + s.chunkSize
	if to > len(s.pairs) {
		to = len(s.pairs)
	}

	s.current = &chunkPayload{index: s.next, pairs: s.pairs[from:to]}
	s.next++

	return true
}

func (s *chunkSource) Payload() pipeline.Payload { return s.current }

func (s *chunkSource) Error() error { return nil }

// chunkSink files every scored chunk under its chunk index. The pipeline
// runs a single sink worker so no locking is needed.
type chunkSink struct {
	results [][][]ScoreRecord
}

func (s *chunkSink) Consume(_ context.Context, p pipeline.Payload) error {
	chunk := p.(*chunkPayload)
	s.results[chunk.index] = chunk.records

	return nil
}
