package similarity_test

import (
	"context"
	"errors"

	check "gopkg.in/check.v1"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/pairs"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/similarity"
)

var _ = check.Suite(new(calculatorTestSuite))

type calculatorTestSuite struct{}

func (s *calculatorTestSuite) TestParallelMatchesSequential(c *check.C) {
	idx := randomGraph(c, 120, 600, 42)
	candidates, err := pairs.NonEdges(idx, 3000)
	c.Assert(err, check.IsNil)

	expected := make(similarity.Scores)
	for _, m := range similarity.Metrics() {
		expected[m], err = similarity.Score(idx, m, candidates)
		c.Assert(err, check.IsNil)
	}

	configs := []similarity.Config{
		{ComputeWorkers: 1, ChunkSize: 1},
		{ComputeWorkers: 4, ChunkSize: 7},
		{ComputeWorkers: 16, ChunkSize: 100},
		{ComputeWorkers: 3, ChunkSize: 5000},
		{},
	}

	for _, cfg := range configs {
		calc, err := similarity.NewCalculator(cfg)
		c.Assert(err, check.IsNil)

		got, err := calc.Score(context.TODO(), idx, candidates)
		c.Assert(err, check.IsNil)
		c.Assert(got, check.DeepEquals, expected, check.Commentf("config %+v", cfg))

		stats := calc.Stats()
		c.Assert(stats.ScoredPairs, check.Equals, int64(len(candidates)))
		c.Assert(stats.MeanScores, check.HasLen, 4)
	}
}

func (s *calculatorTestSuite) TestMetricSubset(c *check.C) {
	idx := randomGraph(c, 30, 60, 3)
	candidates, err := pairs.NonEdges(idx, 50)
	c.Assert(err, check.IsNil)

	calc, err := similarity.NewCalculator(similarity.Config{ComputeWorkers: 2, ChunkSize: 8})
	c.Assert(err, check.IsNil)

	got, err := calc.Score(context.TODO(), idx, candidates, similarity.Jaccard)
	c.Assert(err, check.IsNil)
	c.Assert(got, check.HasLen, 1)
	c.Assert(got[similarity.Jaccard], check.HasLen, len(candidates))

	stats := calc.Stats()
	c.Assert(stats.ScoredChunks, check.Equals, int64(7))
}

func (s *calculatorTestSuite) TestNoCandidates(c *check.C) {
	idx := randomGraph(c, 10, 5, 1)

	calc, err := similarity.NewCalculator(similarity.Config{ComputeWorkers: 2})
	c.Assert(err, check.IsNil)

	got, err := calc.Score(context.TODO(), idx, nil)
	c.Assert(err, check.IsNil)
	for _, m := range similarity.Metrics() {
		c.Assert(got[m], check.HasLen, 0)
	}
}

func (s *calculatorTestSuite) TestUnknownMetric(c *check.C) {
	idx := randomGraph(c, 10, 5, 1)

	calc, err := similarity.NewCalculator(similarity.Config{})
	c.Assert(err, check.IsNil)

	_, err = calc.Score(context.TODO(), idx, nil, similarity.Composite)
	c.Assert(errors.Is(err, similarity.ErrUnknownMetric), check.Equals, true)
}

func (s *calculatorTestSuite) TestCancelledContext(c *check.C) {
	idx := randomGraph(c, 50, 100, 9)
	candidates, err := pairs.NonEdges(idx, 500)
	c.Assert(err, check.IsNil)

	calc, err := similarity.NewCalculator(similarity.Config{ComputeWorkers: 2, ChunkSize: 10})
	c.Assert(err, check.IsNil)

	ctx, cancelFn := context.WithCancel(context.TODO())
	cancelFn()

	_, err = calc.Score(ctx, idx, candidates)
	c.Assert(errors.Is(err, context.Canceled), check.Equals, true)
}

func (s *calculatorTestSuite) TestConfigValidation(c *check.C) {
	cfg := similarity.Config{}
	c.Assert(cfg.Validate(), check.IsNil)
	c.Assert(cfg.ComputeWorkers, check.Equals, 1)
	c.Assert(cfg.ChunkSize, check.Equals, 1024)

	cfg = similarity.Config{ComputeWorkers: -1, ChunkSize: -5}
	err := cfg.Validate()
	c.Assert(err, check.ErrorMatches, "(?ms).*invalid value for compute workers.*")
	c.Assert(err, check.ErrorMatches, "(?ms).*invalid value for chunk size.*")

	_, err = similarity.NewCalculator(similarity.Config{ChunkSize: -1})
	c.Assert(err, check.ErrorMatches, "(?ms)similarity calculator config validation failed.*")
}
