package rank_test

import (
	"math/rand"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/rank"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/similarity"
)

var _ = check.Suite(new(rankTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type rankTestSuite struct{}

func (s *rankTestSuite) TestOrderByScoreThenPair(c *check.C) {
	in := []similarity.ScoreRecord{
		rec(3, 4, 0.5),
		rec(1, 9, 0.8),
		rec(1, 2, 0.5),
		rec(2, 3, 0.1),
		rec(1, 5, 0.5),
	}

	list := rank.Rank(in)
	c.Assert(list.Len(), check.Equals, 5)

	c.Assert(pairsOf(list.Records()), check.DeepEquals, []graph.NodePair{
		{U: 1, V: 9},
		{U: 1, V: 2},
		{U: 1, V: 5},
		{U: 3, V: 4},
		{U: 2, V: 3},
	})
	c.Assert(list.At(0).Score, check.Equals, 0.8)
}

func (s *rankTestSuite) TestInputNotMutated(c *check.C) {
	in := []similarity.ScoreRecord{rec(1, 2, 0.1), rec(3, 4, 0.9)}
	orig := append([]similarity.ScoreRecord(nil), in...)

	_ = rank.Rank(in)
	c.Assert(in, check.DeepEquals, orig)
}

func (s *rankTestSuite) TestTopAndRecordsReturnCopies(c *check.C) {
	list := rank.Rank([]similarity.ScoreRecord{rec(1, 2, 0.1), rec(3, 4, 0.9), rec(5, 6, 0.4)})

	top := list.Top(2)
	c.Assert(pairsOf(top), check.DeepEquals, []graph.NodePair{{U: 3, V: 4}, {U: 5, V: 6}})

	top[0].Score = -1
	c.Assert(list.At(0).Score, check.Equals, 0.9)

	c.Assert(list.Top(10), check.HasLen, 3)
	c.Assert(list.Top(0), check.HasLen, 0)
	c.Assert(list.Top(-1), check.HasLen, 0)

	records := list.Records()
	records[2].Score = 100
	c.Assert(list.At(2).Score, check.Equals, 0.1)
}

func (s *rankTestSuite) TestEmpty(c *check.C) {
	list := rank.Rank(nil)
	c.Assert(list.Len(), check.Equals, 0)
	c.Assert(list.Records(), check.HasLen, 0)
}

func (s *rankTestSuite) TestDeterministicTotalOrder(c *check.C) {
	rng := rand.New(rand.NewSource(11))

	var in []similarity.ScoreRecord
	for u := graph.NodeID(0); u < 40; u++ {
		for v := u + 1; v < 40; v += 3 {
			// Coarse scores force plenty of ties.
			in = append(in, rec(u, v, float64(rng.Intn(5))/4))
		}
	}

	first := rank.Rank(in)

	shuffled := append([]similarity.ScoreRecord(nil), in...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	second := rank.Rank(shuffled)

	c.Assert(first.Records(), check.DeepEquals, second.Records())

	for i := 1; i < first.Len(); i++ {
		prev, curr := first.At(i-1), first.At(i)

		c.Assert(prev.Score >= curr.Score, check.Equals, true)
		if prev.Score == curr.Score {
			c.Assert(prev.Pair.Less(curr.Pair), check.Equals, true, check.Commentf("tie out of order at %d", i))
		}
	}
}

func rec(u, v graph.NodeID, score float64) similarity.ScoreRecord {
	return similarity.ScoreRecord{Pair: graph.NodePair{U: u, V: v}, Score: score, Metric: similarity.Composite}
}

func pairsOf(records []similarity.ScoreRecord) []graph.NodePair {
	out := make([]graph.NodePair, len(records))
	for i, r := range records {
		out[i] = r.Pair
	}

	return out
}
