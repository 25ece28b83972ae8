package accumulator

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	check "gopkg.in/check.v1"
)

var _ = check.Suite(new(accumulatorTestSuite))

type accumulatorTestSuite struct{}

func Test(t *testing.T) {
	check.TestingT(t)
}

func (s *accumulatorTestSuite) TestFloat64Accumulator(c *check.C) {
	var (
		acc      Float64Accumulator
		expected float64
		values   = make([]float64, 100)
	)

	for i := range values {
		values[i] = rand.Float64()
		expected += values[i]
	}

	runConcurrently(len(values), func(i int) { acc.Add(values[i]) })

	absDelta := math.Abs(expected - acc.Get())
	c.Assert(
		absDelta < 1e-6, check.Equals, true,
		check.Commentf("expected to get %f; got %f; |delta| %f > 1e-6", expected, acc.Get(), absDelta),
	)
}

func (s *accumulatorTestSuite) TestIntAccumulator(c *check.C) {
	var (
		acc      IntAccumulator
		expected int64
		values   = make([]int64, 100)
	)

	for i := range values {
		values[i] = rand.Int63n(1 << 20)
		expected += values[i]
	}

	runConcurrently(len(values), func(i int) { acc.Add(values[i]) })

	c.Assert(acc.Get(), check.Equals, expected)

	acc.Set(7)
	c.Assert(acc.Get(), check.Equals, int64(7))
	acc.Add(-2)
	c.Assert(acc.Get(), check.Equals, int64(5))
}

// runConcurrently releases n goroutines at once and waits for all of them.
func runConcurrently(n int, fn func(i int)) {
	var (
		start = make(chan struct{})
		wg    sync.WaitGroup
	)

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(index int) {
			defer wg.Done()
			<-start
			fn(index)
		}(i)
	}

	close(start)
	wg.Wait()
}
