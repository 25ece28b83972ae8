package pipeline_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	check "gopkg.in/check.v1"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/pipeline"
)

var _ = check.Suite(new(stageRunnerTestSuite))

type stageRunnerTestSuite struct{}

func (s *stageRunnerTestSuite) TestFIFO(c *check.C) {
	stages := make([]pipeline.StageRunner, 10)
	for i := 0; i < len(stages); i++ {
		stages[i] = pipeline.NewFIFO(passThroughProcessor())
	}

	src := &sourceStub{data: generateIntPayloads(3)}
	sink := new(sinkStub)

	err := pipeline.New(stages...).Execute(context.TODO(), src, sink)
	c.Assert(err, check.IsNil)
	c.Assert(src.data, check.DeepEquals, sink.data)
	assertAllPayloadsProcessed(c, src.data...)
}

func (s *stageRunnerTestSuite) TestFIFOProcessorError(c *check.C) {
	proc := pipeline.ProcessorFunc(
		func(context.Context, pipeline.Payload) (pipeline.Payload, error) {
			return nil, errors.New("scoring failed")
		})

	src := &sourceStub{data: generateIntPayloads(3)}

	err := pipeline.New(pipeline.NewFIFO(proc)).Execute(context.TODO(), src, new(sinkStub))
	c.Assert(err, check.ErrorMatches, "(?s).*pipeline stage 0: scoring failed.*")
}

func (s *stageRunnerTestSuite) TestFixedWorkerPool(c *check.C) {
	numOfWorkers := 10
	syncChan := make(chan struct{})
	rendezvousChan := make(chan struct{})
	doneChan := make(chan struct{})

	proc := pipeline.ProcessorFunc(
		func(ctx context.Context, p pipeline.Payload) (pipeline.Payload, error) {
			syncChan <- struct{}{}
			<-rendezvousChan

			return p, nil
		})

	src := &sourceStub{data: generateIntPayloads(numOfWorkers)}
	sink := new(syncSinkStub)
	p := pipeline.New(pipeline.NewFixedWorkerPool(proc, numOfWorkers))

	go func() {
		err := p.Execute(context.TODO(), src, sink)
		c.Check(err, check.IsNil)

		close(doneChan)
	}()

	// All workers reaching the sync point means every payload is being
	// handled in parallel.
	for i := 0; i < numOfWorkers; i++ {
		select {
		case <-syncChan:
		case <-time.After(10 * time.Second):
			c.Fatalf("timed out waiting for worker %d to reach sync point", i)
		}
	}

	close(rendezvousChan)

	select {
	case <-doneChan:
	case <-time.After(10 * time.Second):
		c.Fatal("timed out waiting for pipeline to complete")
	}

	got := sink.values()
	sort.Ints(got)
	c.Assert(got, check.DeepEquals, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
}

func (s *stageRunnerTestSuite) TestFixedWorkerPoolPanicsOnInvalidSize(c *check.C) {
	c.Assert(func() {
		pipeline.NewFixedWorkerPool(passThroughProcessor(), 0)
	}, check.PanicMatches, "FixedWorkerPool: numOfWorkers must be > 0")
}

func passThroughProcessor() pipeline.Processor {
	return pipeline.ProcessorFunc(
		func(_ context.Context, p pipeline.Payload) (pipeline.Payload, error) {
			return p, nil
		})
}

// syncSinkStub is safe for use by a sink worker racing with the test body.
type syncSinkStub struct {
	mu   sync.Mutex
	data []int
}

func (s *syncSinkStub) Consume(_ context.Context, p pipeline.Payload) error {
	s.mu.Lock()
	s.data = append(s.data, p.(*intPayload).value)
	s.mu.Unlock()

	return nil
}

func (s *syncSinkStub) values() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]int(nil), s.data...)
}
