package pipeline_test

import (
	"context"
	"errors"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/pipeline"
)

var _ = check.Suite(new(pipelineTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type pipelineTestSuite struct{}

func (s *pipelineTestSuite) TestDataflow(c *check.C) {
	stages := make([]pipeline.StageRunner, 10)
	for i := 0; i < len(stages); i++ {
		stages[i] = &stageRunnerStub{c: c}
	}

	src := &sourceStub{data: generateIntPayloads(3)}
	sink := new(sinkStub)

	err := pipeline.New(stages...).Execute(context.TODO(), src, sink)
	c.Assert(err, check.IsNil)
	c.Assert(src.data, check.DeepEquals, sink.data)
	assertAllPayloadsProcessed(c, sink.data...)
}

func (s *pipelineTestSuite) TestPassThroughWithoutStages(c *check.C) {
	src := &sourceStub{data: generateIntPayloads(5)}
	sink := new(sinkStub)

	err := pipeline.New().Execute(context.TODO(), src, sink)
	c.Assert(err, check.IsNil)
	c.Assert(sink.data, check.DeepEquals, src.data)
}

func (s *pipelineTestSuite) TestStageErrorHandling(c *check.C) {
	stageErr := errors.New("stage error")
	stages := make([]pipeline.StageRunner, 10)
	for i := 0; i < len(stages); i++ {
		var err error
		if i%5 == 0 {
			err = stageErr
		}

		stages[i] = &stageRunnerStub{c: c, err: err}
	}

	src := &sourceStub{data: generateIntPayloads(3)}

	err := pipeline.New(stages...).Execute(context.TODO(), src, new(sinkStub))
	c.Assert(err, check.ErrorMatches, "(?s).*stage error.*")
}

func (s *pipelineTestSuite) TestStagePayloadDrop(c *check.C) {
	src := &sourceStub{data: generateIntPayloads(1)}
	sink := new(sinkStub)
	p := pipeline.New(&stageRunnerStub{c: c, shouldDropPayloads: true})

	err := p.Execute(context.TODO(), src, sink)
	c.Assert(err, check.IsNil)
	c.Assert(sink.data, check.HasLen, 0)
	assertAllPayloadsProcessed(c, src.data...)
}

func (s *pipelineTestSuite) TestSourceErrHandling(c *check.C) {
	src := &sourceStub{
		data: generateIntPayloads(3),
		err:  errors.New("source error"),
	}

	err := pipeline.New(&stageRunnerStub{c: c}).Execute(context.TODO(), src, new(sinkStub))
	c.Assert(err, check.ErrorMatches, "(?s).*pipeline source: source error.*")
}

func (s *pipelineTestSuite) TestSinkErrHandling(c *check.C) {
	src := &sourceStub{data: generateIntPayloads(1)}
	sink := &sinkStub{err: errors.New("sink error")}

	err := pipeline.New(&stageRunnerStub{c: c}).Execute(context.TODO(), src, sink)
	c.Assert(err, check.ErrorMatches, "(?s).*pipeline sink: sink error.*")
}

func assertAllPayloadsProcessed(c *check.C, payloads ...pipeline.Payload) {
	for i, p := range payloads {
		c.Assert(
			p.(*intPayload).isProcessed, check.Equals, true,
			check.Commentf("payload %d not processed", i),
		)
	}
}

type sourceStub struct {
	index int
	data  []pipeline.Payload
	err   error
}

func (s *sourceStub) Next(context.Context) bool {
	if s.index >= len(s.data) || s.err != nil {
		return false
	}

	s.index++

	return true
}

func (s *sourceStub) Payload() pipeline.Payload { return s.data[s.index-1] }

func (s *sourceStub) Error() error { return s.err }

type sinkStub struct {
	data []pipeline.Payload
	err  error
}

func (s *sinkStub) Consume(_ context.Context, p pipeline.Payload) error {
	s.data = append(s.data, p)

	return s.err
}

type intPayload struct {
	value       int
	isProcessed bool
}

func (p *intPayload) MarkAsProcessed() { p.isProcessed = true }

func generateIntPayloads(numOfPayloads int) []pipeline.Payload {
	payloads := make([]pipeline.Payload, numOfPayloads)
	for i := 0; i < numOfPayloads; i++ {
		payloads[i] = &intPayload{value: i}
	}

	return payloads
}

type stageRunnerStub struct {
	c                  *check.C
	shouldDropPayloads bool
	err                error
}

func (s *stageRunnerStub) Run(ctx context.Context, params pipeline.StageParams) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-params.Input():
			if !ok {
				return
			}

			if s.err != nil {
				s.c.Logf("[stage %d] emitted error: %v", params.StageIndex(), s.err)
				params.Error() <- s.err

				return
			}

			if s.shouldDropPayloads {
				payload.MarkAsProcessed()

				continue
			}

			select {
			case <-ctx.Done():
				return
			case params.Output() <- payload:
			}
		}
	}
}
