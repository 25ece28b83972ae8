/*
	pipeline package wires a payload source, a chain of processing stages
	and a sink together with channels. The scoring engine uses it to fan
	candidate pair chunks out to a fixed pool of scoring workers.
*/

package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Pipeline is a multi-stage pipeline built out of zero or more stage
// runners. The source and sink are supplied on each execution.
type Pipeline struct {
	stages []StageRunner
}

// New returns a pipeline that runs the provided stages in order.
func New(stages ...StageRunner) *Pipeline {
	return &Pipeline{stages: stages}
}

// Execute reads the contents of src, sends them through the pipeline stages
// and hands the results to sink. Calls to Execute block until all payloads
// have been processed or discarded, any component reports an error, or ctx
// is cancelled. Errors from all components are merged into the returned
// error.
//
// It is safe to call Execute concurrently with different sources and sinks.
func (p *Pipeline) Execute(ctx context.Context, src Source, sink Sink) error {
	var wg sync.WaitGroup
	executionCtx, cancel := context.WithCancel(ctx)

	// The output of stage i is the input of stage i+1. The extra channel
	// connects source and sink directly when there are no stages.
	stageChans := make([]chan Payload, len(p.stages)+1)
	for i := 0; i < len(stageChans); i++ {
		stageChans[i] = make(chan Payload)
	}

	// One slot per stage plus source and sink.
	errChan := make(chan error, len(p.stages)+2)

	for i := 0; i < len(p.stages); i++ {
		wg.Add(1)

		go func(index int) {
			defer wg.Done()

			p.stages[index].Run(executionCtx, &stageParams{
				stage:   index,
				inChan:  stageChans[index],
				outChan: stageChans[index+1],
				errChan: errChan,
			})

			// Run only returns once its input is closed or it failed, so
			// closing the output cascades the shutdown to the next stage.
			close(stageChans[index+1])
		}(i)
	}

	wg.Add(2)

	go func() {
		defer wg.Done()

		sourceWorker(executionCtx, src, stageChans[0], errChan)
		close(stageChans[0])
	}()

	go func() {
		defer wg.Done()

		sinkWorker(executionCtx, sink, stageChans[len(stageChans)-1], errChan)
	}()

	go func() {
		wg.Wait()

		close(errChan)
		cancel()
	}()

	var err error
	for stageErr := range errChan {
		err = multierror.Append(err, stageErr)

		// Any error shuts down the entire pipeline.
		cancel()
	}

	return err
}

// sourceWorker pulls payloads from src and forwards them to the first stage.
func sourceWorker(
	ctx context.Context, src Source,
	outChan chan<- Payload, errChan chan<- error,
) {

	for src.Next(ctx) {
		select {
		case <-ctx.Done():
			return
		case outChan <- src.Payload():
		}
	}

	if err := src.Error(); err != nil {
		mayEmitError(fmt.Errorf("pipeline source: %w", err), errChan)
	}
}

// sinkWorker hands every payload that leaves the last stage to sink.
func sinkWorker(
	ctx context.Context, sink Sink,
	inChan <-chan Payload, errChan chan<- error,
) {

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-inChan:
			if !ok {
				return
			}

			if err := sink.Consume(ctx, payload); err != nil {
				mayEmitError(fmt.Errorf("pipeline sink: %w", err), errChan)

				return
			}

			payload.MarkAsProcessed()
		}
	}
}

func mayEmitError(err error, errChan chan<- error) {
	select {
	case errChan <- err:
	default: // errChan is full; the error is dropped.
	}
}
