package pipeline

import (
	"context"
	"fmt"
	"sync"
)

// fifo processes payloads one at a time in arrival order.
type fifo struct {
	proc Processor
}

// NewFIFO returns a StageRunner that processes incoming payloads in a
// first-in first-out fashion.
func NewFIFO(proc Processor) StageRunner {
	return fifo{proc: proc}
}

// Run processes payloads from params.Input() and forwards the results to
// params.Output(). A processor error is wrapped with the stage index,
// reported on params.Error() and stops the runner.
func (r fifo) Run(ctx context.Context, params StageParams) {
	for {
		select {
		case <-ctx.Done():
			return
		case payloadIn, ok := <-params.Input():
			if !ok {
				return
			}

			payloadOut, err := r.proc.Process(ctx, payloadIn)
			if err != nil {
				mayEmitError(
					fmt.Errorf("pipeline stage %d: %w", params.StageIndex(), err),
					params.Error(),
				)

				return
			}

			// The processor dropped the payload.
			if payloadOut == nil {
				payloadIn.MarkAsProcessed()

				continue
			}

			select {
			case <-ctx.Done():
				return
			case params.Output() <- payloadOut:
			}
		}
	}
}

// fixedWorkerPool distributes incoming payloads among a constant number of
// FIFO workers that share the same input and output channels. Output order
// is therefore not the input order; payloads must carry whatever they need
// to be reassembled downstream.
type fixedWorkerPool struct {
	fifos []StageRunner
}

// NewFixedWorkerPool returns a StageRunner that runs numOfWorkers FIFO
// runners in parallel. It panics if numOfWorkers is not positive.
func NewFixedWorkerPool(proc Processor, numOfWorkers int) StageRunner {
	if numOfWorkers <= 0 {
		panic("FixedWorkerPool: numOfWorkers must be > 0")
	}

	fifos := make([]StageRunner, numOfWorkers)
	for i := 0; i < numOfWorkers; i++ {
		fifos[i] = NewFIFO(proc)
	}

	return fixedWorkerPool{fifos: fifos}
}

// Run starts all workers and blocks until every one of them has exited.
func (r fixedWorkerPool) Run(ctx context.Context, params StageParams) {
	var wg sync.WaitGroup

	for i := 0; i < len(r.fifos); i++ {
		wg.Add(1)

		go func(index int) {
			defer wg.Done()

			r.fifos[index].Run(ctx, params)
		}(i)
	}

	wg.Wait()
}
