package pipeline

import "context"

// Source is implemented by types that generate the Payload instances fed
// into a Pipeline.
type Source interface {
	// Next loads the next available payload from the source and returns true.
	// When no more payloads are available or an error occurs, calls to Next
	// return false.
	Next(context.Context) bool

	// Payload returns the current payload to be processed.
	Payload() Payload

	// Error returns the last error encountered by the source.
	Error() error
}

// Payload is implemented by values that travel through the pipeline.
type Payload interface {
	// MarkAsProcessed is invoked when the payload either reaches the
	// pipeline sink or gets discarded by one of the pipeline stages.
	MarkAsProcessed()
}

// Processor is implemented by types that process payloads for a pipeline
// stage.
type Processor interface {
	// Process may transform the payload and return it for the next stage.
	// Returning a nil payload drops it from the pipeline.
	Process(context.Context, Payload) (Payload, error)
}

// ProcessorFunc is an adapter that allows the use of ordinary functions as
// processors. If f is a function with the appropriate signature,
// ProcessorFunc(f) is a Processor that calls f.
type ProcessorFunc func(context.Context, Payload) (Payload, error)

// Process calls f(ctx, p).
func (f ProcessorFunc) Process(ctx context.Context, p Payload) (Payload, error) {
	return f(ctx, p)
}

// StageRunner is implemented by types that can be strung together to form a
// multi-stage pipeline.
type StageRunner interface {
	// Run blocks until the stage input channel is closed, the provided
	// context expires or an error occurs while processing payloads.
	Run(context.Context, StageParams)
}

// StageParams holds the channels and position of a pipeline stage.
type StageParams interface {
	// StageIndex returns the position of this stage in the pipeline.
	StageIndex() int

	// Input returns a read-only channel for reading the stage input payloads.
	Input() <-chan Payload

	// Output returns a write-only channel for writing the stage output
	// payloads.
	Output() chan<- Payload

	// Error returns a write-only channel for reporting errors encountered
	// while processing payloads.
	Error() chan<- error
}

// Sink is implemented by types that consume the payloads emitted by the
// last pipeline stage.
type Sink interface {
	// Consume processes a payload instance that has been emitted out of
	// a pipeline.
	Consume(context.Context, Payload) error
}
