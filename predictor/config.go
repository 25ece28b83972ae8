package predictor

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/aggregate"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
)

// Config defines the configuration of a link prediction run.
type Config struct {
	// Source of the edges that make up the training graph.
	TrainSource edgesource.Source

	// Source of the edges withheld from the training graph, used as the
	// ground truth for the precision evaluation.
	HeldOutSource edgesource.Source

	// The maximum number of candidate pairs to score.
	Limit int

	// The cutoff used for the precision evaluation.
	TopK int

	// Additional cutoffs reported as a precision curve. Every value must be
	// positive.
	Cutoffs []int

	// The weights used for the composite score. If not specified,
	// aggregate.DefaultWeights will be used instead.
	Weights aggregate.Weights

	// The number of workers to spin up for scoring candidate pairs. If
	// not specified, a default value of 1 will be used instead.
	NumOfComputeWorkers int

	// The number of candidate pairs handed to a worker at a time. If not
	// specified, the similarity package default will be used instead.
	ChunkSize int

	// A clock instance used for measuring stage durations. If not
	// specified, the default wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.TrainSource == nil {
		err = multierror.Append(err, errors.New("train edge source not provided"))
	}

	if config.HeldOutSource == nil {
		err = multierror.Append(err, errors.New("held-out edge source not provided"))
	}

	if config.Limit <= 0 {
		err = multierror.Append(err, errors.New("invalid value for candidate limit, must be > 0"))
	}

	if config.TopK <= 0 {
		err = multierror.Append(err, errors.New("invalid value for top-k, must be > 0"))
	}

	for _, k := range config.Cutoffs {
		if k <= 0 {
			err = multierror.Append(err, fmt.Errorf("invalid precision cutoff %d, must be > 0", k))
		}
	}

	if config.Weights == nil {
		config.Weights = aggregate.DefaultWeights()
	} else if wErr := config.Weights.Validate(); wErr != nil {
		err = multierror.Append(err, fmt.Errorf("invalid aggregation weights: %w", wErr))
	}

	switch {
	case config.NumOfComputeWorkers < 0:
		err = multierror.Append(err, errors.New("invalid value for compute workers, must be >= 0"))
	case config.NumOfComputeWorkers == 0:
		config.NumOfComputeWorkers = 1
	}

	if config.ChunkSize < 0 {
		err = multierror.Append(err, errors.New("invalid value for chunk size, must be >= 0"))
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
