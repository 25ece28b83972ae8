package similarity

import (
	"errors"

	"github.com/hashicorp/go-multierror"
)

const defaultChunkSize = 1024

// Config encapsulates the configuration options for a Calculator.
type Config struct {
	// ComputeWorkers specifies the number of workers that score chunks in
	// parallel. If not specified, a single worker will be used.
	ComputeWorkers int

	// ChunkSize is the number of candidate pairs handed to a worker at a
	// time. If not specified, a default of 1024 is used.
	ChunkSize int
}

// Validate checks whether the configuration is valid and sets the default
// values where required.
func (c *Config) Validate() error {
	var err error

	switch {
	case c.ComputeWorkers < 0:
		err = multierror.Append(err, errors.New("invalid value for compute workers, must be >= 0"))
	case c.ComputeWorkers == 0:
		c.ComputeWorkers = 1
	}

	switch {
	case c.ChunkSize < 0:
		err = multierror.Append(err, errors.New("invalid value for chunk size, must be >= 0"))
	case c.ChunkSize == 0:
		c.ChunkSize = defaultChunkSize
	}

	return err
}
