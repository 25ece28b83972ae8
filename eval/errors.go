package eval

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientCandidates is returned when the ranked list holds
	// fewer entries than the requested cutoff.
	ErrInsufficientCandidates = errors.New("insufficient candidates")

	// ErrInvalidK is returned when the cutoff is not a positive integer.
	ErrInvalidK = errors.New("k must be > 0")
)

// InsufficientCandidatesError reports the requested cutoff and the number
// of ranked candidates that were actually available.
type InsufficientCandidatesError struct {
	K         int
	Available int
}

// Error implements the error interface.
func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("%s: requested top %d but only %d ranked", ErrInsufficientCandidates, e.K, e.Available)
}

// Is allows errors.Is to match the ErrInsufficientCandidates sentinel.
func (e *InsufficientCandidatesError) Is(target error) bool {
	return target == ErrInsufficientCandidates
}
