/*
	accumulator package provides lock-free counters that scoring workers
	update concurrently while the shared graph index stays read-only.
*/

package accumulator

import (
	"math"
	"sync/atomic"
)

// Float64Accumulator is a concurrent-safe accumulator for float64 values.
// The zero value is ready to use and holds 0.
type Float64Accumulator struct {
	sum uint64
}

// Get retrieves the current accumulator value.
func (a *Float64Accumulator) Get() float64 {
	return math.Float64frombits(atomic.LoadUint64(&a.sum))
}

// Add adds val to the current value.
func (a *Float64Accumulator) Add(val float64) {
	// Loop until a compare-swap operation succeeds.
	for {
		oldBits := atomic.LoadUint64(&a.sum)
		newBits := math.Float64bits(math.Float64frombits(oldBits) + val)

		if atomic.CompareAndSwapUint64(&a.sum, oldBits, newBits) {
			return
		}
	}
}

// IntAccumulator is a concurrent-safe accumulator for int64 values.
type IntAccumulator struct {
	sum int64
}

// Get retrieves the current accumulator value.
func (a *IntAccumulator) Get() int64 {
	return atomic.LoadInt64(&a.sum)
}

// Set overwrites the current value with val.
func (a *IntAccumulator) Set(val int64) {
	atomic.StoreInt64(&a.sum, val)
}

// Add adds val to the current value.
func (a *IntAccumulator) Add(val int64) {
	_ = atomic.AddInt64(&a.sum, val)
}
