package memory

import (
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// Static and compile-time check to ensure edgeIterator implements
// edgesource.EdgeIterator interface.
var _ edgesource.EdgeIterator = (*edgeIterator)(nil)

// edgeIterator is an edgesource.EdgeIterator implementation for the
// in-memory store. It iterates a private snapshot so later inserts do not
// race with the iteration.
type edgeIterator struct {
	edges        []graph.Edge
	currentIndex int
}

// Next advances the iterator. When no edges are available, calls to
// Next() return false.
func (i *edgeIterator) Next() bool {
	if i.currentIndex >= len(i.edges) {
		return false
	}

	i.currentIndex++

	return true
}

// Error returns the last error recorded by the iterator.
func (i *edgeIterator) Error() error {
	return nil
}

// Close releases any resources linked to the iterator.
func (i *edgeIterator) Close() error {
	return nil
}

// Edge returns the currently fetched edge.
func (i *edgeIterator) Edge() graph.Edge {
	return i.edges[i.currentIndex-1]
}
