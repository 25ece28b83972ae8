/*
	edgesource package defines the types that supply raw undirected edges
	to the link prediction engine, independently of where they are stored.
*/

package edgesource

import (
	"errors"
	"fmt"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// ErrMalformedEdge is returned when a stored edge cannot be decoded.
var ErrMalformedEdge = errors.New("malformed edge")

// Source is implemented by types that can produce a sequence of edges.
type Source interface {
	// Edges returns an iterator over every edge of the source.
	Edges() (EdgeIterator, error)
}

// Store is implemented by edge stores that hold several named partitions
// of edges, for instance a training graph and a held-out set.
type Store interface {
	// InsertEdge appends an edge to the named partition.
	InsertEdge(partition string, edge graph.Edge) error

	// Partition returns a Source for the edges of the named partition.
	Partition(name string) Source
}

// Iterator should be embedded / implemented by types that require
// iteration functionality.
type Iterator interface {
	// Next loads the next item, returns false when no more items
	// are available or when an error occurs.
	Next() bool

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources allocated to the iterator.
	Close() error
}

// EdgeIterator is implemented by types that iterate edges.
type EdgeIterator interface {
	Iterator

	// Edge returns the currently fetched edge.
	Edge() graph.Edge
}

// Collect drains src and returns all of its edges.
func Collect(src Source) ([]graph.Edge, error) {
	it, err := src.Edges()
	if err != nil {
		return nil, fmt.Errorf("collect edges: %w", err)
	}

	var edges []graph.Edge
	for it.Next() {
		edges = append(edges, it.Edge())
	}

	if err = it.Error(); err != nil {
		_ = it.Close()
		return nil, fmt.Errorf("collect edges: %w", err)
	}

	if err = it.Close(); err != nil {
		return nil, fmt.Errorf("collect edges: %w", err)
	}

	return edges, nil
}

// SliceSource is a Source backed by an in-memory edge slice.
type SliceSource []graph.Edge

// Edges returns an iterator over the slice.
func (s SliceSource) Edges() (EdgeIterator, error) {
	return &sliceIterator{edges: s}, nil
}

type sliceIterator struct {
	edges        []graph.Edge
	currentIndex int
}

func (i *sliceIterator) Next() bool {
	if i.currentIndex >= len(i.edges) {
		return false
	}

	i.currentIndex++

	return true
}

func (i *sliceIterator) Error() error { return nil }

func (i *sliceIterator) Close() error { return nil }

func (i *sliceIterator) Edge() graph.Edge { return i.edges[i.currentIndex-1] }
