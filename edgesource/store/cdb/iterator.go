package cdb

import (
	"database/sql"
	"fmt"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// Static and compile-time check to ensure edgeIterator implements
// edgesource.EdgeIterator interface.
var _ edgesource.EdgeIterator = (*edgeIterator)(nil)

// edgeIterator wraps the [database/sql] Rows type returned by the partition
// query.
type edgeIterator struct {
	rows    *sql.Rows
	lastErr error
	edge    graph.Edge
}

// Next advances the iterator. When no items are available or when an
// error occurs, calls to Next() return false.
func (i *edgeIterator) Next() bool {
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}

	var src, dest int64
	if i.lastErr = i.rows.Scan(&src, &dest); i.lastErr != nil {
		return false
	}

	if src < 0 || dest < 0 {
		i.lastErr = fmt.Errorf("edge (%d, %d): %w", src, dest, edgesource.ErrMalformedEdge)
		return false
	}

	i.edge = graph.Edge{U: graph.NodeID(src), V: graph.NodeID(dest)}

	return true
}

// Error returns the last error recorded by the iterator.
func (i *edgeIterator) Error() error {
	if i.lastErr != nil {
		return i.lastErr
	}

	return i.rows.Err()
}

// Close releases any resources linked to the iterator.
func (i *edgeIterator) Close() error {
	if err := i.rows.Close(); err != nil {
		return fmt.Errorf("edge iterator: %w", err)
	}

	return nil
}

// Edge returns the currently fetched edge.
func (i *edgeIterator) Edge() graph.Edge {
	return i.edge
}
