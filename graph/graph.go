/*
	graph package provides an immutable adjacency index over an undirected
	graph. It is built once from a list of edges and answers neighbor, degree
	and membership queries for the similarity scorers.
*/

package graph

import "fmt"

// NodeID is an opaque, non-negative node identifier. No contiguity is
// assumed.
type NodeID uint64

// Edge is an unordered, unvalidated pair of node IDs as supplied by an edge
// source. It may describe a self-loop; Build rejects those.
type Edge struct {
	U NodeID
	V NodeID
}

// NodePair is an unordered pair of distinct node IDs stored in canonical
// form, i.e. with the smaller ID first.
type NodePair struct {
	U NodeID
	V NodeID
}

// NewPair returns the canonical pair for a and b. An error wrapping
// ErrInvalidEdge is returned if a and b are the same node.
func NewPair(a, b NodeID) (NodePair, error) {
	if a == b {
		return NodePair{}, fmt.Errorf("pair (%d, %d): %w", a, b, ErrInvalidEdge)
	}

	if a > b {
		a, b = b, a
	}

	return NodePair{U: a, V: b}, nil
}

// Less reports whether p sorts before other in the canonical pair ordering
// (first ID, then second ID).
func (p NodePair) Less(other NodePair) bool {
	if p.U != other.U {
		return p.U < other.U
	}

	return p.V < other.V
}

// String returns a human readable form of the pair.
func (p NodePair) String() string {
	return fmt.Sprintf("(%d, %d)", p.U, p.V)
}
