/*
	pairs package enumerates the candidate (non-adjacent) node pairs that
	the similarity scorers rank as potential future edges.
*/

package pairs

import (
	"errors"
	"fmt"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

var (
	// ErrEmptyGraph is returned when the graph has fewer than two nodes and
	// therefore no candidate pairs.
	ErrEmptyGraph = errors.New("graph has fewer than 2 nodes")

	// ErrInvalidLimit is returned when the candidate limit is not a positive
	// integer.
	ErrInvalidLimit = errors.New("candidate limit must be > 0")
)

// NonEdges returns up to limit pairs of known, non-adjacent nodes. Pairs are
// produced in ascending order of the first node ID and then the second node
// ID, so the output is identical for identical inputs.
//
// The sequence is a deterministic prefix of all non-edges and not a random
// sample: enumerating every non-edge of a large sparse graph is quadratic in
// the number of nodes.
func NonEdges(idx *graph.Index, limit int) ([]graph.NodePair, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("enumerate non-edges: limit %d: %w", limit, ErrInvalidLimit)
	}

	nodes := idx.Nodes()
	if len(nodes) < 2 {
		return nil, fmt.Errorf(
			"enumerate non-edges: %d node(s): %w", len(nodes), ErrEmptyGraph,
		)
	}

	var out []graph.NodePair

	for i := 0; i < len(nodes)-1; i++ {
		u := nodes[i]
		// Every other node is already a neighbor; nothing to emit.
		if idx.Degree(u) == len(nodes)-1 {
			continue
		}

		for _, v := range nodes[i+1:] {
			if idx.HasEdge(u, v) {
				continue
			}

			// nodes is strictly ascending so u < v holds and the pair is
			// already canonical.
			out = append(out, graph.NodePair{U: u, V: v})
			if len(out) == limit {
				return out, nil
			}
		}
	}

	return out, nil
}
