/*
	split package partitions an edge list into a training graph and a
	held-out edge set for link prediction evaluation.
*/

package split

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

var (
	// ErrInvalidFraction is returned when the test fraction is outside the
	// open interval (0, 1).
	ErrInvalidFraction = errors.New("test fraction must be in (0, 1)")

	// ErrTooFewEdges is returned when there are not enough distinct edges
	// to populate both sides of the split.
	ErrTooFewEdges = errors.New("at least 2 distinct edges are required")
)

// Split canonicalizes and deduplicates edges, drops self-loops, and then
// moves round(testFraction * n) of the n remaining edges, picked with a
// PRNG seeded with seed, into the held-out set. Both sides keep at least
// one edge. The result only depends on the set of input edges and the seed.
func Split(edges []graph.Edge, testFraction float64, seed int64) (train, heldOut []graph.Edge, err error) {
	if math.IsNaN(testFraction) || testFraction <= 0 || testFraction >= 1 {
		return nil, nil, fmt.Errorf("split edges: fraction %v: %w", testFraction, ErrInvalidFraction)
	}

	unique := canonical(edges)
	if len(unique) < 2 {
		return nil, nil, fmt.Errorf("split edges: %d edge(s): %w", len(unique), ErrTooFewEdges)
	}

	numTest := int(math.Round(testFraction * float64(len(unique))))
	switch {
	case numTest < 1:
		numTest = 1
	case numTest > len(unique)-1:
		numTest = len(unique) - 1
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(unique), func(i, j int) { unique[i], unique[j] = unique[j], unique[i] })

	heldOut, train = unique[:numTest], unique[numTest:]
	sortEdges(heldOut)
	sortEdges(train)

	return train, heldOut, nil
}

func canonical(edges []graph.Edge) []graph.Edge {
	seen := make(map[graph.NodePair]struct{}, len(edges))
	out := make([]graph.Edge, 0, len(edges))

	for _, e := range edges {
		p, err := graph.NewPair(e.U, e.V)
		if err != nil {
			continue
		}

		if _, dup := seen[p]; dup {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, graph.Edge{U: p.U, V: p.V})
	}

	// Sorting first makes the shuffle independent of the input order.
	sortEdges(out)

	return out
}

func sortEdges(edges []graph.Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})
}
