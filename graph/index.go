package graph

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// NodeSet is a set of node IDs. Sets returned by an Index are shared with
// the index and must not be modified.
type NodeSet map[NodeID]struct{}

// Len returns the number of nodes in the set.
func (s NodeSet) Len() int { return len(s) }

// Contains reports whether id is a member of the set.
func (s NodeSet) Contains(id NodeID) bool {
	_, exists := s[id]
	return exists
}

// Intersection returns the members shared by s and other in ascending order.
// It iterates over the smaller of the two sets.
func (s NodeSet) Intersection(other NodeSet) []NodeID {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	var common []NodeID
	for id := range small {
		if _, exists := large[id]; exists {
			common = append(common, id)
		}
	}

	// Sorting keeps floating point sums over the intersection identical
	// regardless of map iteration order or argument order.
	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })

	return common
}

// UnionSize returns |s ∪ other| without materializing the union.
func (s NodeSet) UnionSize(other NodeSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	size := len(large)
	for id := range small {
		if _, exists := large[id]; !exists {
			size++
		}
	}

	return size
}

// Index is an immutable adjacency index over an undirected graph. It is safe
// for concurrent use by multiple goroutines once built.
type Index struct {
	adjacency map[NodeID]NodeSet
	nodes     []NodeID
	numEdges  int
}

// Build creates an Index from the provided edges. Duplicate edges (in either
// orientation) collapse into a single undirected edge. An error wrapping
// ErrInvalidEdge is returned if any edge is a self-loop.
func Build(edges []Edge) (*Index, error) {
	idx := &Index{
		adjacency: make(map[NodeID]NodeSet),
	}

	order := treeset.NewWith(nodeIDComparator)

	for _, e := range edges {
		if e.U == e.V {
			return nil, fmt.Errorf(
				"build graph index: edge (%d, %d): %w", e.U, e.V, ErrInvalidEdge,
			)
		}

		if idx.link(e.U, e.V) {
			idx.numEdges++
		}

		order.Add(e.U, e.V)
	}

	idx.nodes = make([]NodeID, 0, order.Size())
	for _, v := range order.Values() {
		idx.nodes = append(idx.nodes, v.(NodeID))
	}

	return idx, nil
}

// link records the symmetric edge u <-> v and reports whether the edge was
// new.
func (idx *Index) link(u, v NodeID) bool {
	uSet, exists := idx.adjacency[u]
	if !exists {
		uSet = make(NodeSet)
		idx.adjacency[u] = uSet
	}

	if _, linked := uSet[v]; linked {
		return false
	}

	vSet, exists := idx.adjacency[v]
	if !exists {
		vSet = make(NodeSet)
		idx.adjacency[v] = vSet
	}

	uSet[v] = struct{}{}
	vSet[u] = struct{}{}

	return true
}

// Neighbors returns the neighbor set of v. Unknown nodes have an empty
// neighbor set.
func (idx *Index) Neighbors(v NodeID) NodeSet {
	return idx.adjacency[v]
}

// Degree returns the number of neighbors of v.
func (idx *Index) Degree(v NodeID) int {
	return len(idx.adjacency[v])
}

// HasEdge reports whether u and v are adjacent. The lookup goes through the
// smaller of the two neighbor sets.
func (idx *Index) HasEdge(u, v NodeID) bool {
	uSet, vSet := idx.adjacency[u], idx.adjacency[v]
	if len(vSet) < len(uSet) {
		return vSet.Contains(u)
	}

	return uSet.Contains(v)
}

// Nodes returns all node IDs that appear in at least one edge in ascending
// order. The returned slice is shared with the index and must not be
// modified.
func (idx *Index) Nodes() []NodeID {
	return idx.nodes
}

// NumNodes returns the number of nodes known to the index.
func (idx *Index) NumNodes() int {
	return len(idx.nodes)
}

// NumEdges returns the number of distinct undirected edges in the index.
func (idx *Index) NumEdges() int {
	return idx.numEdges
}

func nodeIDComparator(a, b interface{}) int {
	return utils.UInt64Comparator(uint64(a.(NodeID)), uint64(b.(NodeID)))
}
