package memory

import (
	"sync"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// Static and compile-time check to ensure EdgeStore implements
// edgesource.Store interface.
var _ edgesource.Store = (*EdgeStore)(nil)

// EdgeStore implements an in-memory partitioned edge store that can be
// concurrently accessed by multiple clients.
type EdgeStore struct {
	mu         sync.RWMutex
	partitions map[string][]graph.Edge
	// Tracks the edges of each partition to drop exact duplicates.
	seen map[string]map[graph.Edge]struct{}
}

// NewEdgeStore creates a new in-memory edge store.
func NewEdgeStore() *EdgeStore {
	return &EdgeStore{
		partitions: make(map[string][]graph.Edge),
		seen:       make(map[string]map[graph.Edge]struct{}),
	}
}

// InsertEdge appends an edge to the named partition. Inserting the same
// (u, v) edge twice into a partition is a no-op.
func (s *EdgeStore) InsertEdge(partition string, edge graph.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen, exists := s.seen[partition]
	if !exists {
		seen = make(map[graph.Edge]struct{})
		s.seen[partition] = seen
	}

	if _, dup := seen[edge]; dup {
		return nil
	}

	seen[edge] = struct{}{}
	s.partitions[partition] = append(s.partitions[partition], edge)

	return nil
}

// Partition returns a Source over the edges of the named partition. An
// unknown partition yields no edges.
func (s *EdgeStore) Partition(name string) edgesource.Source {
	return &partitionSource{store: s, name: name}
}

type partitionSource struct {
	store *EdgeStore
	name  string
}

// Edges returns an iterator over a snapshot of the partition taken at call
// time.
func (p *partitionSource) Edges() (edgesource.EdgeIterator, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()

	edges := p.store.partitions[p.name]
	snapshot := make([]graph.Edge, len(edges))
	copy(snapshot, edges)

	return &edgeIterator{edges: snapshot}, nil
}
