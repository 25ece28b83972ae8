package cdb

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	// Registers the "postgres" driver with database/sql.
	_ "github.com/lib/pq"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

var (
	createEdgesTableQuery = `
						CREATE TABLE IF NOT EXISTS edges (
							partition STRING NOT NULL,
							src INT8 NOT NULL,
							dest INT8 NOT NULL,
							PRIMARY KEY (partition, src, dest)
						)
						`

	insertEdgeQuery = `
					INSERT INTO edges (partition, src, dest)
					VALUES ($1, $2, $3)
					ON CONFLICT (partition, src, dest) DO NOTHING
					`

	partitionEdgesQuery = "SELECT src, dest FROM edges WHERE partition=$1"
)

// Static and compile-time check to ensure CockroachDBEdgeStore implements
// edgesource.Store interface.
var _ edgesource.Store = (*CockroachDBEdgeStore)(nil)

// CockroachDBEdgeStore implements a persistent partitioned edge store using
// a CockroachDB (or any postgres wire compatible) instance.
type CockroachDBEdgeStore struct {
	db *sql.DB
}

// NewCockroachDBEdgeStore returns a CockroachDBEdgeStore instance and makes
// sure the edges table exists.
func NewCockroachDBEdgeStore(dsn string) (*CockroachDBEdgeStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createEdgesTableQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create edges table: %w", err)
	}

	return &CockroachDBEdgeStore{db}, nil
}

// Close terminates the connection to the cockroachDB instance.
func (s *CockroachDBEdgeStore) Close() error {
	return s.db.Close()
}

// InsertEdge appends an edge to the named partition. Inserting an existing
// edge is a no-op. Node IDs must fit in a signed 64-bit column.
func (s *CockroachDBEdgeStore) InsertEdge(partition string, edge graph.Edge) error {
	if edge.U > math.MaxInt64 || edge.V > math.MaxInt64 {
		return fmt.Errorf("insert edge (%d, %d): %w", edge.U, edge.V, edgesource.ErrMalformedEdge)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, insertEdgeQuery, partition, int64(edge.U), int64(edge.V))
	if err != nil {
		return fmt.Errorf("insert edge: %w", err)
	}

	return nil
}

// Partition returns a Source over the edges of the named partition.
func (s *CockroachDBEdgeStore) Partition(name string) edgesource.Source {
	return &partitionSource{db: s.db, name: name}
}

type partitionSource struct {
	db   *sql.DB
	name string
}

// Edges returns an iterator over the rows of the partition.
func (p *partitionSource) Edges() (edgesource.EdgeIterator, error) {
	rows, err := p.db.Query(partitionEdgesQuery, p.name)
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	return &edgeIterator{rows: rows}, nil
}
