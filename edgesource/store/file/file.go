/*
	file package reads edges from plain text edge lists in the format used
	by the SNAP datasets: one "u v" pair of non-negative integer node IDs per
	line, separated by whitespace.
*/

package file

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// Static and compile-time check to ensure Source implements
// edgesource.Source interface.
var _ edgesource.Source = (*Source)(nil)

// Source is an edgesource.Source backed by an edge list file. Blank lines
// and lines starting with '#' or '%' are skipped; columns after the second
// one are ignored.
type Source struct {
	path string
}

// NewSource returns a Source for the edge list at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Edges opens the file and returns an iterator over its edges.
func (s *Source) Edges() (edgesource.EdgeIterator, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}

	return &edgeIterator{
		path:    s.path,
		f:       f,
		scanner: bufio.NewScanner(f),
	}, nil
}

type edgeIterator struct {
	path    string
	f       *os.File
	scanner *bufio.Scanner
	lineNum int
	lastErr error
	edge    graph.Edge
}

func (i *edgeIterator) Next() bool {
	if i.lastErr != nil {
		return false
	}

	for i.scanner.Scan() {
		i.lineNum++

		line := strings.TrimSpace(i.scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '%' {
			continue
		}

		i.edge, i.lastErr = parseEdge(line)
		if i.lastErr != nil {
			i.lastErr = fmt.Errorf("%s:%d: %w", i.path, i.lineNum, i.lastErr)
			return false
		}

		return true
	}

	if err := i.scanner.Err(); err != nil {
		i.lastErr = fmt.Errorf("%s:%d: %w", i.path, i.lineNum, err)
	}

	return false
}

func (i *edgeIterator) Error() error {
	return i.lastErr
}

func (i *edgeIterator) Close() error {
	if err := i.f.Close(); err != nil {
		return fmt.Errorf("edge iterator: %w", err)
	}

	return nil
}

func (i *edgeIterator) Edge() graph.Edge {
	return i.edge
}

func parseEdge(line string) (graph.Edge, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return graph.Edge{}, fmt.Errorf("%q: expected two node IDs: %w", line, edgesource.ErrMalformedEdge)
	}

	u, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return graph.Edge{}, fmt.Errorf("%q: %v: %w", line, err, edgesource.ErrMalformedEdge)
	}

	v, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return graph.Edge{}, fmt.Errorf("%q: %v: %w", line, err, edgesource.ErrMalformedEdge)
	}

	return graph.Edge{U: graph.NodeID(u), V: graph.NodeID(v)}, nil
}
