/*
	sourcetest package provides a set of re-usable tests that can be run
	against any edgesource.Store implementation.
*/

package sourcetest

import (
	"fmt"
	"sort"
	"sync"

	check "gopkg.in/check.v1"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

// BaseSuite defines a set of re-usable edge store tests that can be
// executed against any concrete type that implements the edgesource.Store
// interface.
type BaseSuite struct {
	store edgesource.Store
}

// SetStore configures the test-suite to run all tests against an instance
// of edgesource.Store.
func (s *BaseSuite) SetStore(store edgesource.Store) {
	s.store = store
}

// TestInsertAndIterate verifies that inserted edges are returned by the
// partition iterator.
func (s *BaseSuite) TestInsertAndIterate(c *check.C) {
	exp := []graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 10, V: 4}}
	for _, e := range exp {
		c.Assert(s.store.InsertEdge("train", e), check.IsNil)
	}

	got, err := edgesource.Collect(s.store.Partition("train"))
	c.Assert(err, check.IsNil)
	c.Assert(sorted(got), check.DeepEquals, sorted(exp))
}

// TestDuplicateInsert verifies that inserting the same edge twice stores it
// once.
func (s *BaseSuite) TestDuplicateInsert(c *check.C) {
	c.Assert(s.store.InsertEdge("train", graph.Edge{U: 1, V: 2}), check.IsNil)
	c.Assert(s.store.InsertEdge("train", graph.Edge{U: 1, V: 2}), check.IsNil)

	got, err := edgesource.Collect(s.store.Partition("train"))
	c.Assert(err, check.IsNil)
	c.Assert(got, check.DeepEquals, []graph.Edge{{U: 1, V: 2}})
}

// TestPartitionIsolation verifies that partitions do not leak edges into
// each other and that unknown partitions are empty.
func (s *BaseSuite) TestPartitionIsolation(c *check.C) {
	c.Assert(s.store.InsertEdge("train", graph.Edge{U: 1, V: 2}), check.IsNil)
	c.Assert(s.store.InsertEdge("held-out", graph.Edge{U: 5, V: 9}), check.IsNil)

	train, err := edgesource.Collect(s.store.Partition("train"))
	c.Assert(err, check.IsNil)
	c.Assert(train, check.DeepEquals, []graph.Edge{{U: 1, V: 2}})

	heldOut, err := edgesource.Collect(s.store.Partition("held-out"))
	c.Assert(err, check.IsNil)
	c.Assert(heldOut, check.DeepEquals, []graph.Edge{{U: 5, V: 9}})

	missing, err := edgesource.Collect(s.store.Partition("missing"))
	c.Assert(err, check.IsNil)
	c.Assert(missing, check.HasLen, 0)
}

// TestConcurrentIterators ensures that multiple clients can concurrently
// access the store without causing data races.
func (s *BaseSuite) TestConcurrentIterators(c *check.C) {
	var (
		wg           sync.WaitGroup
		numIterators = 10
		numEdges     = 100
	)

	for i := 0; i < numEdges; i++ {
		e := graph.Edge{U: graph.NodeID(i), V: graph.NodeID(i + numEdges)}
		c.Assert(s.store.InsertEdge("train", e), check.IsNil)
	}

	wg.Add(numIterators)
	for i := 0; i < numIterators; i++ {
		go func(id int) {
			defer wg.Done()

			itTag := fmt.Sprintf("iterator %d", id)
			seen := make(map[graph.Edge]bool)

			it, err := s.store.Partition("train").Edges()
			c.Assert(err, check.IsNil)
			defer func() {
				c.Assert(it.Close(), check.IsNil, check.Commentf("%s", itTag))
			}()

			for it.Next() {
				e := it.Edge()
				c.Assert(seen[e], check.Equals, false, check.Commentf("%s saw duplicate edge %v", itTag, e))
				seen[e] = true
			}

			c.Assert(it.Error(), check.IsNil, check.Commentf("%s", itTag))
			c.Assert(seen, check.HasLen, numEdges, check.Commentf("%s", itTag))
		}(i)
	}

	wg.Wait()
}

func sorted(edges []graph.Edge) []graph.Edge {
	out := append([]graph.Edge(nil), edges...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}
