package file_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/edgesource/store/file"
	"github.com/mhhasani/Dynamic-Complex-Network-Course/graph"
)

var _ = check.Suite(new(fileSourceTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type fileSourceTestSuite struct {
	dir string
}

func (s *fileSourceTestSuite) SetUpTest(c *check.C) {
	s.dir = c.MkDir()
}

func (s *fileSourceTestSuite) TestReadEdgeList(c *check.C) {
	path := s.writeFile(c, `# Directed graph (each unordered pair of nodes is saved once)
# FromNodeId	ToNodeId
0	1
0 2

% matrix market style comment
2	3	1.5
  4   5
`)

	got, err := edgesource.Collect(file.NewSource(path))
	c.Assert(err, check.IsNil)
	c.Assert(got, check.DeepEquals, []graph.Edge{
		{U: 0, V: 1},
		{U: 0, V: 2},
		{U: 2, V: 3},
		{U: 4, V: 5},
	})
}

func (s *fileSourceTestSuite) TestMalformedLineReportsLineNumber(c *check.C) {
	path := s.writeFile(c, "0 1\n# comment\n1 x\n2 3\n")

	it, err := file.NewSource(path).Edges()
	c.Assert(err, check.IsNil)

	c.Assert(it.Next(), check.Equals, true)
	c.Assert(it.Edge(), check.Equals, graph.Edge{U: 0, V: 1})
	c.Assert(it.Next(), check.Equals, false)
	c.Assert(it.Next(), check.Equals, false)

	err = it.Error()
	c.Assert(errors.Is(err, edgesource.ErrMalformedEdge), check.Equals, true)
	c.Assert(err, check.ErrorMatches, `.*edges\.txt:3: "1 x".*`)
	c.Assert(it.Close(), check.IsNil)
}

func (s *fileSourceTestSuite) TestSingleColumnLine(c *check.C) {
	path := s.writeFile(c, "7\n")

	_, err := edgesource.Collect(file.NewSource(path))
	c.Assert(errors.Is(err, edgesource.ErrMalformedEdge), check.Equals, true)
	c.Assert(err, check.ErrorMatches, `.*edges\.txt:1: "7": expected two node IDs.*`)
}

func (s *fileSourceTestSuite) TestNegativeID(c *check.C) {
	path := s.writeFile(c, "-1 4\n")

	_, err := edgesource.Collect(file.NewSource(path))
	c.Assert(errors.Is(err, edgesource.ErrMalformedEdge), check.Equals, true)
}

func (s *fileSourceTestSuite) TestMissingFile(c *check.C) {
	_, err := file.NewSource(filepath.Join(s.dir, "missing.txt")).Edges()
	c.Assert(errors.Is(err, os.ErrNotExist), check.Equals, true)
}

func (s *fileSourceTestSuite) writeFile(c *check.C, contents string) string {
	path := filepath.Join(s.dir, "edges.txt")
	c.Assert(os.WriteFile(path, []byte(contents), 0o644), check.IsNil)

	return path
}
