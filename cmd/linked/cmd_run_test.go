package main_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "gopkg.in/check.v1"

	linked "github.com/segmentio/linked/cmd/linked"
	"github.com/segmentio/linked/script"
)

func (s *linkedSuite) writeScript(c *C, name, content string) string {
	path := filepath.Join(c.MkDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	c.Assert(err, IsNil)
	return path
}

func (s *linkedSuite) TestRunText(c *C) {
	path := s.writeScript(c, "ring.txt", `
insertFront 1
insertBack 2
insertBack 4
insertAfter 2 3
print
`)

	err := linked.Run([]string{"run", "--container", "circular", path})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "1 2 3 4\n")
}

func (s *linkedSuite) TestRunYAML(c *C) {
	path := s.writeScript(c, "queue.yaml", `
container: queue
steps:
  - enqueue 8
  - {op: enqueue, args: [5]}
  - dequeue
  - print
`)

	err := linked.Run([]string{"run", path})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "8\n5\n")
}

func (s *linkedSuite) TestRunSeveralFiles(c *C) {
	first := s.writeScript(c, "first.txt", "push 1\npush 2\nprint\n")
	second := s.writeScript(c, "second.txt", "print\npush 3\nprint\n")

	err := linked.Run([]string{"run", "-c", "stack", "--separator", ",", first, second})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "2,1\n\n3\n")
}

func (s *linkedSuite) TestRunStdin(c *C) {
	s.AddCleanup(linked.MockStdin(strings.NewReader("use doubly\ninsertBack 1\nprint\n")))

	err := linked.Run([]string{"run", "-"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "1\n")
}

func (s *linkedSuite) TestRunStats(c *C) {
	path := s.writeScript(c, "stats.txt", "insertBack 1\ninsertBack 2\nprint\n")

	err := linked.Run([]string{"run", "--stats", path})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, "1 2\n"+
		"Steps  Inserts  Removes  Misses  Empties  Prints\n"+
		"3      2        0        0       0        1\n")
}

func (s *linkedSuite) TestRunStrict(c *C) {
	path := s.writeScript(c, "strict.txt", "insertBack 1\nremoveAfter 7\n")

	err := linked.Run([]string{"run", path})
	c.Assert(err, IsNil)

	err = linked.Run([]string{"run", "--strict", path})
	c.Check(err, ErrorMatches, `.*/strict.txt: line 2: removeAfter 7: target not found: 7`)
	c.Check(errors.Is(err, script.ErrNotFound), Equals, true)
}

func (s *linkedSuite) TestRunParseError(c *C) {
	path := s.writeScript(c, "bad.txt", "insertBack\n")

	err := linked.Run([]string{"run", path})
	c.Check(errors.Is(err, script.ErrArgs), Equals, true)
	c.Check(s.Stdout(), Equals, "")
}

func (s *linkedSuite) TestRunMissingFile(c *C) {
	err := linked.Run([]string{"run", filepath.Join(c.MkDir(), "missing.txt")})
	c.Check(errors.Is(err, os.ErrNotExist), Equals, true)
}

func (s *linkedSuite) TestRunRequiresFiles(c *C) {
	err := linked.Run([]string{"run"})
	c.Check(err, ErrorMatches, `.*required.*`)
}

func (s *linkedSuite) TestRunInvalidContainer(c *C) {
	err := linked.Run([]string{"run", "--container", "tree", "-"})
	c.Check(err, ErrorMatches, `(?s).*Invalid value .tree. for option .*container.*`)
}
