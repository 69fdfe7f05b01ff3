package script_test

import (
	"bytes"
	"errors"
	"strings"

	. "gopkg.in/check.v1"

	"github.com/segmentio/linked/logger"
	"github.com/segmentio/linked/script"
)

type runnerSuite struct {
	stdout        *bytes.Buffer
	logbuf        *bytes.Buffer
	restoreLogger func()
}

var _ = Suite(&runnerSuite{})

func (s *runnerSuite) SetUpTest(c *C) {
	s.stdout = new(bytes.Buffer)
	s.logbuf, s.restoreLogger = logger.MockLogger()
}

func (s *runnerSuite) TearDownTest(c *C) {
	s.restoreLogger()
}

func (s *runnerSuite) run(c *C, src string, options ...script.Option) (*script.Runner, error) {
	sc, err := script.ParseText("test", strings.NewReader(src))
	c.Assert(err, IsNil)
	r := script.New(append([]script.Option{script.Output(s.stdout)}, options...)...)
	return r, r.Run(sc)
}

func (s *runnerSuite) TestSinglyScenario(c *C) {
	r, err := s.run(c, `
insertFront 1
insertBack 2
insertBack 4
insertAfter 2 3
print
removeAfter 6
removeAfter 1
print
`)
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "1 2 3 4\n1 3 4\n")
	c.Check(r.Kind(), Equals, script.Singly)
	c.Check(r.Values(), DeepEquals, []int{1, 3, 4})
	c.Check(s.logbuf.String(), Matches, `(?s).*DEBUG: 6 not found in the singly container.*`)
}

func (s *runnerSuite) TestCircularScenario(c *C) {
	_, err := s.run(c, `
use circular
insertFront 1
insertBack 2
insertBack 4
insertAfter 2 3
print
removeAfter 1
removeAfter 7
print
removeAfter 1
print
`)
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "1 2 3 4\n1 3 4\n1 4\n")
}

func (s *runnerSuite) TestStackScenario(c *C) {
	r, err := s.run(c, `
push 8
push 11
push 3
push 9
print
pop
pop
print
pop
pop
print
peek
`, script.Container(script.Stack))
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "9 3 11 8\n9\n3\n11 8\n11\n8\n\nempty\n")
	c.Check(r.Stats(), Equals, script.Stats{
		Steps:   12,
		Inserts: 4,
		Removes: 4,
		Empties: 1,
		Prints:  3,
	})
}

func (s *runnerSuite) TestQueueScenario(c *C) {
	_, err := s.run(c, `
use queue
enqueue 8
enqueue 5
enqueue 3
dequeue
enqueue 7
dequeue
dequeue
dequeue
dequeue
`)
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "8\n5\n3\n7\nempty\n")
}

func (s *runnerSuite) TestSeparatorAndLen(c *C) {
	_, err := s.run(c, `
use doubly
insertBack 1
insertBack 2
print
len
clear
len
`, script.Separator(", "))
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "1, 2\n2\n0\n")
}

func (s *runnerSuite) TestUseStartsNewContainer(c *C) {
	r, err := s.run(c, `
insertBack 1
use doubly
insertBack 2
print
`)
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "2\n")
	c.Check(r.Kind(), Equals, script.Doubly)
}

func (s *runnerSuite) TestUnsupportedCommand(c *C) {
	_, err := s.run(c, "use stack\ninsertFront 1\n")
	c.Check(errors.Is(err, script.ErrUnsupported), Equals, true)
	c.Check(err, ErrorMatches, `line 2: insertFront 1: unsupported command on a stack container`)
}

func (s *runnerSuite) TestStrictNotFound(c *C) {
	_, err := s.run(c, "insertBack 1\nremoveAfter 7\n", script.Strict(true))
	c.Check(errors.Is(err, script.ErrNotFound), Equals, true)
	c.Check(err, ErrorMatches, `line 2: removeAfter 7: target not found: 7`)

	var serr *script.Error
	c.Assert(errors.As(err, &serr), Equals, true)
	c.Check(serr.Line, Equals, 2)
}

func (s *runnerSuite) TestStrictEmpty(c *C) {
	_, err := s.run(c, "use queue\ndequeue\n", script.Strict(true))
	c.Check(errors.Is(err, script.ErrEmpty), Equals, true)
	c.Check(s.stdout.String(), Equals, "empty\n")

	s.stdout.Reset()
	_, err = s.run(c, "removeBack\n", script.Strict(true))
	c.Check(errors.Is(err, script.ErrEmpty), Equals, true)
	c.Check(s.stdout.String(), Equals, "")
}

func (s *runnerSuite) TestSilentMisses(c *C) {
	r, err := s.run(c, `
insertAfter 1 2
removeAfter 1
removeFront
removeBack
print
`)
	c.Assert(err, IsNil)
	c.Check(s.stdout.String(), Equals, "\n")
	c.Check(r.Stats().Misses, Equals, int64(2))
	c.Check(r.Stats().Empties, Equals, int64(2))
}

func (s *runnerSuite) TestYAMLScriptOptions(c *C) {
	sc, err := script.ParseYAML("test.yaml", []byte(`
container: stack
options:
  separator: "|"
steps:
  - push 1
  - {op: push, args: [2]}
  - print
`))
	c.Assert(err, IsNil)

	r := script.New(script.Output(s.stdout))
	c.Assert(r.Run(sc), IsNil)
	c.Check(s.stdout.String(), Equals, "2|1\n")

	// script options do not leak into the next run
	s.stdout.Reset()
	next, err := script.ParseText("next", strings.NewReader("insertBack 1\ninsertBack 2\nprint\n"))
	c.Assert(err, IsNil)
	c.Assert(r.Run(next), IsNil)
	c.Check(s.stdout.String(), Equals, "1 2\n")
	c.Check(r.Kind(), Equals, script.Singly)
	c.Check(errors.Is(r.Run(&script.Script{Container: "tree"}), script.ErrUnknownContainer), Equals, true)
}

func (s *runnerSuite) TestRunUnknownContainer(c *C) {
	r := script.New()
	err := r.Run(&script.Script{Container: "tree", Steps: []script.Step{{Line: 1, Command: "len"}}})
	c.Assert(err, ErrorMatches, `unknown container: "tree"`)
	c.Check(errors.Is(err, script.ErrUnknownContainer), Equals, true)

	var stepErr *script.Error
	c.Check(errors.As(err, &stepErr), Equals, false)
}

func (s *runnerSuite) TestNewWithConfigDefaults(c *C) {
	r := script.NewWithConfig(&script.Config{})
	c.Check(r.Values(), IsNil)
	c.Assert(r.Run(&script.Script{Steps: []script.Step{{Command: "insertBack", Args: []int{1}}}}), IsNil)
	c.Check(r.Kind(), Equals, script.Singly)
	c.Check(r.Values(), DeepEquals, []int{1})
}
