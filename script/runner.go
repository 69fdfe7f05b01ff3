package script

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/segmentio/linked/list"
	"github.com/segmentio/linked/logger"
	"github.com/segmentio/linked/queue"
	"github.com/segmentio/linked/stack"
)

// Stats contains counters tracking what a Runner did.
type Stats struct {
	Steps   int64
	Inserts int64
	Removes int64
	Misses  int64
	Empties int64
	Prints  int64
}

// container is the set of operations supported by every container kind.
type container interface {
	Len() int
	All() iter.Seq[int]
	RemoveAll()
}

func newContainer(kind Kind) container {
	switch kind {
	case Singly:
		return new(list.Singly)
	case Doubly:
		return new(list.Doubly)
	case Circular:
		return new(list.Circular)
	case Stack:
		return new(stack.Stack)
	case Queue:
		return new(queue.Queue)
	default:
		panic("unknown container kind: " + string(kind))
	}
}

// Runner executes scripts.
//
// Each call to Run starts with a new empty container, the container left by
// the last script can be inspected with Values until the next call to Run.
//
// Runners are not safe to use concurrently from multiple goroutines.
type Runner struct {
	config  Config
	kind    Kind
	current container
	stats   Stats
}

// New constructs a new Runner instance, using the list of options passed as
// arguments to configure it.
func New(options ...Option) *Runner {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig(config)
}

// NewWithConfig is like New but uses a Config instance to pass the runner
// configuration instead of a list of options.
func NewWithConfig(config *Config) *Runner {
	r := &Runner{config: *config}
	if r.config.Output == nil {
		r.config.Output = io.Discard
	}
	if r.config.Container == "" {
		r.config.Container = DefaultContainer
	}
	return r
}

// Stats returns the counters accumulated by all scripts run so far.
func (r *Runner) Stats() Stats { return r.stats }

// Kind returns the kind of the current container, or an empty string if no
// script has run yet.
func (r *Runner) Kind() Kind { return r.kind }

// Values returns the values of the current container, in the order they are
// printed.
func (r *Runner) Values() []int {
	if r.current == nil {
		return nil
	}
	values := make([]int, 0, r.current.Len())
	for v := range r.current.All() {
		values = append(values, v)
	}
	return values
}

// Run executes the steps of s in order. It stops and returns an error of type
// *Error at the first step that fails. An unknown container kind is reported
// before any step runs, with an error wrapping ErrUnknownContainer.
func (r *Runner) Run(s *Script) error {
	config := r.config
	config.Apply(s.Options...)

	kind := s.Container
	if kind == "" {
		kind = config.Container
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	r.use(kind)

	logger.Debugf("running %s (%d steps) on a %s container", s.Name, len(s.Steps), kind)

	for _, step := range s.Steps {
		if err := r.exec(&config, step); err != nil {
			return &Error{Line: step.Line, Command: step.String(), Err: err}
		}
	}
	return nil
}

func (r *Runner) use(kind Kind) {
	if r.current != nil {
		r.current.RemoveAll()
	}
	r.kind = kind
	r.current = newContainer(kind)
}

func (r *Runner) exec(config *Config, step Step) error {
	cmd, ok := lookupCommand(step.Command)
	if !ok {
		return ErrUnknownCommand
	}
	if len(step.Args) != len(cmd.Args) && cmd.Name != "use" {
		return fmt.Errorf("%w: expected %d but found %d (usage: %s)", ErrArgs, len(cmd.Args), len(step.Args), cmd.Usage())
	}
	if !cmd.supports(r.kind) {
		return fmt.Errorf("%w on a %s container", ErrUnsupported, r.kind)
	}
	r.stats.Steps++

	switch cmd.Name {
	case "use":
		if _, err := ParseKind(string(step.Kind)); err != nil {
			return err
		}
		r.use(step.Kind)
		return nil
	case "print":
		r.stats.Prints++
		return r.print(config)
	case "len":
		return r.println(config, strconv.Itoa(r.current.Len()))
	case "clear":
		r.current.RemoveAll()
		return nil
	}

	switch c := r.current.(type) {
	case list.Interface:
		return r.execList(config, c, cmd.Name, step.Args)
	case *stack.Stack:
		return r.execStack(config, c, cmd.Name, step.Args)
	case *queue.Queue:
		return r.execQueue(config, c, cmd.Name, step.Args)
	}
	return ErrUnsupported
}

func (r *Runner) execList(config *Config, l list.Interface, name string, args []int) error {
	switch name {
	case "insertFront":
		l.InsertFront(args[0])
	case "insertBack":
		l.InsertBack(args[0])
	case "insertAfter":
		if !l.InsertAfter(args[0], args[1]) {
			return r.notFound(config, args[0])
		}
	case "removeFront":
		_, ok := l.RemoveFront()
		return r.removed(config, ok)
	case "removeBack":
		_, ok := l.RemoveBack()
		return r.removed(config, ok)
	case "removeAfter":
		if _, ok := l.RemoveAfter(args[0]); !ok {
			return r.notFound(config, args[0])
		}
		r.stats.Removes++
		return nil
	default:
		return ErrUnsupported
	}
	r.stats.Inserts++
	return nil
}

func (r *Runner) execStack(config *Config, s *stack.Stack, name string, args []int) error {
	switch name {
	case "push":
		s.Push(args[0])
		r.stats.Inserts++
		return nil
	case "pop":
		v, ok := s.Pop()
		if ok {
			r.stats.Removes++
		}
		return r.printResult(config, v, ok)
	case "peek":
		v, ok := s.Peek()
		return r.printResult(config, v, ok)
	default:
		return ErrUnsupported
	}
}

func (r *Runner) execQueue(config *Config, q *queue.Queue, name string, args []int) error {
	switch name {
	case "enqueue":
		q.Enqueue(args[0])
		r.stats.Inserts++
		return nil
	case "dequeue":
		v, ok := q.Dequeue()
		if ok {
			r.stats.Removes++
		}
		return r.printResult(config, v, ok)
	case "peek":
		v, ok := q.PeekFront()
		return r.printResult(config, v, ok)
	default:
		return ErrUnsupported
	}
}

func (r *Runner) removed(config *Config, ok bool) error {
	if !ok {
		return r.empty(config)
	}
	r.stats.Removes++
	return nil
}

// printResult writes the value produced by a command, or "empty" when the
// container had no value to produce.
func (r *Runner) printResult(config *Config, value int, ok bool) error {
	if !ok {
		if err := r.println(config, "empty"); err != nil {
			return err
		}
		return r.empty(config)
	}
	return r.println(config, strconv.Itoa(value))
}

func (r *Runner) notFound(config *Config, target int) error {
	r.stats.Misses++
	logger.Debugf("%d not found in the %s container", target, r.kind)
	if config.Strict {
		return fmt.Errorf("%w: %d", ErrNotFound, target)
	}
	return nil
}

func (r *Runner) empty(config *Config) error {
	r.stats.Empties++
	logger.Debugf("the %s container is empty", r.kind)
	if config.Strict {
		return ErrEmpty
	}
	return nil
}

func (r *Runner) print(config *Config) error {
	values := make([]string, 0, r.current.Len())
	for v := range r.current.All() {
		values = append(values, strconv.Itoa(v))
	}
	return r.println(config, strings.Join(values, config.Separator))
}

func (r *Runner) println(config *Config, line string) error {
	_, err := io.WriteString(config.Output, line+"\n")
	return err
}
