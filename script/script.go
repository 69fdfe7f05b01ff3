// Package script implements a small command language driving the containers of
// this module.
//
// A script is a sequence of steps, each naming a command and its integer
// arguments, applied in order to the current container:
//
//	use circular
//	insertFront 1
//	insertBack 2
//	insertAfter 2 3
//	print
//
// Scripts can be written as plain text, one command per line, or as YAML
// documents (see ParseText and ParseYAML). A Runner executes scripts and writes
// the values produced by print, pop, dequeue and peek commands to its output.
package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a container type that scripts can drive.
type Kind string

const (
	Singly   Kind = "singly"
	Doubly   Kind = "doubly"
	Circular Kind = "circular"
	Stack    Kind = "stack"
	Queue    Kind = "queue"
)

var kinds = []Kind{Singly, Doubly, Circular, Stack, Queue}

// Kinds returns the list of container kinds.
func Kinds() []Kind { return append([]Kind(nil), kinds...) }

// ParseKind returns the container kind named by s.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, kind := range kinds {
		if k == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContainer, s)
}

// Description returns a short human readable description of the kind.
func (k Kind) Description() string {
	switch k {
	case Singly:
		return "forward-only linked list"
	case Doubly:
		return "linked list with back references"
	case Circular:
		return "singly linked ring"
	case Stack:
		return "LIFO stack over a singly linked list"
	case Queue:
		return "FIFO queue with front and back references"
	default:
		return ""
	}
}

func (k Kind) isList() bool {
	return k == Singly || k == Doubly || k == Circular
}

// Step is a single command of a script.
type Step struct {
	// Line number of the step in the script source, used in error messages.
	Line int
	// Canonical name of the command.
	Command string
	// Container kind switched to by the use command.
	Kind Kind
	// Integer arguments of the command.
	Args []int
}

func (s Step) String() string {
	b := new(strings.Builder)
	b.WriteString(s.Command)
	if s.Kind != "" {
		b.WriteByte(' ')
		b.WriteString(string(s.Kind))
	}
	for _, arg := range s.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(arg))
	}
	return b.String()
}

// Script is a parsed sequence of steps.
type Script struct {
	// Name of the script, usually the file it was read from.
	Name string
	// Kind of container the script starts with. When empty, the runner uses
	// the container kind of its configuration.
	Container Kind
	// Options applied on top of the runner configuration while the script
	// runs.
	Options []Option
	// Steps of the script, in execution order.
	Steps []Step
}
