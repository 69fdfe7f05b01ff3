package script

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned when a script uses a command which does
	// not exist.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownContainer is returned when a script names a container kind
	// which does not exist.
	ErrUnknownContainer = errors.New("unknown container")

	// ErrArgs is returned when a command is given the wrong number or type of
	// arguments.
	ErrArgs = errors.New("invalid arguments")

	// ErrUnsupported is returned when a command is not supported by the
	// current container.
	ErrUnsupported = errors.New("unsupported command")

	// ErrNotFound is returned in strict mode when the target value of a
	// command is not found in the container.
	ErrNotFound = errors.New("target not found")

	// ErrEmpty is returned in strict mode when a command needs a value from
	// an empty container.
	ErrEmpty = errors.New("container is empty")
)

// Error carries the location of a failing step.
type Error struct {
	Line    int
	Command string
	Err     error
}

func (e *Error) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Command, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
