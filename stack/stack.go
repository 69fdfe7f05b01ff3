// Package stack provides a LIFO stack of integers built on top of a singly
// linked list.
//
// Stacks do not synchronize access to their values, they are unsafe to use
// concurrently from multiple goroutines.
package stack

import (
	"iter"

	"github.com/segmentio/linked/list"
)

// Stack is a last-in first-out container of integers. Values are pushed and
// popped at the front of the underlying list, both operations run in constant
// time.
//
// The zero-value is a valid, empty stack.
type Stack struct {
	list list.Singly
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int { return s.list.Len() }

// Push pushes value on top of the stack.
func (s *Stack) Push(value int) {
	s.list.InsertFront(value)
}

// Pop removes the value on top of the stack and returns it, or returns false
// if the stack was empty.
func (s *Stack) Pop() (value int, ok bool) {
	return s.list.RemoveFront()
}

// Peek returns the value on top of the stack without removing it, or returns
// false if the stack is empty.
func (s *Stack) Peek() (value int, ok bool) {
	return s.list.Front()
}

// All returns a sequence of the values on the stack, from top to bottom.
func (s *Stack) All() iter.Seq[int] {
	return s.list.All()
}

// RemoveAll removes all values from the stack.
func (s *Stack) RemoveAll() {
	s.list.RemoveAll()
}
