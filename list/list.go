// Package list contains implementations of singly, doubly and circular linked
// lists of integers.
//
// The three list types share the same set of operations, captured by the
// Interface type, and only differ in how nodes are linked together:
//
//   - Singly chains nodes forward from a head pointer,
//   - Doubly also links each node to its predecessor and tracks the tail,
//   - Circular links the last node back to the first one, forming a ring.
//
// All list types have a zero-value which represents an empty list, so they can
// be constructed by simple declaration:
//
//	l := list.Doubly{}
//	l.InsertFront(1)
//	l.InsertBack(2)
//	l.InsertAfter(1, 3)
//
//	for v := range l.All() {
//		...
//	}
//
// Operations which target a value (InsertAfter, RemoveAfter) do nothing when
// the value is not found in the list, and report it by returning false.
// Operations removing values from an empty list also return false rather than
// a zero value, so programs can tell an empty list apart from one containing
// zeros.
//
// Like the other containers of this module, lists do not make choices on how
// synchronization should be handled, which makes them unsafe to use
// concurrently from multiple goroutines.
package list

import "iter"

// Interface is the interface implemented by the list types of this package.
type Interface interface {
	// Returns the number of values in the list.
	Len() int

	// Returns the value at the front of the list.
	Front() (value int, ok bool)

	// Returns the value at the back of the list.
	Back() (value int, ok bool)

	// Inserts a value at the front of the list.
	InsertFront(value int)

	// Inserts a value at the back of the list.
	InsertBack(value int)

	// Inserts a value right after the first occurrence of target.
	InsertAfter(target, value int) (inserted bool)

	// Removes the value at the front of the list.
	RemoveFront() (value int, removed bool)

	// Removes the value at the back of the list.
	RemoveBack() (value int, removed bool)

	// Removes the value right after the first occurrence of target.
	RemoveAfter(target int) (value int, removed bool)

	// Returns a sequence of the list values, from front to back. The sequence
	// does not modify the list and can be iterated multiple times.
	All() iter.Seq[int]

	// Removes all values from the list.
	RemoveAll()
}

var (
	_ Interface = (*Singly)(nil)
	_ Interface = (*Doubly)(nil)
	_ Interface = (*Circular)(nil)
)
