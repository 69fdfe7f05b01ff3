package list

import "iter"

// Circular is a singly-linked ring of integers.
//
// The list only tracks its last node, whose successor is the front of the list,
// so insertion at both ends and removal at the front run in constant time.
// Removal at the back needs to find the predecessor of the last node and runs
// in O(n).
//
// Since nodes of a ring are never terminated by nil, every walk through the
// list is bounded by the number of nodes it holds.
//
// The zero-value is a valid, empty list.
type Circular struct {
	last *node
	size int
}

// Len returns the number of values in the list.
func (list *Circular) Len() int { return list.size }

// Front returns the value at the front of the list, and false if the list is
// empty.
func (list *Circular) Front() (value int, ok bool) {
	if list.last != nil {
		return list.last.next.value, true
	}
	return 0, false
}

// Back returns the value at the back of the list, and false if the list is
// empty.
func (list *Circular) Back() (value int, ok bool) {
	if list.last != nil {
		return list.last.value, true
	}
	return 0, false
}

// InsertFront inserts value at the front of the list.
func (list *Circular) InsertFront(value int) {
	list.link(&node{value: value})
}

// InsertBack inserts value at the back of the list.
func (list *Circular) InsertBack(value int) {
	n := &node{value: value}
	list.link(n)
	list.last = n
}

// InsertAfter inserts value right after the first node holding target. The
// scan looks at the back of the list first, then from the front. When target is
// found at the back of the list, the new value becomes the back of the list. The list is left unchanged and the method
// returns false if target was not found.
//
// Complexity: O(n)
func (list *Circular) InsertAfter(target, value int) (inserted bool) {
	at := list.find(target)
	if at == nil {
		return false
	}
	n := &node{value: value, next: at.next}
	at.next = n
	if at == list.last {
		list.last = n
	}
	list.size++
	return true
}

// RemoveFront removes the value at the front of the list and returns it, or
// returns false if the list was empty.
func (list *Circular) RemoveFront() (value int, removed bool) {
	if list.last == nil {
		return 0, false
	}
	return list.unlinkAfter(list.last), true
}

// RemoveBack removes the value at the back of the list and returns it, or
// returns false if the list was empty.
//
// Complexity: O(n)
func (list *Circular) RemoveBack() (value int, removed bool) {
	if list.last == nil {
		return 0, false
	}
	prev := list.last.next
	for prev.next != list.last {
		prev = prev.next
	}
	return list.unlinkAfter(prev), true
}

// RemoveAfter removes the value right after the first node holding target and
// returns it, scanning like InsertAfter. When target is found at the back of
// the list, the front value is removed.
//
// The method returns false if target was not found, or if the list holds a
// single value: a node is never removed as its own successor.
//
// Complexity: O(n)
func (list *Circular) RemoveAfter(target int) (value int, removed bool) {
	at := list.find(target)
	if at == nil || at.next == at {
		return 0, false
	}
	return list.unlinkAfter(at), true
}

// All returns a sequence of the list values, starting at the front of the
// list and stopping after the back value.
func (list *Circular) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if list.last == nil {
			return
		}
		for n := list.last.next; ; n = n.next {
			if !yield(n.value) || n == list.last {
				return
			}
		}
	}
}

// RemoveAll removes all values from the list, unlinking every node.
func (list *Circular) RemoveAll() {
	if list.last != nil {
		n := list.last.next
		list.last.next = nil
		for n != nil {
			next := n.next
			n.next = nil
			n = next
		}
	}
	list.last = nil
	list.size = 0
}

// link inserts n as the successor of the last node, which makes it the front
// of the list. It does not move the last node, unless the list was empty.
func (list *Circular) link(n *node) {
	if list.last == nil {
		n.next = n
		list.last = n
	} else {
		n.next = list.last.next
		list.last.next = n
	}
	list.size++
}

// unlinkAfter removes the successor of prev from the ring and returns its
// value. Removing the only node of the ring collapses the list to empty.
func (list *Circular) unlinkAfter(prev *node) int {
	n := prev.next
	switch {
	case n == prev:
		list.last = nil
	case n == list.last:
		prev.next = n.next
		list.last = prev
	default:
		prev.next = n.next
	}
	n.next = nil
	list.size--
	return n.value
}

// find returns the first node holding value, starting the scan at the last
// node, then walking from the front of the list until the scan returns to the
// last node.
func (list *Circular) find(value int) *node {
	if list.last == nil {
		return nil
	}
	for n := list.last; ; {
		if n.value == value {
			return n
		}
		if n = n.next; n == list.last {
			return nil
		}
	}
}
