package list

import "iter"

// Singly is a forward-only linked list of integers.
//
// Insertion and removal at the front of the list run in constant time,
// operations at the back of the list require walking the chain and run in
// O(n).
//
// The zero-value is a valid, empty list.
type Singly struct {
	head *node
	size int
}

// Len returns the number of values in the list.
func (list *Singly) Len() int { return list.size }

// Front returns the value at the front of the list, and false if the list is
// empty.
func (list *Singly) Front() (value int, ok bool) {
	if node := list.head; node != nil {
		return node.value, true
	}
	return 0, false
}

// Back returns the value at the back of the list, and false if the list is
// empty.
//
// Complexity: O(n)
func (list *Singly) Back() (value int, ok bool) {
	if node := list.last(); node != nil {
		return node.value, true
	}
	return 0, false
}

// InsertFront inserts value at the front of the list.
func (list *Singly) InsertFront(value int) {
	list.head = &node{value: value, next: list.head}
	list.size++
}

// InsertBack inserts value at the back of the list.
//
// Complexity: O(n)
func (list *Singly) InsertBack(value int) {
	n := &node{value: value}
	if last := list.last(); last == nil {
		list.head = n
	} else {
		last.next = n
	}
	list.size++
}

// InsertAfter inserts value right after the first node holding target. The
// list is left unchanged and the method returns false if target was not found.
//
// Complexity: O(n)
func (list *Singly) InsertAfter(target, value int) (inserted bool) {
	if at := list.find(target); at != nil {
		at.next = &node{value: value, next: at.next}
		list.size++
		return true
	}
	return false
}

// RemoveFront removes the value at the front of the list and returns it, or
// returns false if the list was empty.
func (list *Singly) RemoveFront() (value int, removed bool) {
	n := list.head
	if n == nil {
		return 0, false
	}
	list.head = n.next
	list.size--
	n.next = nil
	return n.value, true
}

// RemoveBack removes the value at the back of the list and returns it, or
// returns false if the list was empty.
//
// Complexity: O(n)
func (list *Singly) RemoveBack() (value int, removed bool) {
	if list.head == nil {
		return 0, false
	}
	if list.head.next == nil {
		return list.RemoveFront()
	}
	prev := list.head
	for prev.next.next != nil {
		prev = prev.next
	}
	n := prev.next
	prev.next = nil
	list.size--
	return n.value, true
}

// RemoveAfter removes the value right after the first node holding target and
// returns it. The method returns false if target was not found, or if it was
// found at the back of the list.
//
// Complexity: O(n)
func (list *Singly) RemoveAfter(target int) (value int, removed bool) {
	at := list.find(target)
	if at == nil || at.next == nil {
		return 0, false
	}
	n := at.next
	at.next = n.next
	n.next = nil
	list.size--
	return n.value, true
}

// All returns a sequence of the list values, from front to back.
func (list *Singly) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := list.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// RemoveAll removes all values from the list, unlinking every node.
func (list *Singly) RemoveAll() {
	for n := list.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	list.head = nil
	list.size = 0
}

func (list *Singly) last() *node {
	n := list.head
	if n != nil {
		for n.next != nil {
			n = n.next
		}
	}
	return n
}

func (list *Singly) find(value int) *node {
	for n := list.head; n != nil; n = n.next {
		if n.value == value {
			return n
		}
	}
	return nil
}
