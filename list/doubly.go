package list

import "iter"

// Doubly is a doubly-linked list of integers.
//
// Each node carries a reference to its predecessor, and the list tracks both
// its head and tail, so insertion and removal at either end run in constant
// time. Operations targeting a value still need to search for it and run in
// O(n).
//
// The zero-value is a valid, empty list.
type Doubly struct {
	head *dnode
	tail *dnode
	size int
}

// Len returns the number of values in the list.
func (list *Doubly) Len() int { return list.size }

// Front returns the value at the front of the list, and false if the list is
// empty.
func (list *Doubly) Front() (value int, ok bool) {
	if node := list.head; node != nil {
		return node.value, true
	}
	return 0, false
}

// Back returns the value at the back of the list, and false if the list is
// empty.
func (list *Doubly) Back() (value int, ok bool) {
	if node := list.tail; node != nil {
		return node.value, true
	}
	return 0, false
}

// InsertFront inserts value at the front of the list.
func (list *Doubly) InsertFront(value int) {
	list.pushFront(&dnode{value: value})
}

// InsertBack inserts value at the back of the list.
func (list *Doubly) InsertBack(value int) {
	list.pushBack(&dnode{value: value})
}

// InsertAfter inserts value right after the first node holding target. The
// list is left unchanged and the method returns false if target was not found.
//
// Complexity: O(n)
func (list *Doubly) InsertAfter(target, value int) (inserted bool) {
	if at := list.find(target); at != nil {
		list.insertAfter(at, &dnode{value: value})
		return true
	}
	return false
}

// RemoveFront removes the value at the front of the list and returns it, or
// returns false if the list was empty.
func (list *Doubly) RemoveFront() (value int, removed bool) {
	if node := list.head; node != nil {
		list.remove(node)
		return node.value, true
	}
	return 0, false
}

// RemoveBack removes the value at the back of the list and returns it, or
// returns false if the list was empty.
func (list *Doubly) RemoveBack() (value int, removed bool) {
	if node := list.tail; node != nil {
		list.remove(node)
		return node.value, true
	}
	return 0, false
}

// RemoveAfter removes the value right after the first node holding target and
// returns it. The method returns false if target was not found, or if it was
// found at the back of the list.
//
// Complexity: O(n)
func (list *Doubly) RemoveAfter(target int) (value int, removed bool) {
	if at := list.find(target); at != nil && at.next != nil {
		node := at.next
		list.remove(node)
		return node.value, true
	}
	return 0, false
}

// All returns a sequence of the list values, from front to back.
//
// All can be used to iterate forward through the list:
//
//	for v := range list.All() {
//		...
//	}
func (list *Doubly) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := list.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Backward returns a sequence of the list values, from back to front, walking
// the references that nodes hold to their predecessors.
func (list *Doubly) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := list.tail; node != nil; node = node.prev {
			if !yield(node.value) {
				return
			}
		}
	}
}

// RemoveAll removes all values from the list, unlinking every node.
func (list *Doubly) RemoveAll() {
	for node := list.head; node != nil; {
		next := node.next
		node.prev = nil
		node.next = nil
		node = next
	}
	list.reset()
}

func (list *Doubly) pushFront(node *dnode) {
	if list.head == nil {
		list.tail = node
	} else {
		node.next = list.head
		list.head.prev = node
	}
	list.head = node
	list.size++
}

func (list *Doubly) pushBack(node *dnode) {
	if list.tail == nil {
		list.head = node
	} else {
		node.prev = list.tail
		list.tail.next = node
	}
	list.tail = node
	list.size++
}

func (list *Doubly) insertAfter(at, node *dnode) {
	if at == list.tail {
		list.pushBack(node)
		return
	}
	node.prev = at
	node.next = at.next
	at.next.prev = node
	at.next = node
	list.size++
}

func (list *Doubly) remove(node *dnode) {
	prev := node.prev
	next := node.next

	node.prev = nil
	node.next = nil

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	if node == list.head {
		list.head = next
	}

	if node == list.tail {
		list.tail = prev
	}

	list.size--
}

func (list *Doubly) reset() {
	list.head = nil
	list.tail = nil
	list.size = 0
}

func (list *Doubly) find(value int) *dnode {
	for node := list.head; node != nil; node = node.next {
		if node.value == value {
			return node
		}
	}
	return nil
}
