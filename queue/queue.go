// Package queue provides a FIFO queue of integers backed by a singly linked
// chain of nodes.
//
// Queues do not synchronize access to their values, they are unsafe to use
// concurrently from multiple goroutines.
package queue

import "iter"

// Queue is a first-in first-out container of integers. Values are enqueued at
// the back and dequeued from the front, both operations run in constant time.
//
// The zero-value is a valid, empty queue.
type Queue struct {
	front *node
	back  *node
	size  int
}

type node struct {
	value int
	next  *node
}

// Len returns the number of values in the queue.
func (q *Queue) Len() int { return q.size }

// Enqueue appends value at the back of the queue.
func (q *Queue) Enqueue(value int) {
	n := &node{value: value}
	if q.back == nil {
		q.front = n
	} else {
		q.back.next = n
	}
	q.back = n
	q.size++
}

// Dequeue removes the value at the front of the queue and returns it, or
// returns false if the queue was empty.
func (q *Queue) Dequeue() (value int, ok bool) {
	n := q.front
	if n == nil {
		return 0, false
	}
	q.front = n.next
	if q.front == nil {
		q.back = nil
	}
	n.next = nil
	q.size--
	return n.value, true
}

// PeekFront returns the value at the front of the queue without removing it,
// or returns false if the queue is empty.
func (q *Queue) PeekFront() (value int, ok bool) {
	if q.front != nil {
		return q.front.value, true
	}
	return 0, false
}

// All returns a sequence of the values in the queue, from front to back.
func (q *Queue) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := q.front; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// RemoveAll removes all values from the queue, unlinking every node.
func (q *Queue) RemoveAll() {
	for n := q.front; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	q.front = nil
	q.back = nil
	q.size = 0
}
