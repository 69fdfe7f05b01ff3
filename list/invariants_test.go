package list

import "testing"

type invariantChecker interface {
	checkInvariants(t *testing.T)
}

func (list *Singly) checkInvariants(t *testing.T) {
	t.Helper()
	n := 0
	for node := list.head; node != nil; node = node.next {
		if n++; n > list.size {
			t.Fatalf("singly list chain is longer than its size: size=%d", list.size)
		}
	}
	if n != list.size {
		t.Errorf("singly list size mismatch: got=%d want=%d", list.size, n)
	}
}

func (list *Doubly) checkInvariants(t *testing.T) {
	t.Helper()
	if list.head == nil || list.tail == nil {
		if list.head != list.tail {
			t.Fatalf("doubly list head and tail must be nil together: head=%p tail=%p", list.head, list.tail)
		}
		if list.size != 0 {
			t.Errorf("empty doubly list has non-zero size: %d", list.size)
		}
		return
	}
	if list.head.prev != nil {
		t.Errorf("doubly list head has a predecessor: %d", list.head.prev.value)
	}
	if list.tail.next != nil {
		t.Errorf("doubly list tail has a successor: %d", list.tail.next.value)
	}
	n := 0
	last := (*dnode)(nil)
	for node := list.head; node != nil; node = node.next {
		if n++; n > list.size {
			t.Fatalf("doubly list chain is longer than its size: size=%d", list.size)
		}
		if node.prev != last {
			t.Fatalf("broken back reference at index %d: node=%d", n-1, node.value)
		}
		last = node
	}
	if last != list.tail {
		t.Errorf("doubly list tail is not the end of the chain")
	}
	if n != list.size {
		t.Errorf("doubly list size mismatch: got=%d want=%d", list.size, n)
	}
}

func (list *Circular) checkInvariants(t *testing.T) {
	t.Helper()
	if list.last == nil {
		if list.size != 0 {
			t.Errorf("empty circular list has non-zero size: %d", list.size)
		}
		return
	}
	if list.size <= 0 {
		t.Fatalf("non-empty circular list has size %d", list.size)
	}
	// Following next exactly size times from any node must return to it, and
	// must not pass through the starting node before that.
	for start, i := list.last.next, 0; i < list.size; start, i = start.next, i+1 {
		node := start
		for step := 1; step <= list.size; step++ {
			node = node.next
			if node == nil {
				t.Fatalf("circular list chain is terminated by nil after %d steps", step)
			}
			if node == start && step != list.size {
				t.Fatalf("ring closed after %d steps but size is %d", step, list.size)
			}
		}
		if node != start {
			t.Fatalf("ring did not close after %d steps", list.size)
		}
	}
}
