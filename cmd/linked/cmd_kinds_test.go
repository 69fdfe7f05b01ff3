package main_test

import (
	. "gopkg.in/check.v1"

	linked "github.com/segmentio/linked/cmd/linked"
)

func (s *linkedSuite) TestKinds(c *C) {
	err := linked.Run([]string{"kinds"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, `Kind      Description
singly    forward-only linked list
doubly    linked list with back references
circular  singly linked ring
stack     LIFO stack over a singly linked list
queue     FIFO queue with front and back references
`)
}

func (s *linkedSuite) TestKindsCommands(c *C) {
	err := linked.Run([]string{"kinds", "stack"})
	c.Assert(err, IsNil)
	c.Check(s.Stdout(), Equals, `Command       Description
use <kind>    switch to a new empty container
push <value>  push a value on top of the stack
pop           remove and print the value on top of the stack
peek          print the next value without removing it
print         print the values of the container
len           print the number of values in the container
clear         remove all values from the container
`)
}

func (s *linkedSuite) TestKindsUnknown(c *C) {
	err := linked.Run([]string{"kinds", "tree"})
	c.Check(err, ErrorMatches, `unknown container: "tree"`)
}
