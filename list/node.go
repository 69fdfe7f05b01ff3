package list

// node is the storage unit of forward-only lists (Singly and Circular). The
// next field is the only reference to the following node; the list which
// created the node owns it until it is removed.
type node struct {
	value int
	next  *node
}

// dnode is the storage unit of Doubly lists. The prev field is a back
// reference used to walk toward the front, it never keeps a node alive on its
// own since every node is also reachable through the next links.
type dnode struct {
	value int
	prev  *dnode
	next  *dnode
}
