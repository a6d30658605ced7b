package linked_list

import "github.com/goose-lang/std"

// Node holds one value and the link to its successor. A node is owned by
// exactly one holder: either the list head or its predecessor's next link.
type Node[T any] struct {
	value    T
	next     *Node[T]
	released bool
}

// NewNode allocates a node with an empty successor link.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns a copy of the stored value.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the successor link, nil for the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// release consumes an unlinked node. It must be called exactly once per node.
func (n *Node[T]) release() T {
	std.Assert(!n.released)
	v := n.value
	var zero T
	n.value = zero
	n.next = nil
	n.released = true
	return v
}
