package linked_list

import "github.com/goose-lang/std"

func (l *List[T]) alloc(value T) *Node[T] {
	l.allocated = std.SumAssumeNoOverflow(l.allocated, 1)
	return NewNode(value)
}

// free releases a node that is no longer reachable from head.
func (l *List[T]) free(n *Node[T]) T {
	l.released = std.SumAssumeNoOverflow(l.released, 1)
	return n.release()
}

// Release tears the list down, releasing every remaining node once. The list
// is empty afterwards and may be reused.
//
//	l := linked_list.New[int]()
//	defer l.Release()
func (l *List[T]) Release() {
	n := l.head
	l.head = nil
	for n != nil {
		next := n.next
		l.free(n)
		n = next
	}
	l.len = 0

	std.Assert(l.allocated == l.released)
}
