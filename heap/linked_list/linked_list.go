package linked_list

import (
	"fmt"
	"strings"
)

// List is a singly-linked list. It owns every node reachable from head.
// The zero value is an empty list ready to use.
//
// WARNING: a List must not be accessed from several goroutines without
// external synchronization.
type List[T comparable] struct {
	head *Node[T]
	len  uint64

	// node bookkeeping, allocated-released == len between operations
	allocated uint64
	released  uint64

	log Logger
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

// SetLogger installs the logger for broken chain reports. nil disables them.
func (l *List[T]) SetLogger(log Logger) {
	l.log = log
}

func (l *List[T]) Len() uint64 {
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Head returns the first node of the chain, nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// PushBack appends value at the end of the chain.
func (l *List[T]) PushBack(value T) {
	n := l.alloc(value)
	l.len++

	if l.head == nil {
		l.head = n
		return
	}

	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = n
}

// PushFront makes value the new head.
func (l *List[T]) PushFront(value T) {
	n := l.alloc(value)
	l.len++

	n.next = l.head
	l.head = n
}

// PopHead removes the last node of the chain and returns its value.
//
// The name is kept for compatibility with existing callers: it is PopTail
// that removes the head.
func (l *List[T]) PopHead() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	if l.head.next == nil {
		last := l.head
		l.head = nil
		l.len--
		return l.free(last), true
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	last := prev.next
	prev.next = nil
	l.len--

	return l.free(last), true
}

// PopTail removes the head node and returns its value. See PopHead.
func (l *List[T]) PopTail() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	first := l.head
	l.head = first.next
	first.next = nil
	l.len--

	return l.free(first), true
}

// Contains reports whether any node holds target.
func (l *List[T]) Contains(target T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == target {
			return true
		}
	}
	return false
}

// InsertAt inserts value so that it ends up at position index. index == Len()
// appends; index > Len() is ignored.
func (l *List[T]) InsertAt(index uint64, value T) {
	if index > l.len {
		return
	}

	if index == 0 {
		l.PushFront(value)
		return
	}

	n := l.alloc(value)
	prev, reached := l.nodeAt(index - 1)
	if prev == nil {
		l.free(n)
		if l.log != nil {
			l.log.InsertAtChainBroken(index, reached)
		}
		return
	}

	n.next = prev.next
	prev.next = n
	l.len++
}

// RemoveAt removes the node at position index and returns its value.
func (l *List[T]) RemoveAt(index uint64) (T, bool) {
	var zero T
	if l.head == nil || index >= l.len {
		return zero, false
	}

	if index == 0 {
		return l.PopTail()
	}

	prev, reached := l.nodeAt(index - 1)
	if prev == nil || prev.next == nil {
		if prev != nil {
			reached = index
		}
		if l.log != nil {
			l.log.RemoveAtChainBroken(index, reached)
		}
		return zero, false
	}

	target := prev.next
	prev.next = target.next
	target.next = nil
	l.len--

	return l.free(target), true
}

// String renders values front to back, e.g. [5 3 2 1].
func (l *List[T]) String() string {
	var buf strings.Builder
	buf.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, n.value)
	}
	buf.WriteByte(']')
	return buf.String()
}

// nodeAt walks to position pos. When the chain is shorter it returns nil and
// the number of nodes it went through.
func (l *List[T]) nodeAt(pos uint64) (*Node[T], uint64) {
	var seen uint64
	for n := l.head; n != nil; n = n.next {
		if seen == pos {
			return n, seen
		}
		seen++
	}
	return nil, seen
}
