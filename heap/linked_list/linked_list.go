package linked_list

import (
	"fmt"
	"strings"

	"github.com/goose-lang/std"
)

// LinkedList is a singly-linked list with a permanent sentinel node at the
// front. head always points at the sentinel and tail at the last node in the
// chain (the sentinel itself when the list is empty).
//
// The zero value is an empty list ready to use.
type LinkedList[T comparable] struct {
	root *Node[T]
	head *Node[T]
	tail *Node[T]
}

func New[T comparable]() *LinkedList[T] {
	l := &LinkedList[T]{}
	l.lazyInit()
	return l
}

func (l *LinkedList[T]) lazyInit() {
	if l.root != nil {
		return
	}
	// the sentinel's value is a placeholder and never read as data
	var placeholder T
	l.root = newNode(placeholder)
	l.head = l.root
	l.tail = l.root
}

// Add appends value to the end of the list.
func (l *LinkedList[T]) Add(value T) {
	l.lazyInit()
	n := newNode(value)
	std.Assert(l.tail.next == nil)
	l.tail.next = n
	l.tail = n
}

// Remove unlinks the first node (nearest the head) holding value. It reports
// whether a node was removed.
func (l *LinkedList[T]) Remove(value T) bool {
	l.lazyInit()
	for current := l.head; current.next != nil; current = current.next {
		if current.next.value != value {
			continue
		}
		removed := current.next
		current.next = removed.next
		removed.next = nil
		if current.next == nil {
			// removed the tail
			l.tail = current
		}
		return true
	}
	return false
}

// String renders the chain head to tail, e.g. "10 -> 20 -> null".
func (l *LinkedList[T]) String() string {
	var b strings.Builder
	if l.root != nil {
		for n := l.root.next; n != nil; n = n.next {
			fmt.Fprintf(&b, "%v -> ", n.value)
		}
	}
	b.WriteString("null")
	return b.String()
}
