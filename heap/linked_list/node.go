package linked_list

// Node is one link of a LinkedList chain. Each node is owned by exactly one
// predecessor; the first real node is owned by the list's sentinel.
type Node[T comparable] struct {
	value T
	next  *Node[T]
}

func newNode[T comparable](value T) *Node[T] {
	return &Node[T]{value: value}
}
