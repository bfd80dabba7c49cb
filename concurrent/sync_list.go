package concurrent

import (
	"sync"

	"github.com/AbhishekDinesan/hedgehog/heap/linked_list"
)

// SyncList guards a LinkedList with a single exclusive lock held for the
// whole of each operation.
type SyncList[T comparable] struct {
	mu sync.Mutex
	l  linked_list.LinkedList[T]
}

func NewSyncList[T comparable]() *SyncList[T] {
	return &SyncList[T]{}
}

func (s *SyncList[T]) Add(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.l.Add(value)
}

func (s *SyncList[T]) Remove(value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(value)
}

func (s *SyncList[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.String()
}
