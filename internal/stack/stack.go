// Package stack provides a minimal generic LIFO stack.
package stack

// Stack is a last-in-first-out collection. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// Push adds an item to the top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
// Returns false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items[last] = zero
	s.items = s.items[:last]
	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of items.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clone returns an independent copy.
func (s *Stack[T]) Clone() *Stack[T] {
	items := make([]T, len(s.items))
	copy(items, s.items)
	return &Stack[T]{items: items}
}
