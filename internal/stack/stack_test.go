package stack

import "testing"

func TestPushPop(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", s.Len())
	}

	item, ok := s.Pop()
	if !ok || item != "b" {
		t.Errorf("Pop() = %q, %v; expected \"b\", true", item, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len() after Pop = %d, expected 1", s.Len())
	}
}

func TestPopEmpty(t *testing.T) {
	var s Stack[uint32]
	if item, ok := s.Pop(); ok || item != 0 {
		t.Errorf("Pop() on empty = %d, %v; expected 0, false", item, ok)
	}
}

func TestPeek(t *testing.T) {
	var s Stack[rune]
	if _, ok := s.Peek(); ok {
		t.Error("Peek() on empty stack should report false")
	}

	s.Push('(')
	s.Push('[')
	top, ok := s.Peek()
	if !ok || top != '[' {
		t.Errorf("Peek() = %q, %v; expected '[', true", top, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Peek() must not remove items, Len() = %d", s.Len())
	}
}

func TestClone(t *testing.T) {
	var s Stack[bool]
	s.Push(true)
	s.Push(false)

	c := s.Clone()
	c.Pop()
	c.Pop()

	if s.Len() != 2 {
		t.Errorf("original Len() = %d after draining clone, expected 2", s.Len())
	}
	if c.Len() != 0 {
		t.Errorf("clone Len() = %d, expected 0", c.Len())
	}
}
