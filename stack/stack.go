// Package stack implements the Befunge93 value stack: a LIFO sequence
// of signed integers where popping an empty stack yields 0. Underflow
// is defined by the language as the value zero, never an error.
package stack

// Stack holds the engine's working values. The zero value is ready to
// use; New is provided for symmetry with the other packages.
type Stack struct {
	items []int64
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v int64) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value, or 0 if the stack is empty.
func (s *Stack) Pop() int64 {
	if len(s.items) == 0 {
		return 0
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

// Peek returns the top value without removing it, or 0 if empty.
func (s *Stack) Peek() int64 {
	if len(s.items) == 0 {
		return 0
	}
	return s.items[len(s.items)-1]
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

// Reset discards all values.
func (s *Stack) Reset() {
	s.items = s.items[:0]
}

// Snapshot returns the values bottom-first. The result is a copy.
func (s *Stack) Snapshot() []int64 {
	out := make([]int64, len(s.items))
	copy(out, s.items)
	return out
}
