package viewstack

import "github.com/PasqualeAiello/io-app/views/view"

type Stack struct {
	stack []view.View
}

// Push a view onto the stack
func (s *Stack) Push(v view.View) {
	s.stack = append(s.stack, v)
}

// Pop returns the last view and removes it from the stack
func (s *Stack) Pop() view.View {
	if len(s.stack) == 0 {
		return nil
	}
	last := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return last
}

// Drop removes up to n views from the top and returns how many were removed.
func (s *Stack) Drop(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(s.stack) {
		n = len(s.stack)
	}
	for i := len(s.stack) - n; i < len(s.stack); i++ {
		s.stack[i] = nil
	}
	s.stack = s.stack[:len(s.stack)-n]
	return n
}

// Peek returns the last view without removing it
func (s *Stack) Peek() view.View {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Views returns the full stack (shallow copy)
func (s *Stack) Views() []view.View {
	cpy := make([]view.View, len(s.stack))
	copy(cpy, s.stack)
	return cpy
}

// Names returns the view names from bottom to top.
func (s *Stack) Names() []string {
	names := make([]string, len(s.stack))
	for i, v := range s.stack {
		names[i] = v.Name()
	}
	return names
}

// Len returns how many views are on the stack
func (s *Stack) Len() int {
	return len(s.stack)
}

// Reset clears the stack
func (s *Stack) Reset() {
	s.stack = nil
}
