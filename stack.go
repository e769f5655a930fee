package robinmap

// node is a cell of an immutable singly-linked list. Once created it is
// never mutated; the stack only moves its head pointer.
type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a LIFO container backed by a linked list. Push and Pop are O(1)
// and never reallocate existing nodes.
//
// The zero value is an empty stack. Like Map, it is not safe for concurrent
// use.
type Stack[T any] struct {
	head   *node[T]
	length int

	emptyT T
}

// NewStack returns a new empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places a value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.head = &node[T]{value: value, next: s.head}
	s.length++
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		return s.emptyT, false
	}

	v := s.head.value
	s.head = s.head.next
	s.length--

	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		return s.emptyT, false
	}

	return s.head.value, true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.length
}

func (s *Stack[T]) IsEmpty() bool {
	return s.length == 0
}
