package search

// Frontier holds pending entries. The pop order decides the traversal order.
type Frontier[T any] interface {
	Push(item T)
	// Pop removes and returns the next item, or ErrEmptyFrontier.
	Pop() (T, error)
	Empty() bool
	Len() int
}

// Stack is a LIFO Frontier.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the most recently pushed item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmptyFrontier
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]

	return item, nil
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Queue is a FIFO Frontier. Pop is amortised O(1): the consumed prefix is
// dropped once it outgrows the live part.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push adds item at the tail.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes the oldest item.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if q.head == len(q.items) {
		return zero, ErrEmptyFrontier
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	} else if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items, q.head = q.items[:n], 0
	}

	return item, nil
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.head == len(q.items) }

// Len returns the number of items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }
