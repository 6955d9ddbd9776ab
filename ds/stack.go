package ds

type Stack[T any] struct {
	slice []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		slice: make([]T, 0),
	}
}

func (r *Stack[T]) Len() int {
	return len(r.slice)
}

func (r *Stack[T]) Push(t T) {
	r.slice = append(r.slice, t)
}

func (r *Stack[T]) Pop() T {
	last := r.slice[r.Len()-1]
	r.slice = r.slice[:r.Len()-1]
	return last
}

// Drain pops every element, most recently pushed first.
func (r *Stack[T]) Drain() []T {
	ts := make([]T, 0, r.Len())
	for r.Len() > 0 {
		ts = append(ts, r.Pop())
	}
	return ts
}
