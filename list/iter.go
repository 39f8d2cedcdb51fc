package list

import "iter"

// IntoIter yields the values of a consumed list, front to back.
type IntoIter[T any] struct {
	next *node[T]
	left int
}

// IntoIter moves the whole chain out of l into a one-shot iterator.
// l is left empty.
func (l *List[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		next: l.head,
		left: l.size,
	}
	l.head = nil
	l.size = 0
	return it
}

// Next returns the next value. Once exhausted it keeps returning false.
func (it *IntoIter[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	n := it.next
	it.next = n.Next
	n.Next = nil
	it.left--
	return n.Value, true
}

func (it *IntoIter[T]) Len() int {
	return it.left
}

func (it *IntoIter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
