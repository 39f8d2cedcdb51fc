// Package list provides a generic singly-linked list.
//
// The list keeps no tail reference, so Append and Last walk the whole chain.
// It is not safe for concurrent use.
package list

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	Value T
	Next  *node[T]
}

// List is a singly-linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head *node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding items in the same front to back order.
func Of[T any](items ...T) *List[T] {
	l := New[T]()
	for i := len(items) - 1; i >= 0; i-- {
		l.Push(items[i])
	}
	return l
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Push inserts item at the front.
func (l *List[T]) Push(item T) {
	l.head = &node[T]{
		Value: item,
		Next:  l.head,
	}
	l.size++
}

// Pop removes the front element and returns its value.
// It returns false if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.Next
	n.Next = nil
	l.size--
	return n.Value, true
}

// Peek returns the front value without removing it.
func (l *List[T]) Peek() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.Value, true
}

// Last returns the back value. It walks the whole list.
func (l *List[T]) Last() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	for n.Next != nil {
		n = n.Next
	}
	return n.Value, true
}

// Append inserts item at the back. It walks the whole list.
func (l *List[T]) Append(item T) {
	nd := &node[T]{Value: item}
	if l.head == nil {
		l.head = nd
	} else {
		n := l.head
		for n.Next != nil {
			n = n.Next
		}
		n.Next = nd
	}
	l.size++
}

// Clear removes every element, unlinking the nodes one by one from the front.
func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.Next
		n.Next = nil
	}
	l.size = 0
}

// All returns an iterator over the values from front to back.
// The list must not be modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// String renders the values front to back as [a b c].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for n := l.head; n != nil; n = n.Next {
		if n != l.head {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", n.Value)
	}
	sb.WriteString("]")
	return sb.String()
}
