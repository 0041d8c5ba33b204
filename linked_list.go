// Package slist implements a singly linked list with a before-begin sentinel,
// forward iterators and lexicographic comparison.
package slist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// New returns an empty list. The zero value of List is also empty and ready to use.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Of returns a list holding values in order.
func Of[T any](values ...T) *List[T] {
	tmp := New[T]()
	tail := &tmp.head
	for _, v := range values {
		tail = tmp.linkAfter(tail, v)
	}

	return tmp
}

// FromSeq returns a list holding the values yielded by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	tmp := New[T]()
	tail := &tmp.head
	for v := range seq {
		tail = tmp.linkAfter(tail, v)
	}

	return tmp
}

// Collect builds a list from seq. It stops at the first non-nil error, drops
// whatever was built so far and returns the error.
func Collect[T any](seq iter.Seq2[T, error]) (*List[T], error) {
	tmp := New[T]()
	tail := &tmp.head
	for v, err := range seq {
		if err != nil {
			pos := tmp.size
			tmp.Clear()
			return nil, errors.Wrapf(err, "collect element %d", pos)
		}

		tail = tmp.linkAfter(tail, v)
	}

	return tmp, nil
}

// region Node
type node[T any] struct {
	value T
	next  *node[T]
}

// endregion

// region List

// List is a singly linked list with a before-begin sentinel.
//
// A List must not be copied by value once used; use Clone or Assign.
// Not safe for concurrent use.
type List[T any] struct {
	head node[T] // sentinel, value is never set
	size int
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first element, false if the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head.next == nil {
		return v, false
	}

	return l.head.next.value, true
}

func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

// PopFront removes the first element. It does nothing on an empty list.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		return
	}

	first := l.head.next
	l.head.next = first.next
	release(first)
	l.size--
}

// InsertAfter links v directly after pos and returns an iterator to it.
// pos must reference a live node of l, BeforeBegin included.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	n := pos.position()
	check(n != nil, "insert after end")
	check(l.owns(n), "insert after a foreign position")

	return Iterator[T]{n: l.linkAfter(n, v)}
}

// EraseAfter removes the node following pos and returns an iterator to the
// node that now follows pos (End if none). pos must have a successor.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	n := pos.position()
	check(n != nil, "erase after end")
	check(n.next != nil, "erase after last element")
	check(l.owns(n), "erase after a foreign position")

	victim := n.next
	n.next = victim.next
	release(victim)
	l.size--

	return Iterator[T]{n: n.next}
}

// Clear drops every element in chain order.
func (l *List[T]) Clear() {
	curr := l.head.next
	for curr != nil {
		next := curr.next
		release(curr)
		curr = next
	}

	l.head.next = nil
	l.size = 0
}

// Swap exchanges the contents of l and other. No element is copied.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Clone returns an independent list holding the same elements.
func (l *List[T]) Clone() *List[T] {
	tmp := New[T]()
	tail := &tmp.head
	for n := l.head.next; n != nil; n = n.next {
		tail = tmp.linkAfter(tail, n.value)
	}

	return tmp
}

// CloneFunc is like Clone but copies each element with copyfn. On the first
// error the partial copy is dropped and the error is returned.
func (l *List[T]) CloneFunc(copyfn func(T) (T, error)) (*List[T], error) {
	tmp := New[T]()
	tail := &tmp.head
	pos := 0
	for n := l.head.next; n != nil; n = n.next {
		v, err := copyfn(n.value)
		if err != nil {
			tmp.Clear()
			return nil, errors.Wrapf(err, "copy element %d", pos)
		}

		tail = tmp.linkAfter(tail, v)
		pos++
	}

	return tmp, nil
}

// Assign replaces the contents of l with a copy of src.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}

	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// AssignFunc replaces the contents of l with a copy of src made by copyfn.
// If copyfn fails, l is left unchanged.
func (l *List[T]) AssignFunc(src *List[T], copyfn func(T) (T, error)) error {
	if l == src {
		return nil
	}

	tmp, err := src.CloneFunc(copyfn)
	if err != nil {
		return errors.Wrap(err, "assign")
	}

	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// All yields the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.size)
	for n := l.head.next; n != nil; n = n.next {
		s = append(s, n.value)
	}

	return s
}

func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')

	return sb.String()
}

func (l *List[T]) linkAfter(n *node[T], v T) *node[T] {
	inserted := &node[T]{value: v, next: n.next}
	n.next = inserted
	l.size++
	return inserted
}

// owns walks the chain, only called from assertions.
func (l *List[T]) owns(n *node[T]) bool {
	if !debug {
		return true
	}

	for curr := &l.head; curr != nil; curr = curr.next {
		if curr == n {
			return true
		}
	}

	return false
}

// release detaches n so stale iterators do not pin the tail of the chain.
func release[T any](n *node[T]) {
	var zero T
	n.value = zero
	n.next = nil
}

// endregion
