package slist

import "cmp"

// region Equality

// Equal reports whether a and b have the same length and equal elements in
// order. A list always equals itself without being walked.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}

	if a.size != b.size {
		return false
	}

	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}

	return true
}

// endregion

// region Ordering

// Less reports whether a orders before b lexicographically. A proper prefix
// orders before the longer list.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return LessFunc(a, b, cmp.Less[T])
}

func LessEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(b, a)
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Less(b, a)
}

func GreaterEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or +1 depending on how a orders against b.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return +1
	}

	return 0
}

// LessFunc is Less with a caller supplied strict weak ordering.
func LessFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil; x, y = x.next, y.next {
		if y == nil || less(y.value, x.value) {
			return false
		}

		if less(x.value, y.value) {
			return true
		}
	}

	return y != nil
}

func LessEqualFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	return !LessFunc(b, a, less)
}

func GreaterFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	return LessFunc(b, a, less)
}

func GreaterEqualFunc[T any](a, b *List[T], less func(x, y T) bool) bool {
	return !LessFunc(a, b, less)
}

// endregion

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
