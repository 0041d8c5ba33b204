package slist

// Position is a cursor into a List. Both Iterator and ConstIterator are
// positions, so a mutable iterator can be passed wherever a read-only one is
// expected.
type Position[T any] interface {
	position() *node[T]
}

// region Iterator

// Iterator references a node of a List and allows changing its element.
// The zero value equals End.
//
// An iterator is invalidated when the node it references is erased.
// Insertions elsewhere do not affect it.
type Iterator[T any] struct {
	n      *node[T]
	before bool // references the sentinel
}

func (it Iterator[T]) position() *node[T] {
	return it.n
}

// Value returns the referenced element. It panics on End.
func (it Iterator[T]) Value() T {
	return deref(it.n, it.before).value
}

// Ptr returns the address of the referenced element.
func (it Iterator[T]) Ptr() *T {
	return &deref(it.n, it.before).value
}

func (it Iterator[T]) Set(v T) {
	deref(it.n, it.before).value = v
}

// Next returns an iterator to the following node. Advancing End panics.
func (it Iterator[T]) Next() Iterator[T] {
	check(it.n != nil, "advance past end")
	return Iterator[T]{n: it.n.next}
}

// Equal reports whether it and other reference the same node.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.position()
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n, before: it.before}
}

// endregion

// region ConstIterator

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	n      *node[T]
	before bool
}

func (it ConstIterator[T]) position() *node[T] {
	return it.n
}

func (it ConstIterator[T]) Value() T {
	return deref(it.n, it.before).value
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	check(it.n != nil, "advance past end")
	return ConstIterator[T]{n: it.n.next}
}

func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.position()
}

// endregion

// region List cursors

// Begin references the first element, or End when the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin references the sentinel in front of the first element. It is a
// valid position for InsertAfter and EraseAfter but must not be dereferenced;
// debug builds trap that.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head, before: true}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: &l.head, before: true}
}

// endregion

func deref[T any](n *node[T], before bool) *node[T] {
	if n == nil {
		panic("slist: dereference of end iterator")
	}
	check(!before, "dereference of before-begin iterator")

	return n
}
