package slist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterator1(t *testing.T) {
	ll := Of(1, 2, 3)

	for it := ll.CBegin(); !it.Equal(ll.CEnd()); it = it.Next() {
		t.Log(it.Value())
	}

	it := ll.Begin()
	assert.Equal(t, 1, it.Value())

	it = it.Next()
	assert.Equal(t, 2, it.Value())

	it = it.Next()
	assert.Equal(t, 3, it.Value())

	it = it.Next()
	assert.True(t, it.Equal(ll.End()))
	assert.True(t, it.Equal(ll.CEnd()))
}

func TestIteratorEmpty(t *testing.T) {
	ll := New[string]()
	assert.True(t, ll.Begin().Equal(ll.End()))
	assert.True(t, ll.CBegin().Equal(ll.CEnd()))
	assert.True(t, ll.BeforeBegin().Next().Equal(ll.End()))
	assert.False(t, ll.BeforeBegin().Equal(ll.End()))
}

func TestIteratorEqualityIsIdentity(t *testing.T) {
	ll := Of(5, 5)
	first, second := ll.Begin(), ll.Begin().Next()
	assert.Equal(t, first.Value(), second.Value())
	assert.False(t, first.Equal(second))

	assert.True(t, first.Equal(first.Const()))
	assert.True(t, first.Const().Equal(first))
	assert.True(t, ll.BeforeBegin().Equal(ll.CBeforeBegin()))

	other := Of(5, 5)
	assert.False(t, first.Equal(other.Begin()))
}

func TestIteratorMutation(t *testing.T) {
	ll := Of(1, 2, 3)
	for it := ll.Begin(); !it.Equal(ll.End()); it = it.Next() {
		it.Set(it.Value() * 10)
	}
	assert.Equal(t, []int{10, 20, 30}, ll.Slice())

	*ll.Begin().Next().Ptr() = 0
	assert.Equal(t, []int{10, 0, 30}, ll.Slice())
}

func TestIteratorSurvivesInsertions(t *testing.T) {
	ll := Of(1, 4)
	first := ll.Begin()
	last := first.Next()

	ll.InsertAfter(first, 3)
	ll.InsertAfter(first, 2)
	ll.PushFront(0)

	assert.Equal(t, 1, first.Value())
	assert.Equal(t, 4, last.Value())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ll.Slice())

	ll.EraseAfter(first)
	assert.Equal(t, 1, first.Value())
	assert.Equal(t, 3, first.Next().Value())
}

func TestAll(t *testing.T) {
	ll := Of(1, 2, 3, 4)

	var got []int
	for v := range ll.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestBeforeBeginIteratorAdvances(t *testing.T) {
	ll := Of(1, 2)
	bb := ll.BeforeBegin()
	assert.True(t, bb.before)
	assert.False(t, bb.Next().before)
	assert.True(t, bb.Const().before)
	assert.False(t, ll.CBeforeBegin().Next().before)
	assert.True(t, bb.Next().Equal(ll.Begin()))
	assert.Equal(t, 1, bb.Next().Value())
}
