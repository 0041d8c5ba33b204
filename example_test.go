package slist_test

import (
	"fmt"

	"github.com/snwfog/slist.go"
)

func Example() {
	l := slist.New[int]()
	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)
	fmt.Println(l, l.Len())

	l.InsertAfter(l.Begin(), 10)
	fmt.Println(l, l.Len())

	l.EraseAfter(l.Begin())
	fmt.Println(l, l.Len())

	l.Clear()
	fmt.Println(l, l.IsEmpty())

	// Output:
	// [1 2 3] 3
	// [1 10 2 3] 4
	// [1 2 3] 3
	// [] true
}

func ExampleLess() {
	fmt.Println(slist.Less(slist.Of(1, 2, 3), slist.Of(1, 2, 4)))
	fmt.Println(slist.Less(slist.Of(1, 2), slist.Of(1, 2, 3)))
	fmt.Println(slist.Equal(slist.Of(1, 2, 3), slist.Of(1, 2, 4)))

	// Output:
	// true
	// true
	// false
}

func ExampleList_BeforeBegin() {
	l := slist.Of("b", "c")
	it := l.InsertAfter(l.BeforeBegin(), "a")
	for ; !it.Equal(l.End()); it = it.Next() {
		fmt.Print(it.Value())
	}
	fmt.Println()

	// Output:
	// abc
}
