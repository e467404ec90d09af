// Package seq provides an ordered sequence that grows at either end in time
// proportional to the number of items added.
//
// It backs face-boundary reconstruction in package planarity: a boundary walk
// discovered in the forward direction is appended, one discovered against the
// desired orientation is prepended, and neither operation rescans what is
// already stored.
//
//	l := seq.New("p", "q")
//	seq.PrependRange(l, []string{"x", "y"}) // x y p q
//	seq.AppendRange(l, []string{"z"})       // x y p q z
//
// The storage is github.com/emirpasic/gods/lists/doublylinkedlist; List adds
// a typed facade over its interface{} elements.
package seq
