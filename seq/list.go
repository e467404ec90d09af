// SPDX-License-Identifier: MIT
// Package: tabula/seq
//
// list.go — typed doubly linked list plus AppendRange/PrependRange.
//
// Complexity:
//   • AppendRange/PrependRange: O(k) for k added items, independent of Len().
//   • AppendSeq/PrependSeq: O(k); PrependSeq buffers the k items once.
//   • Values/All: O(n).

package seq

import (
	"iter"

	dll "github.com/emirpasic/gods/lists/doublylinkedlist"
)

// List is an ordered sequence of T. The zero value is not usable; call New.
type List[T any] struct {
	l *dll.List
}

// New returns a List holding items in order.
func New[T any](items ...T) *List[T] {
	l := &List[T]{l: dll.New()}
	AppendRange(l, items)
	return l
}

// Len returns the number of items.
func (l *List[T]) Len() int { return l.l.Size() }

// First returns the first item, or false on an empty list.
func (l *List[T]) First() (T, bool) {
	return l.at(0)
}

// Last returns the last item, or false on an empty list.
func (l *List[T]) Last() (T, bool) {
	return l.at(l.l.Size() - 1)
}

// Values returns the items in order as a fresh slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.l.Size())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// All iterates the items front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.l.Iterator()
		for it.Next() {
			if !yield(it.Value().(T)) {
				return
			}
		}
	}
}

// at reads index i; the first/last ends are O(1) in the underlying list.
func (l *List[T]) at(i int) (T, bool) {
	var zero T
	v, ok := l.l.Get(i)
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// AppendRange adds items after the current last element, in source order.
func AppendRange[T any](l *List[T], items []T) {
	if len(items) == 0 {
		return
	}
	l.l.Append(boxed(items)...)
}

// PrependRange adds items before the current first element, keeping source
// order among them: prepending [x y] onto [p q] yields [x y p q].
func PrependRange[T any](l *List[T], items []T) {
	if len(items) == 0 {
		return
	}
	l.l.Prepend(boxed(items)...)
}

// AppendSeq is AppendRange for an iterator source.
func AppendSeq[T any](l *List[T], items iter.Seq[T]) {
	for v := range items {
		l.l.Append(v)
	}
}

// PrependSeq is PrependRange for an iterator source. The source is drained
// once into a buffer so the prepended block keeps its order.
func PrependSeq[T any](l *List[T], items iter.Seq[T]) {
	var buf []T
	for v := range items {
		buf = append(buf, v)
	}
	PrependRange(l, buf)
}

func boxed[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i, v := range items {
		out[i] = v
	}
	return out
}
