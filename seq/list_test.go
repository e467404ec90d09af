// SPDX-License-Identifier: MIT
// Package seq_test verifies ordering of AppendRange/PrependRange.

package seq_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabula/seq"
)

func TestPrependRange_KeepsSourceOrder(t *testing.T) {
	t.Parallel()

	l := seq.New("p", "q")
	seq.PrependRange(l, []string{"x", "y"})
	assert.Equal(t, []string{"x", "y", "p", "q"}, l.Values())
}

func TestAppendRange_KeepsSourceOrder(t *testing.T) {
	t.Parallel()

	l := seq.New(1, 2)
	seq.AppendRange(l, []int{3, 4, 5})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())
}

func TestRanges_Mixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ops  func(l *seq.List[int])
		want []int
	}{
		{"prepend onto empty", func(l *seq.List[int]) { seq.PrependRange(l, []int{7, 8}) }, []int{7, 8}},
		{"append onto empty", func(l *seq.List[int]) { seq.AppendRange(l, []int{7, 8}) }, []int{7, 8}},
		{"empty ranges are no-ops", func(l *seq.List[int]) {
			seq.AppendRange(l, nil)
			seq.PrependRange(l, []int{})
		}, []int{}},
		{"alternating", func(l *seq.List[int]) {
			seq.AppendRange(l, []int{3})
			seq.PrependRange(l, []int{1, 2})
			seq.AppendRange(l, []int{4})
			seq.PrependRange(l, []int{0})
		}, []int{0, 1, 2, 3, 4}},
		{"one-at-a-time prepend reverses", func(l *seq.List[int]) {
			for _, v := range []int{1, 2, 3} {
				seq.PrependRange(l, []int{v})
			}
		}, []int{3, 2, 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l := seq.New[int]()
			tc.ops(l)
			assert.Equal(t, tc.want, l.Values())
			assert.Equal(t, len(tc.want), l.Len())
		})
	}
}

func TestSeqSources(t *testing.T) {
	t.Parallel()

	l := seq.New("m")
	seq.PrependSeq(l, slices.Values([]string{"a", "b"}))
	seq.AppendSeq(l, slices.Values([]string{"y", "z"}))
	assert.Equal(t, []string{"a", "b", "m", "y", "z"}, l.Values())

	first, ok := l.First()
	require.True(t, ok)
	assert.Equal(t, "a", first)
	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, "z", last)
}

func TestEmptyEnds(t *testing.T) {
	t.Parallel()

	l := seq.New[string]()
	_, ok := l.First()
	assert.False(t, ok)
	_, ok = l.Last()
	assert.False(t, ok)
}

func TestAll_StopsEarly(t *testing.T) {
	t.Parallel()

	l := seq.New(1, 2, 3, 4)
	var got []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
}
