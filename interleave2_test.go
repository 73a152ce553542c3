// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package interleave

import (
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	k, v int
}

func TestPairScenario(t *testing.T) {
	r := require.New(t)

	left := func(yield func(int, int) bool) {
		for x := range 3 {
			if !yield(0, x) {
				return
			}
		}
	}
	right := func(yield func(int, int) bool) {
		for x := range 3 {
			if !yield(x, 0) {
				return
			}
		}
	}

	it := Of2[int, int](left, right)
	want := []pair{{0, 0}, {0, 0}, {0, 1}, {1, 0}, {0, 2}, {2, 0}}

	var got []pair
	for k, v := range it.All() {
		got = append(got, pair{k, v})
	}
	r.Equal(want, got)

	_, _, ok := it.Next()
	r.False(ok)
}

func TestEmpty2(t *testing.T) {
	r := require.New(t)

	it := New2[string, int]()
	for range 3 {
		_, _, ok := it.Next()
		r.False(ok)
	}
}

func TestZeroValue2(t *testing.T) {
	r := require.New(t)

	var it Iter2[int, string]
	_, _, ok := it.Next()
	r.False(ok)

	it.Push(slices.All([]string{"a"}))
	k, v, ok := it.Next()
	r.True(ok)
	r.Equal(0, k)
	r.Equal("a", v)
}

func TestPush2AfterTermination(t *testing.T) {
	r := require.New(t)

	it := Of2(slices.All([]string{"a", "b"}))
	got := collect2(it.All())
	r.Equal([]string{"0=a", "1=b"}, got)
	_, _, ok := it.Next()
	r.False(ok)

	it.Push(slices.All([]string{"c"}))
	got = collect2(it.All())
	r.Equal([]string{"0=c"}, got)
}

func TestPushFunc2(t *testing.T) {
	r := require.New(t)

	remaining := 2
	it := New2[int, string]()
	it.PushFunc(func() (int, string, bool) {
		if remaining == 0 {
			return 0, "", false
		}
		remaining--
		return remaining, "fn", true
	})
	it.Push(slices.All([]string{"x", "y"}))

	r.Equal([]string{"1=fn", "0=x", "0=fn", "1=y"}, collect2(it.All()))
}

func TestStop2(t *testing.T) {
	r := require.New(t)

	it := Of2(pairs(0), pairs(100))
	k, v, ok := it.Next()
	r.True(ok)
	r.Equal(0, k)
	r.Equal(0, v)

	it.Stop()
	_, _, ok = it.Next()
	r.False(ok)
	it.Stop()
}

func TestSeq2(t *testing.T) {
	r := require.New(t)

	got := collect2(Seq2(
		slices.All([]string{"a", "b"}),
		slices.All([]string{"x", "y"}),
	))
	r.Equal([]string{"0=a", "0=x", "1=b", "1=y"}, got)
}

func TestSeq2EarlyBreak(t *testing.T) {
	r := require.New(t)

	var got []pair
	for k, v := range Seq2(pairs(0), pairs(50)) {
		got = append(got, pair{k, v})
		if len(got) == 4 {
			break
		}
	}
	r.Equal([]pair{{0, 0}, {50, 50}, {1, 1}, {51, 51}}, got)
}

// pairs returns an unbounded sequence of (i, i) pairs starting at from.
func pairs(from int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := from; ; i++ {
			if !yield(i, i) {
				return
			}
		}
	}
}

// collect2 formats each pair of a bounded sequence as "k=v".
func collect2[K, V any](seq iter.Seq2[K, V]) []string {
	var ret []string
	for k, v := range seq {
		ret = append(ret, fmt.Sprintf("%v=%v", k, v))
	}
	return ret
}
