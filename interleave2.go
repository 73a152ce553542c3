// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package interleave

import "iter"

// An Iter2 is a pairwise version of [Iter] for [iter.Seq2] sources.
//
// The zero value is ready to use and behaves like [New2].
type Iter2[K, V any] struct {
	cursor  int
	empty   bool
	sources []func() (K, V, bool)
	stops   []func()
}

// New2 returns an empty [Iter2].
func New2[K, V any]() *Iter2[K, V] {
	return &Iter2[K, V]{}
}

// Of2 returns an [Iter2] over the given sequences. The sources are
// visited in argument order.
func Of2[K, V any](seqs ...iter.Seq2[K, V]) *Iter2[K, V] {
	ret := New2[K, V]()
	for _, seq := range seqs {
		ret.Push(seq)
	}
	return ret
}

// Push appends a sequence to the collection of sources. See
// [Iter.Push].
func (it *Iter2[K, V]) Push(seq iter.Seq2[K, V]) {
	next, stop := iter.Pull2(seq)
	it.sources = append(it.sources, next)
	it.stops = append(it.stops, stop)
}

// PushFunc appends a pull function to the collection of sources. See
// [Iter.PushFunc].
func (it *Iter2[K, V]) PushFunc(next func() (K, V, bool)) {
	it.sources = append(it.sources, next)
	it.stops = append(it.stops, func() {})
}

// Next returns the next pair in the merged sequence. See [Iter.Next].
func (it *Iter2[K, V]) Next() (K, V, bool) {
	for {
		if it.cursor < len(it.sources) {
			if k, v, ok := it.sources[it.cursor](); ok {
				it.empty = false
				it.cursor++
				return k, v, true
			}
			it.cursor++
			continue
		}
		it.cursor = 0
		if it.empty {
			return *new(K), *new(V), false
		}
		it.empty = true
	}
}

// All adapts the [Iter2] to the range-over-func protocol. See
// [Iter.All].
func (it *Iter2[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Stop releases every source that was added with [Iter2.Push]. See
// [Iter.Stop].
func (it *Iter2[K, V]) Stop() {
	for _, stop := range it.stops {
		stop()
	}
}

// Seq2 is a pairwise version of [Seq].
func Seq2[K, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	it := Of2(seqs...)
	return func(yield func(K, V) bool) {
		defer it.Stop()
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}
