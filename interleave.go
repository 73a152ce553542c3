// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package interleave

import "iter"

// An Iter merges an ordered collection of sequences by visiting each
// source in round-robin order. Exactly one source is pulled per call to
// [Iter.Next], so no source is ever more than one pull ahead of any
// other still-active source. A source that runs out of values is
// skipped on subsequent rounds; the merged sequence ends once a
// complete round over every source yields nothing.
//
// The zero value is ready to use and behaves like [New].
type Iter[T any] struct {
	cursor  int
	empty   bool // set when an entire round produced no values
	sources []func() (T, bool)
	stops   []func()
}

// New returns an empty [Iter]. Sources are added with [Iter.Push] or
// [Iter.PushFunc].
func New[T any]() *Iter[T] {
	return &Iter[T]{}
}

// Of returns an [Iter] over the given sequences. The sources are
// visited in argument order.
func Of[T any](seqs ...iter.Seq[T]) *Iter[T] {
	ret := New[T]()
	for _, seq := range seqs {
		ret.Push(seq)
	}
	return ret
}

// Push appends a sequence to the collection of sources. The [Iter]
// assumes ownership of the sequence and will release it when
// [Iter.Stop] is called.
//
// Push is intended for use while setting up an [Iter], but it is safe
// to call between pulls. Adding a source does not move the cursor and
// does not reset sources that have already run out of values.
func (it *Iter[T]) Push(seq iter.Seq[T]) {
	next, stop := iter.Pull(seq)
	it.sources = append(it.sources, next)
	it.stops = append(it.stops, stop)
}

// PushFunc appends a pull function to the collection of sources. This
// allows sources that are not backed by an [iter.Seq] to participate in
// the merge. The function must return false once it has no more values
// and on every call thereafter; any cleanup it requires remains the
// caller's concern.
func (it *Iter[T]) PushFunc(next func() (T, bool)) {
	it.sources = append(it.sources, next)
	it.stops = append(it.stops, func() {})
}

// Next returns the next value in the merged sequence. It pulls from the
// source under the cursor, skipping forward past sources that have run
// out of values. It returns false once a complete round over every
// source produces nothing, and on every subsequent call unless a new
// source is pushed.
func (it *Iter[T]) Next() (T, bool) {
	for {
		if it.cursor < len(it.sources) {
			if value, ok := it.sources[it.cursor](); ok {
				it.empty = false
				it.cursor++
				return value, true
			}
			// Exhausted sources stay in place so that indices, and
			// therefore visitation order, remain stable.
			it.cursor++
			continue
		}
		it.cursor = 0
		if it.empty {
			return *new(T), false
		}
		it.empty = true
	}
}

// All adapts the [Iter] to the range-over-func protocol. Breaking out
// of the loop does not disturb the merge; a later call to All or
// [Iter.Next] picks up where the loop left off.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Stop releases every source that was added with [Iter.Push]. It is
// safe to call Stop multiple times. After Stop, all sources report
// exhaustion, so the merged sequence drains to its end.
//
// Callers that consume an [Iter] to completion need not call Stop, but
// those that abandon one mid-merge should, to release any goroutines
// parked in [iter.Pull].
func (it *Iter[T]) Stop() {
	for _, stop := range it.stops {
		stop()
	}
}

// Seq merges the given sequences in round-robin order. Unlike [Of],
// the returned sequence is self-contained: all sources are released
// when the loop ends or breaks. Ranging over the sequence a second
// time yields nothing.
func Seq[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	it := Of(seqs...)
	return func(yield func(T) bool) {
		defer it.Stop()
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
