// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package interleave merges an arbitrary number of sequences into a
// single sequence that visits each source in round-robin order.
//
// Each source is guaranteed to be behind the most advanced source by at
// most one pull: exactly one source is advanced per element of the
// merged sequence, and the cursor visits every source once per round.
// Sources that run out of values are skipped; the merged sequence ends
// only once a complete round over every source yields nothing.
//
// # One-shot merging
//
// [Seq] is the usual entry point. It accepts any number of [iter.Seq]
// values and returns a self-contained sequence suitable for an ordinary
// range loop:
//
//	for v := range interleave.Seq(odds, evens, primes) {
//	    fmt.Println(v)
//	}
//
// [Seq2] is the pairwise equivalent for [iter.Seq2] sources.
//
// # Incremental construction
//
// An [Iter] gives explicit control over the merge. Sources may be added
// with [Iter.Push] before or between pulls, and elements are drawn one
// at a time with [Iter.Next]:
//
//	it := interleave.New[int]()
//	it.Push(slices.Values(a))
//	it.Push(slices.Values(b))
//	for v, ok := it.Next(); ok; v, ok = it.Next() {
//	    fmt.Println(v)
//	}
//
// Sources that are not backed by an [iter.Seq] can participate via
// [Iter.PushFunc], which accepts a bare pull function.
//
// # Teardown
//
// Sources added with [Iter.Push] are owned by the [Iter] and are
// released by [Iter.Stop]. Callers that abandon a merge before it ends
// should call Stop; the sequences returned by [Seq] and [Seq2] do this
// automatically when the loop ends or breaks.
//
// # Pacing
//
// The [pace] sub-package adapts any sequence, merged or otherwise, to a
// token-bucket rate.
package interleave
