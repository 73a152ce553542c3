// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pace adapts sequences to a token-bucket rate.
//
// The helpers in this package compose with any [iter.Seq], including
// the merged sequences produced by the interleave package.
package pace

import (
	"context"
	"errors"
	"iter"
	"runtime/trace"

	"golang.org/x/time/rate"
)

// Seq returns a sequence that yields the elements of items at a
// maximum rate of r elements per second, with bursts of up to b
// elements. The sequence ends early if ctx is canceled while waiting
// for capacity.
//
// Seq panics if r or b is not greater than zero. Each range over the
// returned sequence uses a fresh [rate.Limiter].
func Seq[T any](ctx context.Context, items iter.Seq[T], r float64, b int) iter.Seq[T] {
	validate(r, b)
	return func(yield func(T) bool) {
		l := rate.NewLimiter(rate.Limit(r), b)
		for item := range items {
			if !wait(ctx, l) {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Seq2 is a pairwise version of [Seq].
func Seq2[K, V any](ctx context.Context, items iter.Seq2[K, V], r float64, b int) iter.Seq2[K, V] {
	validate(r, b)
	return func(yield func(K, V) bool) {
		l := rate.NewLimiter(rate.Limit(r), b)
		for k, v := range items {
			if !wait(ctx, l) {
				return
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func validate(r float64, b int) {
	if r <= 0 {
		panic(errors.New("rate must be greater than zero"))
	}
	if b <= 0 {
		panic(errors.New("burst must be greater than zero"))
	}
}

func wait(ctx context.Context, l *rate.Limiter) bool {
	// Fast-path: there's capacity.
	if l.Allow() {
		return true
	}

	defer trace.StartRegion(ctx, "rate limit wait").End()

	return l.Wait(ctx) == nil
}
