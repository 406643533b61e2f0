package accumulate

import (
	"context"
	"iter"
)

// All returns a standard library sequence over the remaining elements of i.
// Ranging over the sequence reads i with ctx; since i is consumed, the
// sequence can only be ranged over once.  Exiting the range loop early
// leaves the rest of i unread; call Stop to release it.
func All[T any](ctx context.Context, i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.Next(ctx) {
			if !yield(i.Get()) {
				return
			}
		}
	}
}

// All returns a standard library sequence over the stage's elements, read
// using the stage's context.  If the range loop exits early the stage is
// stopped, releasing its sources.
func (s *Stage[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.i.Next(s.opts.ctx) {
			if !yield(s.i.Get()) {
				s.Stop()
				return
			}
		}
	}
}

// AccumulateSeq returns a sequence of the running accumulation of the
// elements of seq, starting with seed and combining with f.
//
// Every range over the returned sequence ranges over seq afresh, starting
// again from seed.
func AccumulateSeq[T any, A any](seq iter.Seq[T], seed A, f AccumulateFunc[A, T]) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := seed
		for item := range seq {
			acc = f(acc, item)
			if !yield(acc) {
				return
			}
		}
	}
}
