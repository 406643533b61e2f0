// Package accumulate provides a lazy iterator adaptor that yields the
// running accumulation of a source iterator, together with the lazy
// map and filter adaptors and pipeline stages it composes with.
//
// Accumulate is similar to Reduce, except that instead of returning only
// the final result it produces every intermediate one.  The last element
// produced by an accumulating iterator is what Reduce would have returned
// given the same seed and function.
//
//	it := accumulate.NewAccumulator(&src, 1, func(acc, i int) int {
//	    return acc * i
//	})
//	for it.Next(ctx) {
//	    fmt.Println(it.Get()) // 1, 2, 6, 24, 120 for an input of 1..5
//	}
package accumulate

import (
	"context"
	"fmt"
)

// AccumulateFunc is a generic function that combines the current
// accumulated value with the next element of a stream, returning the new
// accumulated value.
//
// Example:
//
//	func runningTotal(total float64, payment Payment) float64 {
//	    return total + payment.Amount
//	}
type AccumulateFunc[A any, T any] func(acc A, item T) A

// Accumulator is an Iterator that produces the running accumulation of
// the elements of a source iterator.
//
// Each call to Next advances the source by exactly one element, combines
// it with the accumulated value and stores the result, which Get then
// returns.  The seed is never produced on its own.  Once the source is
// exhausted, Next returns false forever and the source is not read again.
//
// An Accumulator is not safe for concurrent use.
type Accumulator[T any, A any] struct {
	src  Iterator[T]
	acc  A
	f    AccumulateFunc[A, T]
	n    uint
	done bool
}

// NewAccumulator returns an iterator producing the running accumulation
// of src, starting from seed and combining with f.  The accumulator takes
// ownership of src; the caller should not read from src afterwards.
//
// If src implements Size, so does the returned iterator.  Either way it
// implements SizeHinter, forwarding the bounds reported by src.
func NewAccumulator[T any, A any](src Iterator[T], seed A, f AccumulateFunc[A, T]) Iterator[A] {
	a := &Accumulator[T, A]{
		src: src,
		acc: seed,
		f:   f,
	}

	return withSize[T, A](src, a)
}

// Next pulls one element from the source and combines it with the
// accumulated value.  It returns false if the source is exhausted or
// failed, in which case Error returns the reason.
//
// f is called synchronously; if it panics, the panic is not recovered.
func (a *Accumulator[T, A]) Next(ctx context.Context) bool {
	if a.done {
		return false
	}

	if !a.src.Next(ctx) {
		a.done = true
		return false
	}

	a.acc = a.f(a.acc, a.src.Get())
	a.n++
	return true
}

// Get returns the accumulated value produced by the last successful
// call to Next, or the zero value of A if Next has not yet succeeded.
func (a *Accumulator[T, A]) Get() A {
	if a.n == 0 {
		var ret A
		return ret
	}

	return a.acc
}

// Error returns the source's error, if any.
func (a *Accumulator[T, A]) Error() error {
	return a.src.Error()
}

// SizeHint forwards the bounds of the source unchanged, as each source
// element produces exactly one accumulated value.
func (a *Accumulator[T, A]) SizeHint() (uint, uint, bool) {
	if a.done {
		return 0, 0, true
	}

	return SizeHintOf(a.src)
}

// Count consumes the rest of the source and returns the number of
// elements that remained.  The accumulate function is not called.
func (a *Accumulator[T, A]) Count(ctx context.Context) uint {
	if a.done {
		return 0
	}

	n := Count(ctx, a.src)
	a.done = true
	return n
}

// Stop finishes the accumulator and stops its source.
func (a *Accumulator[T, A]) Stop() {
	a.done = true
	Stop(a.src)
}

// String describes the accumulator's current state.  The accumulate
// function is not shown.
func (a *Accumulator[T, A]) String() string {
	return fmt.Sprintf("Accumulator[%T](acc=%v, consumed=%d, done=%v)", a.acc, a.acc, a.n, a.done)
}

// Accumulate is the non-OO version of Stage.Accumulate().  It must be used
// when the accumulated value is of a different type than the stage's
// elements.
func Accumulate[T any, A any](s *Stage[T], seed A, f AccumulateFunc[A, T], opts ...StageOption) *Stage[A] {
	merged := *s
	merged.opts.processOptions(opts...)

	i := NewAccumulator(s.i, seed, f)
	i = traceIterator(merged.tracer("Accumulate"), i)

	return nextStage(s, i, opts...)
}

// Accumulate returns a new stage that produces the running accumulation
// of this stage's elements, starting with seed.  No element is processed
// until the new stage's iterator is read.
func (s *Stage[T]) Accumulate(seed T, f AccumulateFunc[T, T], opts ...StageOption) *Stage[T] {
	return Accumulate(s, seed, f, opts...)
}
