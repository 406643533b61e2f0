// Package seq implements an iterator that pulls elements from a standard
// library iter.Seq.
//
// The sequence is converted with iter.Pull on the first call to Next.  Its
// resources are released when it is exhausted, when the context passed to
// Next is cancelled, or when Stop is called.  Callers that abandon an
// iterator part way through should call Stop.
package seq

import (
	"context"
	"iter"
)

// Iterator reads the elements of type T produced by an iter.Seq.
type Iterator[T any] struct {
	s    iter.Seq[T]
	next func() (T, bool)
	stop func()
	item T
	err  error
	done bool
}

// New returns an implementation of Iterator that pulls elements from s.
// s is not started until the first call to Next.
//
// Iterator does not support the Size interface.
func New[T any](s iter.Seq[T]) Iterator[T] {
	return Iterator[T]{
		s: s,
	}
}

// Next pulls the next element from the sequence.  It returns false when
// the sequence ends or the context is cancelled.
func (i *Iterator[T]) Next(ctx context.Context) bool {
	if i.done {
		return false
	}

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		i.Stop()
		return false
	default:
	}

	if i.next == nil {
		i.next, i.stop = iter.Pull(i.s)
	}

	item, ok := i.next()
	if !ok {
		i.Stop()
		return false
	}

	i.item = item
	return true
}

// Get returns the element pulled by the last successful call to Next,
// or the zero value of T.
func (i *Iterator[T]) Get() T {
	return i.item
}

// Error returns the context's error if it was cancelled during a call
// to Next.
func (i *Iterator[T]) Error() error {
	return i.err
}

// Stop releases the sequence.  Subsequent calls to Next return false.
// It is safe to call Stop more than once, and before Next.
func (i *Iterator[T]) Stop() {
	i.done = true
	if i.stop != nil {
		i.stop()
	}
}
