package accumulate

import (
	"context"
)

// FilterFunc is a generic function type that takes a single element and
// returns true if it is to be included or false if the element is to be
// excluded from the result set.
//
// Example:
//
//	func findEvenInts(i int) bool {
//	    return i%2 == 0
//	}
type FilterFunc[T any] func(T) bool

// Filterer is an Iterator that produces the elements of a source iterator
// for which a FilterFunc returns true.
type Filterer[T any] struct {
	src  Iterator[T]
	f    FilterFunc[T]
	item T
	ok   bool
	done bool
}

// NewFilterer returns an iterator over the elements e of src where f(e) is
// true.  It reads as many source elements as needed to find the next match.
//
// The returned iterator does not implement Size, since the number of
// matches is not known in advance.
func NewFilterer[T any](src Iterator[T], f FilterFunc[T]) *Filterer[T] {
	return &Filterer[T]{src: src, f: f}
}

// Next advances to the next element of the source accepted by the filter
func (fl *Filterer[T]) Next(ctx context.Context) bool {
	if fl.done {
		return false
	}

	for fl.src.Next(ctx) {
		item := fl.src.Get()
		if fl.f(item) {
			fl.item = item
			fl.ok = true
			return true
		}
	}

	fl.done = true
	return false
}

// Get returns the element accepted by the last successful call to Next,
// or the zero value of T.
func (fl *Filterer[T]) Get() T {
	if !fl.ok {
		var ret T
		return ret
	}
	return fl.item
}

// Error returns the source's error, if any.
func (fl *Filterer[T]) Error() error {
	return fl.src.Error()
}

// SizeHint reports a lower bound of zero and the source's upper bound.
func (fl *Filterer[T]) SizeHint() (uint, uint, bool) {
	if fl.done {
		return 0, 0, true
	}

	_, upper, bounded := SizeHintOf(fl.src)
	return 0, upper, bounded
}

// Stop finishes the filter and stops its source.
func (fl *Filterer[T]) Stop() {
	fl.done = true
	Stop(fl.src)
}

// Filter is the non-OO version of Stage.Filter().
func Filter[T any](s *Stage[T], f FilterFunc[T], opts ...StageOption) *Stage[T] {
	return s.Filter(f, opts...)
}

// Filter returns a new stage containing the elements of this stage for
// which f returns true.  Elements are filtered as the new stage is read.
func (s *Stage[T]) Filter(f FilterFunc[T], opts ...StageOption) *Stage[T] {
	merged := *s
	merged.opts.processOptions(opts...)

	var i Iterator[T] = NewFilterer(s.i, f)
	i = traceIterator(merged.tracer("Filter"), i)

	return s.nextStage(i, opts...)
}
