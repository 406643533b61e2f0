package accumulate

// ReduceFunc is a generic function that combines an accumulated value with
// a single element, returning the new accumulated value.  It has the same
// shape as AccumulateFunc, but is applied by terminal Reduce operations
// that only return the final value.
type ReduceFunc[T any, A any] func(A, T) A

// Reduce reads every remaining element of the stage and combines them with
// r, starting with initial, returning the final value.
//
// If the stage's iterator reports an error, it is passed to the stage's
// error handler.  If the handler returns false, initial is returned.
func (s *Stage[T]) Reduce(initial T, r ReduceFunc[T, T], opts ...StageOption) T {
	return Reduce(s, initial, r, opts...)
}

// Reduce is the non-OO version of Stage.Reduce().  It must be used in the
// case where the reduce function returns a different type than the stage's
// elements.
func Reduce[T, A any](s *Stage[T], initial A, r ReduceFunc[T, A], opts ...StageOption) A {
	merged := *s
	merged.opts.processOptions(opts...)

	if start := merged.tracer("Reduce"); start != nil {
		t := start()
		defer t.End()
	}

	result := initial
	for s.i.Next(merged.opts.ctx) {
		result = r(result, s.i.Get())
	}

	if err := s.i.Error(); err != nil {
		if !merged.opts.onError(ErrorContextIterator, err) {
			return initial
		}
	}

	return result
}

// SliceFromIterator is a reduce function that appends each element to the
// accumulated slice.
func SliceFromIterator[T any](a []T, t T) []T {
	return append(a, t)
}

// Collect reads every remaining element of the stage into a slice.
//
// The slice is allocated using the iterator's size hint, the stage's
// SizeHint option, or DefaultSizeHint, in that order of preference.
// If the stage's iterator reports an error and the error handler returns
// false, an empty slice is returned.
func (s *Stage[T]) Collect(opts ...StageOption) []T {
	merged := *s
	merged.opts.processOptions(opts...)

	hint := merged.opts.sizeHint
	if lower, _, _ := SizeHintOf(s.i); lower > 0 {
		hint = lower
	}

	return Reduce(&merged, make([]T, 0, hint), SliceFromIterator[T])
}
