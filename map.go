package accumulate

import (
	"context"
)

// MapFunc is a generic function that takes a single element and returns
// a single transformed element.
//
// Example:
//
//	func domainName(s string) string {
//	    return strings.SplitN(s, "@", 2)[1]
//	}
type MapFunc[T any, M any] func(T) M

// Mapper is an Iterator that transforms each element of a source iterator
// using a MapFunc.  Elements are mapped as they are read.
type Mapper[T any, M any] struct {
	src  Iterator[T]
	f    MapFunc[T, M]
	item M
	ok   bool
	done bool
}

// NewMapper returns an iterator that produces f(e) for each element e of
// src.  If src implements Size, so does the returned iterator.
func NewMapper[T any, M any](src Iterator[T], f MapFunc[T, M]) Iterator[M] {
	return withSize[T, M](src, &Mapper[T, M]{src: src, f: f})
}

// Next reads the next element from the source and maps it.
func (m *Mapper[T, M]) Next(ctx context.Context) bool {
	if m.done {
		return false
	}

	if !m.src.Next(ctx) {
		m.done = true
		return false
	}

	m.item = m.f(m.src.Get())
	m.ok = true
	return true
}

// Get returns the mapped value from the last successful call to Next,
// or the zero value of M.
func (m *Mapper[T, M]) Get() M {
	if !m.ok {
		var ret M
		return ret
	}
	return m.item
}

// Error returns the source's error, if any.
func (m *Mapper[T, M]) Error() error {
	return m.src.Error()
}

// SizeHint forwards the bounds of the source.
func (m *Mapper[T, M]) SizeHint() (uint, uint, bool) {
	if m.done {
		return 0, 0, true
	}
	return SizeHintOf(m.src)
}

// Count consumes the source without calling the map function.
func (m *Mapper[T, M]) Count(ctx context.Context) uint {
	if m.done {
		return 0
	}

	n := Count(ctx, m.src)
	m.done = true
	return n
}

// Stop finishes the mapper and stops its source.
func (m *Mapper[T, M]) Stop() {
	m.done = true
	Stop(m.src)
}

// Map returns a new stage whose elements are this stage's elements
// transformed by m.
//
// If the map function returns values of a different type to the input values,
// the non-OO version of Map() must be used instead.
func (s *Stage[T]) Map(m MapFunc[T, T], opts ...StageOption) *Stage[T] {
	return Map(s, m, opts...)
}

// Map is the non-OO version of Stage.Map().  It must be used in the case
// where the map function returns items of a different type than the input
// elements, due to limitations of Golang's generic syntax.
func Map[T, M any](s *Stage[T], m MapFunc[T, M], opts ...StageOption) *Stage[M] {
	merged := *s
	merged.opts.processOptions(opts...)

	i := NewMapper(s.i, m)
	i = traceIterator(merged.tracer("Map"), i)

	return nextStage(s, i, opts...)
}
