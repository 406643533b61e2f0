package accumulate

import (
	"context"
	"errors"

	"github.com/jake-scott/go-accumulate/iter/slice"
)

var errIs66 = errors.New("found 66")

var hundredInts = func() []int {
	out := make([]int, 100)
	for i := range out {
		out[i] = i + 1
	}
	return out
}()

const sumHundredInts = 5050

// countingIter records how many times its source is advanced
type countingIter[T any] struct {
	slice.Iterator[T]
	nexts int
	pulls int
}

func newCountingIter[T any](s []T) *countingIter[T] {
	return &countingIter[T]{Iterator: slice.New(s)}
}

func (c *countingIter[T]) Next(ctx context.Context) bool {
	c.nexts++
	ok := c.Iterator.Next(ctx)
	if ok {
		c.pulls++
	}
	return ok
}

// badSliceIter fails when it reaches the number 66
type badSliceIter struct {
	slice.Iterator[int]
	err error
}

func (b *badSliceIter) Next(ctx context.Context) bool {
	if b.err != nil {
		return false
	}

	ok := b.Iterator.Next(ctx)
	if ok && b.Iterator.Get() == 66 {
		b.err = errIs66
		return false
	}
	return ok
}

func (b *badSliceIter) Error() error {
	return b.err
}

// unsized hides any size capability of the iterator it wraps
type unsized[T any] struct {
	i Iterator[T]
}

func (u *unsized[T]) Next(ctx context.Context) bool { return u.i.Next(ctx) }
func (u *unsized[T]) Get() T                        { return u.i.Get() }
func (u *unsized[T]) Error() error                  { return u.i.Error() }

// boundedIter reports only bounds, not an exact size
type boundedIter[T any] struct {
	unsized[T]
	lower, upper uint
	bounded      bool
}

func newBoundedIter[T any](s []T, lower, upper uint, bounded bool) *boundedIter[T] {
	i := slice.New(s)
	return &boundedIter[T]{
		unsized: unsized[T]{&i},
		lower:   lower,
		upper:   upper,
		bounded: bounded,
	}
}

func (b *boundedIter[T]) SizeHint() (uint, uint, bool) {
	return b.lower, b.upper, b.bounded
}

func drain[T any](ctx context.Context, i Iterator[T]) []T {
	out := []T{}
	for i.Next(ctx) {
		out = append(out, i.Get())
	}
	return out
}

// stoppableIter records calls to Stop
type stoppableIter[T any] struct {
	slice.Iterator[T]
	stops int
}

func (s *stoppableIter[T]) Next(ctx context.Context) bool {
	if s.stops > 0 {
		return false
	}
	return s.Iterator.Next(ctx)
}

func (s *stoppableIter[T]) Stop() {
	s.stops++
}
