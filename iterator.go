package accumulate

import (
	"context"
	"fmt"
)

// Iterator is a generic interface for one-directional traversal through
// a collection or stream of items.
type Iterator[T any] interface {
	// Next traverses the iterator to the next element
	// Returns true if the iterator advanced, or false if there are no more
	// elements or if an error occured (see Error() below)
	Next(ctx context.Context) bool

	// Get returns current value referred to by the iterator
	Get() T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// Size is an interface that can be implemented by an iterator that
// knows exactly how many elements remain to be traversed.
type Size interface {
	Size() uint
}

// SizeHinter is implemented by iterators that can report bounds on the
// number of remaining elements.  If bounded is false there is no known
// upper bound and upper should be ignored.
type SizeHinter interface {
	SizeHint() (lower uint, upper uint, bounded bool)
}

// Counter is implemented by iterators that can consume themselves and
// report the number of elements more cheaply than by calling Next and Get.
type Counter interface {
	Count(ctx context.Context) uint
}

// Stopper is implemented by iterators that hold resources until they are
// exhausted.  Stop releases them early; Next returns false afterwards.
// Adaptors implement Stopper by stopping their source.
type Stopper interface {
	Stop()
}

// Stop releases i and, transitively, the source it reads from, if i
// implements Stopper.  Callers that stop reading an iterator before it is
// exhausted should call Stop.
func Stop[T any](i Iterator[T]) {
	if s, ok := i.(Stopper); ok {
		s.Stop()
	}
}

// SizeHintOf returns the bounds on the number of elements remaining in i.
// Iterators implementing Size report an exact count, those implementing
// SizeHinter report their own bounds, and any other iterator reports
// a lower bound of zero and no upper bound.
func SizeHintOf[T any](i Iterator[T]) (lower uint, upper uint, bounded bool) {
	switch it := i.(type) {
	case Size:
		n := it.Size()
		return n, n, true
	case SizeHinter:
		return it.SizeHint()
	default:
		return 0, 0, false
	}
}

// Count consumes i and returns the number of elements it produced.
func Count[T any](ctx context.Context, i Iterator[T]) uint {
	if c, ok := i.(Counter); ok {
		return c.Count(ctx)
	}

	var n uint
	for i.Next(ctx) {
		n++
	}
	return n
}

// sized exposes the Size capability of an adaptor whose source has an
// exact size.  The adaptor itself must implement SizeHinter.
type sized[T any] struct {
	Iterator[T]
}

func (s sized[T]) Size() uint {
	n, _, _ := s.SizeHint()
	return n
}

func (s sized[T]) SizeHint() (uint, uint, bool) {
	return s.Iterator.(SizeHinter).SizeHint()
}

func (s sized[T]) Count(ctx context.Context) uint {
	return Count(ctx, s.Iterator)
}

func (s sized[T]) Stop() {
	Stop(s.Iterator)
}

func (s sized[T]) String() string {
	return fmt.Sprint(s.Iterator)
}

// withSize returns it, wrapped so that it implements Size if src does.
func withSize[T, U any](src Iterator[T], it Iterator[U]) Iterator[U] {
	if _, ok := src.(Size); ok {
		return sized[U]{it}
	}
	return it
}
