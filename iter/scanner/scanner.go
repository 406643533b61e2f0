// Package scanner implements an iterator over the tokens of a
// bufio.Scanner, such as the lines or words of an io.Reader.
//
// The iterator is fused: after the scanner reports the end of input, an
// error, or a panic, or after the context is cancelled, Next keeps
// returning false without calling the scanner again.
package scanner

import (
	"context"
	"fmt"
)

// Iterator produces one string per token found by its scanner.  The
// number of tokens isn't known in advance, so Iterator does not support
// the Size interface.
type Iterator struct {
	scanner Scanner
	err     error
	done    bool
}

// Scanner is the part of *bufio.Scanner that Iterator uses.  Tests can
// supply their own implementation.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// ErrTooManyTokens is reported by Error when Scan panics.  bufio.Scanner
// panics when a split function keeps returning tokens without advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	} else {
		return fmt.Sprintf("too many tokens: %s", e.err)
	}
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

// New returns an Iterator reading tokens from scanner.  The scanner's
// split function should be set before the first call to Next.
func New(scanner Scanner) Iterator {
	return Iterator{
		scanner: scanner,
	}
}

// Next calls Scan once to move to the next token.  It returns false at
// the end of input, when Scan fails or panics, or when ctx is done; Error
// then says which.  Once Next has returned false it does not call Scan
// again.
func (i *Iterator) Next(ctx context.Context) (ret bool) {
	if i.done {
		return false
	}

	defer func() {
		switch err := recover().(type) {
		default:
			i.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			ret = false
		case error:
			i.err = ErrTooManyTokens{err: err}
			ret = false
		case nil:
		}

		i.done = !ret
	}()

	select {
	case <-ctx.Done():
		i.err = ctx.Err()
		return false
	default:
	}

	return i.scanner.Scan()
}

// Get returns the token found by the last call to Next.
func (i *Iterator) Get() string {
	return i.scanner.Text()
}

// Error returns an ErrTooManyTokens if Scan panicked, or the context's
// error if Next stopped because of it.  Otherwise it returns the scanner's
// Err, which is nil at a clean end of input.
func (i *Iterator) Error() error {
	if i.err != nil {
		return i.err
	}

	return i.scanner.Err()
}
