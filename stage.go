package accumulate

import (
	"context"
	"fmt"
	"iter"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/jake-scott/go-accumulate/iter/channel"
	"github.com/jake-scott/go-accumulate/iter/scanner"
	"github.com/jake-scott/go-accumulate/iter/seq"
	"github.com/jake-scott/go-accumulate/iter/slice"
)

// DefaultSizeHint is used by Collect for its initial allocation when the
// underlying iterator cannot provide size infomation and a stage
// specific size hint has not been provided.
var DefaultSizeHint uint = 100

// ErrorContext provides error handler callbacks with a hint about where in
// processing the error occured
type ErrorContext int

const (
	// ErrorContextIterator hints that the error occured reading an iterator
	ErrorContextIterator ErrorContext = iota

	// We don't know which phase of processing the error occured when
	// the hint is ErrorContextOther
	ErrorContextOther
)

func (c ErrorContext) String() string {
	switch c {
	case ErrorContextIterator:
		return "iterator"
	default:
		return "other"
	}
}

// Functions complying with the ErrorHandler prototype can be used to process
// errors reported by a stage's iterator when a terminal operation such as
// Reduce or Collect finishes reading it.  The default handler ignores the
// error.  A custom handler can be provided using the WithErrorHandler option.
//
// Parameters:
//   - where describes the context in which the error occured
//   - err is the error to be handled
//
// The function should return true if the result read so far should be
// kept, or false to discard it.
type ErrorHandler func(where ErrorContext, err error) bool

func nullErrorHandler(ErrorContext, error) bool {
	return true
}

var stageCounter = atomic.NewUint32(0)

// Stage represents one processing phase of a larger pipeline.
// The processing methods of a stage wrap the stage's Iterator in a lazy
// adaptor and return a new Stage that reads from it.  No element is
// processed until a terminal operation, or the caller, reads the last
// stage's iterator.
type Stage[T any] struct {
	i    Iterator[T]
	id   uint32
	opts stageOptions
}

type stageOptions struct {
	inheritOptions bool
	sizeHint       uint
	tracer         TraceFunc
	tracing        bool
	ctx            context.Context
	onError        ErrorHandler
}

func defaultStageOptions() stageOptions {
	return stageOptions{
		ctx:      context.Background(),
		sizeHint: DefaultSizeHint,
		onError:  nullErrorHandler,
	}
}

// StageOptions provide a mechanism to customize how the processing functions
// of a stage opterate.
type StageOption func(g *stageOptions)

// The SizeHint option provides Collect with a guideline regarding the
// number of elements there are to process.  This is only used with
// iterators that cannot provide the information themselves.
//
// If not specified and the iterator cannot provide the information, the default
// value DefaultSizeHint is used.
func SizeHint(hint uint) StageOption {
	return func(o *stageOptions) {
		o.sizeHint = hint
	}
}

// WithContext attaches the provided context to the stage.  The context is
// passed to the iterator whenever the stage's terminal operations read it.
func WithContext(ctx context.Context) StageOption {
	return func(o *stageOptions) {
		o.ctx = ctx
	}
}

// WithTraceFunc sets the trace function for the stage.  Use WithTracing
// to enable/disable tracing.
func WithTraceFunc(f TraceFunc) StageOption {
	return func(o *stageOptions) {
		o.tracer = f
	}
}

// WithTracing enables tracing for the stage.  If a custom trace function
// has not been set using WithTraceFunc, trace messages are printed to stderr.
func WithTracing(enable bool) StageOption {
	return func(o *stageOptions) {
		o.tracing = enable
	}
}

// WithLogger enables tracing for the stage and sends the trace messages
// to logger at debug level.
func WithLogger(logger *zap.Logger) StageOption {
	return func(o *stageOptions) {
		o.tracer = ZapTraceFunc(logger)
		o.tracing = true
	}
}

// WithErrorHandler installs a custom error handler which will be called
// from the terminal operations when the stage's iterator reports an error.
//
// The handler should return true to keep the partial result or false to
// discard it.
//
// The handler can stash the error for use in the pipeline's caller.
func WithErrorHandler(handler ErrorHandler) StageOption {
	return func(o *stageOptions) {
		o.onError = handler
	}
}

// InheritOptions causes this stage's options to be inherited by the next
// stage.  The next stage can override these inherited options.  Further
// inheritence can be disabled by passing this option with a false value.
//
// The default is no inheritence.
func InheritOptions(inherit bool) StageOption {
	return func(o *stageOptions) {
		o.inheritOptions = inherit
	}
}

func (o *stageOptions) processOptions(opts ...StageOption) {
	for _, f := range opts {
		f(o)
	}
}

// NewStage instantiates a pipeline stage from an Iterator and optional
// set of processing optionns
func NewStage[T any](i Iterator[T], opts ...StageOption) *Stage[T] {
	s := &Stage[T]{
		i:    i,
		opts: defaultStageOptions(),
		id:   stageCounter.Inc(),
	}
	s.opts.processOptions(opts...)
	return s
}

// NewSliceStage instantiates a pipeline stage using a slice iterator backed by
// the provided slice.
func NewSliceStage[T any](s []T, opts ...StageOption) *Stage[T] {
	iter := slice.New(s)
	return NewStage[T](&iter, opts...)
}

// NewChannelStage instantiates a pipeline stage using a channel iterator
// backed by the provided channel.
func NewChannelStage[T any](ch chan T, opts ...StageOption) *Stage[T] {
	iter := channel.New[T](ch)
	return NewStage[T](&iter, opts...)
}

// NewScannerStage instantiates a pipeline stage using a scanner iterator,
// backed by the provided scanner.
func NewScannerStage(s scanner.Scanner, opts ...StageOption) *Stage[string] {
	iter := scanner.New(s)
	return NewStage[string](&iter, opts...)
}

// NewSeqStage instantiates a pipeline stage that pulls elements from the
// provided standard library sequence.  The sequence is released when it is
// exhausted or the stage's context is cancelled.
func NewSeqStage[T any](s iter.Seq[T], opts ...StageOption) *Stage[T] {
	i := seq.New(s)
	return NewStage[T](&i, opts...)
}

// Iterator returns the underlying iterator for a stage.  It is most useful
// as a mechanism for retrieving the result from the last stage of a pipeline
// by the caller of the pipeline.
func (s *Stage[T]) Iterator() Iterator[T] {
	return s.i
}

// Error returns the error reported by the stage's iterator, if any.
func (s *Stage[T]) Error() error {
	return s.i.Error()
}

// Stop releases the stage's iterator and the sources it reads from.  It
// should be called when a pipeline is abandoned before it is exhausted.
func (s *Stage[T]) Stop() {
	Stop(s.i)
}

// tracer returns a function that starts a trace for this stage, or nil if
// tracing is disabled.
func (s *Stage[T]) tracer(description string, v ...any) func() Tracer {
	if !s.opts.tracing {
		return nil
	}

	var t T
	description = fmt.Sprintf("(%T) %s", t, description)
	return func() Tracer {
		return NewTracer(s.id, description, s.opts.tracer, v...)
	}
}

func (s *Stage[T]) nextStage(i Iterator[T], opts ...StageOption) *Stage[T] {
	return nextStage(s, i, opts...)
}

func nextStage[T, U any](s *Stage[T], i Iterator[U], opts ...StageOption) *Stage[U] {
	nextStage := &Stage[U]{
		i:  i,
		id: stageCounter.Inc(),
	}

	// if this stage has inheritence enabled them copy its options to the
	// next stage
	if s.opts.inheritOptions {
		nextStage.opts = s.opts
	} else {
		nextStage.opts = defaultStageOptions()
	}

	// process new options on their own to see if we should inherit
	var newOpts stageOptions
	newOpts.processOptions(opts...)

	// .. if so then merge the new opts with the stage options
	if newOpts.inheritOptions {
		nextStage.opts.processOptions(opts...)
	}

	return nextStage
}
