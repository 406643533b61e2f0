package accumulate

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Tracer records the progress of a stage's processing.
type Tracer interface {
	SubTracer(description string, v ...any) Tracer
	Msg(format string, v ...any)
	End()
}

// TraceFunc defines the function prototype of a tracing function
// Per stage functions can be configured using WithTraceFunc
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to effect
// all stages.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

// ZapTraceFunc returns a trace function that logs trace messages to logger
// at debug level.
func ZapTraceFunc(logger *zap.Logger) TraceFunc {
	sugar := logger.WithOptions(zap.AddCallerSkip(2)).Sugar()
	return func(format string, v ...any) {
		sugar.Debugf(format, v...)
	}
}

type tracer struct {
	begin       time.Time
	description string
	ids         []uint32
	subids      atomic.Uint32
	traceFunc   TraceFunc
}

// NewTracer starts a trace for stage id.  Messages are written with f, or
// with DefaultTracer if f is nil.
func NewTracer(id uint32, description string, f TraceFunc, v ...any) Tracer {
	if f == nil {
		f = DefaultTracer
	}

	t := &tracer{
		description: fmt.Sprintf(description, v...),
		ids:         []uint32{id},
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *tracer) id() string {
	idStrings := make([]string, len(t.ids))
	for i, n := range t.ids {
		idStrings[i] = strconv.Itoa(int(n))
	}
	return strings.Join(idStrings, ".")
}

func (t *tracer) start() {
	t.begin = time.Now()
	t.traceFunc("%s: START [stage #%s] %s", t.begin.Format(time.RFC3339), t.id(), t.description)
}

func (t *tracer) SubTracer(description string, v ...any) Tracer {
	subId := t.subids.Inc()

	t2 := &tracer{
		description: t.description + fmt.Sprintf(" / "+description, v...),
		ids:         append(slices.Clone(t.ids), subId),
		traceFunc:   t.traceFunc,
	}

	t2.start()
	return t2
}

func (t *tracer) Msg(format string, v ...any) {
	var args []any = []any{
		time.Now().Format(time.RFC3339), t.id(), t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [stage #%s] %s: "+format, args...)
}

func (t *tracer) End() {
	t.traceFunc("%s: END [stage #%s] %s (%s)", time.Now().Format(time.RFC3339), t.id(), t.description, time.Since(t.begin))
}

// tracedIterator traces the lifetime of a lazy adaptor: the trace starts
// on the first read and ends when the adaptor is exhausted.
type tracedIterator[T any] struct {
	Iterator[T]
	start func() Tracer
	t     Tracer
	n     uint
	ended bool
}

// traceIterator wraps i so that its reads are traced using the tracer
// returned by start.  If start is nil, i is returned unchanged.
func traceIterator[T any](start func() Tracer, i Iterator[T]) Iterator[T] {
	if start == nil {
		return i
	}

	return withSize[T, T](i, &tracedIterator[T]{Iterator: i, start: start})
}

func (ti *tracedIterator[T]) begin() {
	if ti.t == nil {
		ti.t = ti.start()
	}
}

func (ti *tracedIterator[T]) end() {
	if ti.ended {
		return
	}

	if err := ti.Iterator.Error(); err != nil {
		ti.t.Msg("stopped by error: %s", err)
	}
	ti.t.Msg("done after %d elements", ti.n)
	ti.t.End()
	ti.ended = true
}

func (ti *tracedIterator[T]) Next(ctx context.Context) bool {
	ti.begin()

	if ti.Iterator.Next(ctx) {
		ti.n++
		return true
	}

	ti.end()
	return false
}

func (ti *tracedIterator[T]) SizeHint() (uint, uint, bool) {
	return SizeHintOf(ti.Iterator)
}

func (ti *tracedIterator[T]) Stop() {
	Stop(ti.Iterator)
	if ti.t != nil && !ti.ended {
		ti.t.Msg("stopped after %d elements", ti.n)
		ti.t.End()
	}
	ti.ended = true
}

func (ti *tracedIterator[T]) Count(ctx context.Context) uint {
	ti.begin()
	n := Count(ctx, ti.Iterator)
	ti.n += n
	ti.end()
	return n
}
