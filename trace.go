// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Diagnostic output effect. There is no ambient global sink: a computation
// that traces declares it, and the sink is injected when the effect is
// discharged by [RunTrace] or a combined runner.

// Sink consumes one diagnostic line.
type Sink func(msg string)

// WriterSink adapts an io.Writer into a Sink, one line per message.
func WriterSink(w io.Writer) Sink {
	return func(msg string) {
		fmt.Fprintln(w, msg)
	}
}

// CollectSink appends messages to out.
func CollectSink(out *[]string) Sink {
	return func(msg string) {
		*out = append(*out, msg)
	}
}

// ZapSink emits each message at info level on a zap logger.
func ZapSink(l *zap.Logger) Sink {
	return func(msg string) {
		l.Info(msg)
	}
}

// TraceContext holds the state needed for trace effect dispatch.
type TraceContext struct {
	Sink Sink
}

// Trace is the effect operation for emitting one diagnostic message.
// Perform(Trace{Message: s}) sends s to the injected sink and yields Unit.
type Trace struct{ Message string }

func (Trace) OpResult() Unit { panic("phantom") }

// DispatchTrace handles Trace in trace handler dispatch.
func (o Trace) DispatchTrace(ctx *TraceContext) (Resumed, bool) {
	ctx.Sink(o.Message)
	return Unit{}, true
}

// TraceLine emits one diagnostic message.
func TraceLine(msg string) Eff[Unit] {
	return Perform(Trace{Message: msg})
}

// TraceMsg fuses Trace + Then: emits msg, then runs next.
func TraceMsg[B any](msg string, next Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Trace{Message: msg}
		m.f = next
		m.k = k
		m.resume = thenMarkerResume[B]
		return m
	}
}

// ExprTraceLine is the defunctionalized counterpart of [TraceLine].
func ExprTraceLine(msg string) Expr[Unit] {
	return ExprPerform(Trace{Message: msg})
}

// traceHandler implements Handler for trace-only computations.
type traceHandler[R any] struct {
	ctx *TraceContext
}

// Dispatch implements Handler for zero-allocation handling.
func (h *traceHandler[R]) Dispatch(op Operation) (Resumed, bool) {
	if top, ok := op.(interface {
		DispatchTrace(ctx *TraceContext) (Resumed, bool)
	}); ok {
		return top.DispatchTrace(h.ctx)
	}
	unhandledEffect("TraceHandler")
	return nil, false
}

// TraceHandler creates a handler for trace effects bound to sink.
func TraceHandler[R any](sink Sink) *traceHandler[R] {
	return &traceHandler[R]{ctx: &TraceContext{Sink: sink}}
}

// RunTrace runs a tracing computation, sending each message to sink.
func RunTrace[A any](sink Sink, m Eff[A]) A {
	return Handle(m, TraceHandler[A](sink))
}

// CollectTrace runs a tracing computation and returns the result together
// with every message emitted, in emission order.
func CollectTrace[A any](m Eff[A]) (A, []string) {
	var out []string
	result := Handle(m, TraceHandler[A](CollectSink(&out)))
	return result, out
}

// RunTraceExpr runs a defunctionalized tracing computation.
func RunTraceExpr[A any](sink Sink, m Expr[A]) A {
	return HandleExpr(m, TraceHandler[A](sink))
}
