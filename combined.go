// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Combined runners for multi-effect computations. These avoid nesting
// RunRegion inside RunTrace by dispatching both effect families from a
// single handler.

// regionTraceHandler handles one region's operations plus trace output.
type regionTraceHandler[R any] struct {
	rctx *RegionContext
	tctx *TraceContext
}

// Dispatch implements Handler for the combined region+trace handler.
// Dispatch order: region → trace.
func (h *regionTraceHandler[R]) Dispatch(op Operation) (Resumed, bool) {
	if rop, ok := op.(regionOp); ok {
		if rop.opRegion() != h.rctx.region {
			escapedRegion()
		}
		return rop.DispatchRegion(h.rctx)
	}
	if top, ok := op.(interface {
		DispatchTrace(ctx *TraceContext) (Resumed, bool)
	}); ok {
		return top.DispatchTrace(h.tctx)
	}
	unhandledEffect("RunRegionTrace")
	return nil, false
}

// RunRegionTrace mints a fresh region and runs the scoped computation,
// dispatching its region operations and sending trace output to sink.
// Discharges both effects to a plain value.
func RunRegionTrace[A any](sink Sink, scoped func(r *Region) Eff[A]) A {
	r := newRegion()
	h := &regionTraceHandler[A]{
		rctx: &RegionContext{region: r},
		tctx: &TraceContext{Sink: sink},
	}
	result := Handle(scoped(r), h)
	r.closed = true
	return result
}

// RunRegionTraceExpr is the defunctionalized counterpart of [RunRegionTrace].
func RunRegionTraceExpr[A any](sink Sink, scoped func(r *Region) Expr[A]) A {
	r := newRegion()
	h := &regionTraceHandler[A]{
		rctx: &RegionContext{region: r},
		tctx: &TraceContext{Sink: sink},
	}
	result := HandleExpr(scoped(r), h)
	r.closed = true
	return result
}
