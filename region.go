// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "github.com/google/uuid"

// Region-scoped mutable references.
//
// A Region is an opaque identity minted freshly on every invocation of
// [RunRegion] or [PureRegion] and closed when that invocation completes.
// Every [Ref] is branded with the Region that minted it, and every reference
// operation is dispatched only by the run that owns the brand. A Ref that
// leaves its region therefore has no handler left that will accept it: the
// next region to see it detects a closed foreign brand and panics. Go cannot
// express the rank-2 quantification that would reject the escape at compile
// time, so generative tokens plus a dispatch-time brand check stand in for it.

// Region identifies one scope of mutable references. Values are minted only
// by RunRegion and PureRegion; a computation receives its Region as the
// argument of its scoped function and must not retain it past that call.
type Region struct {
	id     uuid.UUID
	closed bool
}

func newRegion() *Region {
	return &Region{id: uuid.New()}
}

// Ref is a mutable cell holding one current value of type A, branded with
// the Region that minted it. Reads and writes are effect operations; the
// cell itself is reachable only through computations running under its
// region, so there is no destructor and no lock (execution is
// single-threaded).
type Ref[A any] struct {
	region *Region
	value  A
}

// RegionContext holds the state needed for region effect dispatch.
type RegionContext struct {
	region *Region
}

// regionOp is the structural dispatch interface for region operations.
// opRegion exposes the brand so runners can decide between dispatching
// inline and forwarding to an enclosing region.
type regionOp interface {
	opRegion() *Region
	DispatchRegion(ctx *RegionContext) (Resumed, bool)
}

// newRefOp allocates a fresh cell under a region.
type newRefOp[A any] struct {
	region  *Region
	initial A
}

func (newRefOp[A]) OpResult() *Ref[A] { panic("phantom") }

func (o newRefOp[A]) opRegion() *Region { return o.region }

// DispatchRegion handles newRefOp in region dispatch.
func (o newRefOp[A]) DispatchRegion(*RegionContext) (Resumed, bool) {
	return &Ref[A]{region: o.region, value: o.initial}, true
}

// readRefOp reads the current value of a cell.
type readRefOp[A any] struct {
	ref *Ref[A]
}

func (readRefOp[A]) OpResult() A { panic("phantom") }

func (o readRefOp[A]) opRegion() *Region { return o.ref.region }

// DispatchRegion handles readRefOp in region dispatch.
func (o readRefOp[A]) DispatchRegion(*RegionContext) (Resumed, bool) {
	return o.ref.value, true
}

// writeRefOp overwrites the value of a cell.
type writeRefOp[A any] struct {
	ref   *Ref[A]
	value A
}

func (writeRefOp[A]) OpResult() A { panic("phantom") }

func (o writeRefOp[A]) opRegion() *Region { return o.ref.region }

// DispatchRegion handles writeRefOp in region dispatch.
func (o writeRefOp[A]) DispatchRegion(*RegionContext) (Resumed, bool) {
	o.ref.value = o.value
	return o.value, true
}

// modifyRefOp applies an update function to a cell without intermediate
// observation.
type modifyRefOp[A any] struct {
	ref *Ref[A]
	f   func(A) A
}

func (modifyRefOp[A]) OpResult() A { panic("phantom") }

func (o modifyRefOp[A]) opRegion() *Region { return o.ref.region }

// DispatchRegion handles modifyRefOp in region dispatch.
func (o modifyRefOp[A]) DispatchRegion(*RegionContext) (Resumed, bool) {
	o.ref.value = o.f(o.ref.value)
	return o.ref.value, true
}

// NewRef allocates a fresh cell holding initial under region r and yields
// a handle branded with r.
func NewRef[A any](r *Region, initial A) Eff[*Ref[A]] {
	return Perform(newRefOp[A]{region: r, initial: initial})
}

// ReadRef yields the cell's current value.
func ReadRef[A any](ref *Ref[A]) Eff[A] {
	return Perform(readRefOp[A]{ref: ref})
}

// WriteRef overwrites the cell's value and yields the written value.
func WriteRef[A any](ref *Ref[A], v A) Eff[A] {
	return Perform(writeRefOp[A]{ref: ref, value: v})
}

// ModifyRef applies f to the cell's value, stores the result, and yields it.
// Equivalent to writing f of the read value, with no intermediate
// observation.
func ModifyRef[A any](ref *Ref[A], f func(A) A) Eff[A] {
	return Perform(modifyRefOp[A]{ref: ref, f: f})
}

// ReadRefBind fuses ReadRef + Bind: reads the cell, passes the value to f.
func ReadRefBind[A, B any](ref *Ref[A], f func(A) Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = readRefOp[A]{ref: ref}
		m.f = f
		m.k = k
		m.resume = bindMarkerResume[A, B]
		return m
	}
}

// WriteRefThen fuses WriteRef + Then: writes the cell, then runs next.
func WriteRefThen[A, B any](ref *Ref[A], v A, next Eff[B]) Eff[B] {
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = writeRefOp[A]{ref: ref, value: v}
		m.f = next
		m.k = k
		m.resume = thenMarkerResume[B]
		return m
	}
}

// ExprNewRef is the defunctionalized counterpart of [NewRef].
func ExprNewRef[A any](r *Region, initial A) Expr[*Ref[A]] {
	return ExprPerform(newRefOp[A]{region: r, initial: initial})
}

// ExprReadRef is the defunctionalized counterpart of [ReadRef].
func ExprReadRef[A any](ref *Ref[A]) Expr[A] {
	return ExprPerform(readRefOp[A]{ref: ref})
}

// ExprWriteRef is the defunctionalized counterpart of [WriteRef].
func ExprWriteRef[A any](ref *Ref[A], v A) Expr[A] {
	return ExprPerform(writeRefOp[A]{ref: ref, value: v})
}

// ExprModifyRef is the defunctionalized counterpart of [ModifyRef].
func ExprModifyRef[A any](ref *Ref[A], f func(A) A) Expr[A] {
	return ExprPerform(modifyRefOp[A]{ref: ref, f: f})
}

// escapedRegion panics for a reference observed outside its minting region.
//
//go:noinline
func escapedRegion() {
	panic("eff: reference escaped its region")
}

// RunRegion mints a fresh region, instantiates the region-polymorphic scoped
// computation with it, and discharges that region's operations. Operations
// belonging to enclosing scopes are forwarded outward unchanged, so the
// returned computation still carries every effect of scoped except the
// region it discharged. The region is closed when the run completes; a
// handle smuggled out is detected on its next use.
//
// scoped must be written generically over the Region it receives: each
// invocation of the returned Eff mints a new identity and repeats all
// effects.
func RunRegion[A any](scoped func(r *Region) Eff[A]) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		r := newRegion()
		ctx := &RegionContext{region: r}
		return regionLoop(scoped(r)(toResumed[A]), ctx, k)
	}
}

// regionLoop drives a scoped computation, dispatching operations owned by
// ctx's region inline and re-suspending all others for the enclosing
// handler.
func regionLoop[A any](result Resumed, ctx *RegionContext, k func(A) Resumed) Resumed {
	for {
		s, ok := result.(effectSuspension)
		if !ok {
			ctx.region.closed = true
			if result == nil {
				var zero A
				return k(zero)
			}
			return k(result.(A))
		}
		if rop, ok := s.Op().(regionOp); ok {
			if rop.opRegion() == ctx.region {
				v, _ := rop.DispatchRegion(ctx)
				result = s.Resume(v)
				continue
			}
			if rop.opRegion().closed {
				escapedRegion()
			}
			// An open foreign region: owned by an enclosing RunRegion.
		}
		return &forwardMarker[A]{inner: s, ctx: ctx, k: k}
	}
}

// forwardMarker re-suspends a foreign operation outward from a region run.
// Resuming it re-enters the region loop with the inner suspension's result.
type forwardMarker[A any] struct {
	inner effectSuspension
	ctx   *RegionContext
	k     func(A) Resumed
}

func (m *forwardMarker[A]) Op() Operation { return m.inner.Op() }

func (m *forwardMarker[A]) Resume(v Resumed) Resumed {
	return regionLoop(m.inner.Resume(v), m.ctx, m.k)
}

// regionHandler implements Handler for computations whose only effects are
// one region's operations.
type regionHandler[R any] struct {
	ctx *RegionContext
}

// Dispatch implements Handler. A region operation carrying a foreign brand
// is an escaped reference; any other operation family is unhandled.
func (h *regionHandler[R]) Dispatch(op Operation) (Resumed, bool) {
	if rop, ok := op.(regionOp); ok {
		if rop.opRegion() != h.ctx.region {
			escapedRegion()
		}
		return rop.DispatchRegion(h.ctx)
	}
	unhandledEffect("PureRegion")
	return nil, false
}

// PureRegion mints a fresh region, runs the scoped computation, and
// discharges it all the way to a plain value. scoped must use no effects
// beyond its own region's operations; anything else panics, because there
// is no handler left to receive it.
func PureRegion[A any](scoped func(r *Region) Eff[A]) A {
	r := newRegion()
	h := &regionHandler[A]{ctx: &RegionContext{region: r}}
	result := Handle(scoped(r), h)
	r.closed = true
	return result
}

// PureRegionExpr is the defunctionalized counterpart of [PureRegion].
func PureRegionExpr[A any](scoped func(r *Region) Expr[A]) A {
	r := newRegion()
	h := &regionHandler[A]{ctx: &RegionContext{region: r}}
	result := HandleExpr(scoped(r), h)
	r.closed = true
	return result
}
