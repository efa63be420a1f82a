// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync"

var genericMarkerPool = sync.Pool{
	New: func() any { return new(genericMarker) },
}

// genericMarker is the pooled suspension record produced by Perform and the
// fused effect constructors. Each marker is resumed at most once; resume
// functions release the marker back to the pool before continuing.
type genericMarker struct {
	op     Operation
	resume func(*genericMarker, Resumed) Resumed
	f      any
	k      any
}

func (m *genericMarker) Op() Operation            { return m.op }
func (m *genericMarker) Resume(v Resumed) Resumed { return m.resume(m, v) }

func acquireMarker() *genericMarker {
	return genericMarkerPool.Get().(*genericMarker)
}

func releaseMarker(m *genericMarker) {
	m.op = nil
	m.resume = nil
	m.f = nil
	m.k = nil
	genericMarkerPool.Put(m)
}

// effectMarker is the non-pooled suspension used where the resumption is an
// arbitrary closure (Reflect). One allocation per suspension.
type effectMarker[A any] struct {
	op Operation
	k  func(A) Resumed
}

func (m effectMarker[A]) Op() Operation            { return m.op }
func (m effectMarker[A]) Resume(v Resumed) Resumed { return m.k(v.(A)) }

// detachedMarker is a multi-shot snapshot of a pooled marker. Each Resume
// replays the snapshot through a freshly acquired pooled marker, so the
// single-use discipline of genericMarker is preserved per resumption while
// the snapshot itself stays valid across resumptions.
type detachedMarker struct {
	op     Operation
	resume func(*genericMarker, Resumed) Resumed
	f      any
	k      any
}

func (d *detachedMarker) Op() Operation { return d.op }

func (d *detachedMarker) Resume(v Resumed) Resumed {
	m := acquireMarker()
	m.op = d.op
	m.resume = d.resume
	m.f = d.f
	m.k = d.k
	return m.resume(m, v)
}

// detachSuspension converts a pooled single-use suspension into a multi-shot
// one, releasing the pooled marker exactly once. Suspensions that are already
// multi-shot (effectMarker, forwardMarker) pass through unchanged.
func detachSuspension(s effectSuspension) effectSuspension {
	gm, ok := s.(*genericMarker)
	if !ok {
		return s
	}
	d := &detachedMarker{op: gm.op, resume: gm.resume, f: gm.f, k: gm.k}
	releaseMarker(gm)
	return d
}
