// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
)

func TestRunPureReturn(t *testing.T) {
	require.Equal(t, 42, eff.RunPure(eff.ExprReturn(42)))
}

func TestRunPureBindChain(t *testing.T) {
	e := eff.ExprBind(eff.ExprReturn(5), func(x int) eff.Expr[int] {
		return eff.ExprBind(eff.ExprReturn(x*2), func(y int) eff.Expr[int] {
			return eff.ExprReturn(y + 1)
		})
	})
	require.Equal(t, 11, eff.RunPure(e))
}

func TestRunPureMapThen(t *testing.T) {
	e := eff.ExprThen(eff.ExprReturn("discarded"),
		eff.ExprMap(eff.ExprReturn(6), func(x int) int { return x * 7 }))
	require.Equal(t, 42, eff.RunPure(e))
}

// ExprBind on a completed computation applies the continuation eagerly
// instead of allocating a frame.
func TestExprBindCompletedFastPath(t *testing.T) {
	e := eff.ExprBind(eff.ExprReturn(1), func(x int) eff.Expr[int] {
		return eff.ExprReturn(x + 1)
	})
	_, done := e.Frame.(eff.ReturnFrame)
	require.True(t, done)
	require.Equal(t, 2, e.Value)
}

func TestExprMapCompletedFastPath(t *testing.T) {
	e := eff.ExprMap(eff.ExprReturn(3), func(x int) int { return x * 3 })
	_, done := e.Frame.(eff.ReturnFrame)
	require.True(t, done)
	require.Equal(t, 9, e.Value)
}

func TestRunPurePanicsOnEffect(t *testing.T) {
	require.Panics(t, func() {
		eff.RunPure(eff.ExprTraceLine("not pure"))
	})
}

// pingOp is a one-off effect family for exercising HandleFunc.
type pingOp struct {
	eff.Phantom[int]
	n int
}

func TestHandleExprWithHandleFunc(t *testing.T) {
	e := eff.ExprBind(eff.ExprPerform(pingOp{n: 20}), func(x int) eff.Expr[int] {
		return eff.ExprReturn(x + 2)
	})
	got := eff.HandleExpr(e, eff.HandleFunc[int](func(op eff.Operation) (eff.Resumed, bool) {
		p := op.(pingOp)
		return p.n * 2, true
	}))
	require.Equal(t, 42, got)
}

func TestHandleShortCircuit(t *testing.T) {
	m := eff.Bind(eff.Perform(pingOp{n: 1}), func(int) eff.Eff[int] {
		t.Fatal("continuation must not run after short-circuit")
		return eff.Pure(0)
	})
	got := eff.Handle(m, eff.HandleFunc[int](func(eff.Operation) (eff.Resumed, bool) {
		return -1, false
	}))
	require.Equal(t, -1, got)
}

func TestReifyPureComputation(t *testing.T) {
	e := eff.Reify(eff.Pure(42))
	require.Equal(t, 42, eff.RunPure(e))
}

func TestReifyPreservesEffects(t *testing.T) {
	m := eff.TraceMsg("one", eff.TraceMsg("two", eff.Pure(5)))
	var out []string
	got := eff.RunTraceExpr(eff.CollectSink(&out), eff.Reify(m))
	require.Equal(t, 5, got)
	require.Equal(t, []string{"one", "two"}, out)
}

func TestReflectPreservesEffects(t *testing.T) {
	e := eff.ExprThen(eff.ExprTraceLine("x"),
		eff.ExprThen(eff.ExprTraceLine("y"), eff.ExprReturn(3)))
	got, out := eff.CollectTrace(eff.Reflect(e))
	require.Equal(t, 3, got)
	require.Equal(t, []string{"x", "y"}, out)
}

// Evaluating the same reified Expr twice must repeat its effects; the
// frames may not capture single-use suspension state.
func TestReifiedExprReEvaluates(t *testing.T) {
	e := eff.Reify(eff.TraceMsg("tick", eff.Pure(7)))
	var first, second []string
	got1 := eff.RunTraceExpr(eff.CollectSink(&first), e)
	got2 := eff.RunTraceExpr(eff.CollectSink(&second), e)
	require.Equal(t, 7, got1)
	require.Equal(t, 7, got2)
	require.Equal(t, []string{"tick"}, first)
	require.Equal(t, []string{"tick"}, second)
}

// ExprWhileE re-evaluates its condition and body every iteration, so
// reified operands must survive repeated evaluation with fresh effects.
func TestExprWhileEWithReifiedOperands(t *testing.T) {
	got := eff.PureRegionExpr(func(r *eff.Region) eff.Expr[int] {
		return eff.ExprBind(eff.ExprNewRef(r, 0), func(n *eff.Ref[int]) eff.Expr[int] {
			cond := eff.Reify(eff.Map(eff.ReadRef(n), func(v int) bool { return v < 3 }))
			body := eff.Reify(eff.Map(eff.ModifyRef(n, func(v int) int { return v + 1 }),
				func(int) eff.Unit { return eff.Unit{} }))
			return eff.ExprBind(eff.ExprWhileE(cond, body), func(eff.Unit) eff.Expr[int] {
				return eff.ExprReadRef(n)
			})
		})
	})
	require.Equal(t, 3, got)
}

func TestReflectRunRegionInterop(t *testing.T) {
	got := eff.PureRegion(func(r *eff.Region) eff.Eff[int] {
		return eff.Reflect(eff.ExprBind(eff.ExprNewRef(r, 20), func(ref *eff.Ref[int]) eff.Expr[int] {
			return eff.ExprModifyRef(ref, func(x int) int { return x + 22 })
		}))
	})
	require.Equal(t, 42, got)
}
