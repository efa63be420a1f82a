// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Deterministic loop combinators. Every combinator is strict and
// single-threaded: no iteration is skipped or reordered, and each
// iteration's effects complete before the next begins. Construction is
// lazy, one iteration at a time.
//
// The Cont forms grow the Go stack by one continuation level per iteration.
// Deep loops should prefer the Expr forms, which evaluate iteratively on
// the [HandleExpr] trampoline.

// ForE executes body(i) for i = lo, lo+1, ..., hi-1 in ascending order.
// Performs zero iterations when lo >= hi.
func ForE(lo, hi int, body func(int) Eff[Unit]) Eff[Unit] {
	if lo >= hi {
		return Pure(Unit{})
	}
	return func(k func(Unit) Resumed) Resumed {
		return body(lo)(func(Unit) Resumed {
			return ForE(lo+1, hi, body)(k)
		})
	}
}

// ForeachE executes body once per element of xs, in slice order.
// Performs zero iterations on an empty slice.
func ForeachE[A any](xs []A, body func(A) Eff[Unit]) Eff[Unit] {
	if len(xs) == 0 {
		return Pure(Unit{})
	}
	return func(k func(Unit) Resumed) Resumed {
		return body(xs[0])(func(Unit) Resumed {
			return ForeachE(xs[1:], body)(k)
		})
	}
}

// WhileE evaluates cond; while it yields true, executes body and re-evaluates
// cond. The effects of every evaluation of cond and every execution of body
// occur in strict alternating order. Terminates the first time cond yields
// false.
func WhileE(cond Eff[bool], body Eff[Unit]) Eff[Unit] {
	return func(k func(Unit) Resumed) Resumed {
		return cond(func(more bool) Resumed {
			if !more {
				return k(Unit{})
			}
			return body(func(Unit) Resumed {
				return WhileE(cond, body)(k)
			})
		})
	}
}

// UntilE re-evaluates cond until it yields true, discarding intermediate
// results. There is no separate body; callers wanting per-iteration effects
// wrap them inside cond.
func UntilE(cond Eff[bool]) Eff[Unit] {
	return func(k func(Unit) Resumed) Resumed {
		return cond(func(done bool) Resumed {
			if done {
				return k(Unit{})
			}
			return UntilE(cond)(k)
		})
	}
}

// ExprForE is the defunctionalized counterpart of [ForE].
// Iterations evaluate on the trampoline with constant stack.
func ExprForE(lo, hi int, body func(int) Expr[Unit]) Expr[Unit] {
	if lo >= hi {
		return ExprReturn(Unit{})
	}
	return ExprBind(body(lo), func(Unit) Expr[Unit] {
		return ExprForE(lo+1, hi, body)
	})
}

// ExprForeachE is the defunctionalized counterpart of [ForeachE].
func ExprForeachE[A any](xs []A, body func(A) Expr[Unit]) Expr[Unit] {
	if len(xs) == 0 {
		return ExprReturn(Unit{})
	}
	return ExprBind(body(xs[0]), func(Unit) Expr[Unit] {
		return ExprForeachE(xs[1:], body)
	})
}

// ExprWhileE is the defunctionalized counterpart of [WhileE].
// cond and body must contain at least one effect frame for the loop to be
// constructed lazily; a pure, constantly-true cond never terminates.
func ExprWhileE(cond Expr[bool], body Expr[Unit]) Expr[Unit] {
	return ExprBind(cond, func(more bool) Expr[Unit] {
		if !more {
			return ExprReturn(Unit{})
		}
		return ExprBind(body, func(Unit) Expr[Unit] {
			return ExprWhileE(cond, body)
		})
	})
}

// ExprUntilE is the defunctionalized counterpart of [UntilE].
func ExprUntilE(cond Expr[bool]) Expr[Unit] {
	return ExprBind(cond, func(done bool) Expr[Unit] {
		if done {
			return ExprReturn(Unit{})
		}
		return ExprUntilE(cond)
	})
}
