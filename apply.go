// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Applicative operations for continuations, derived from Bind and Return.
// Keeping them as derived forms pins their behavior to the monad: sequencing
// through Ap is the same sequencing as through Bind, left operand first.

// Ap applies an effectful function to an effectful argument.
// The function computation runs first, then the argument computation.
func Ap[R, A, B any](ff Cont[R, func(A) B], fa Cont[R, A]) Cont[R, B] {
	return Bind(ff, func(f func(A) B) Cont[R, B] {
		return Bind(fa, func(a A) Cont[R, B] {
			return Return[R](f(a))
		})
	})
}

// LiftA2 lifts a binary function over two continuations.
// Effects run left to right: fa first, then fb.
func LiftA2[R, A, B, C any](f func(A, B) C, fa Cont[R, A], fb Cont[R, B]) Cont[R, C] {
	return Bind(fa, func(a A) Cont[R, C] {
		return Bind(fb, func(b B) Cont[R, C] {
			return Return[R](f(a, b))
		})
	})
}
