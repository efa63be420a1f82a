// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Function composition primitives. Go functions form a category with
// Identity as the unit:
//
//	Compose(p, Compose(q, r)) ≡ Compose(Compose(p, q), r)
//	Compose(Identity, p) ≡ p ≡ Compose(p, Identity)

// Compose composes two functions right to left: Compose(f, g)(x) = f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// ComposeFlipped composes two functions left to right:
// ComposeFlipped(f, g)(x) = g(f(x)).
func ComposeFlipped[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Identity returns its argument unchanged.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func Identity[A any](a A) A { return a }
