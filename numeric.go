// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Numeric tower capabilities. The laws are stated here and verified by the
// property suite, never by the abstraction:
//
//	Semiring:       Add and Mul associative and commutative in Add, with
//	                identities Zero and One; Mul distributes over Add.
//	Ring:           Sub with a - a = Zero; Negate is Zero - a.
//	ModuloSemiring: a = (a / b).Mul(b).Add(a mod b) for nonzero b.
//	DivisionRing:   division is exact, a mod b = Zero for nonzero b.
//	Field:          a DivisionRing with commutative Mul; no new operations.

// Semiring is the additive/multiplicative capability with identities.
type Semiring[T any] interface {
	Add(T) T
	Mul(T) T
	Zero() T
	One() T
}

// Ring is a Semiring with subtraction.
type Ring[T any] interface {
	Semiring[T]
	Sub(T) T
}

// Negate is Zero - a, defined from Ring alone.
func Negate[T Ring[T]](a T) T {
	return a.Zero().Sub(a)
}

// ModuloSemiring is a Semiring with division and remainder, related by
// a = (a/b)*b + (a mod b).
type ModuloSemiring[T any] interface {
	Semiring[T]
	Div(T) T
	Mod(T) T
}

// DivisionRing is a Ring whose division is exact: a mod b is Zero for every
// nonzero b.
type DivisionRing[T any] interface {
	Ring[T]
	ModuloSemiring[T]
}

// Field is a DivisionRing with commutative multiplication. It refines the
// laws only; there are no distinguishing operations.
type Field[T any] interface {
	DivisionRing[T]
}

// Add implements Semiring for Int.
func (a Int) Add(b Int) Int { return a + b }

// Mul implements Semiring for Int.
func (a Int) Mul(b Int) Int { return a * b }

// Zero implements Semiring for Int.
func (Int) Zero() Int { return 0 }

// One implements Semiring for Int.
func (Int) One() Int { return 1 }

// Sub implements Ring for Int.
func (a Int) Sub(b Int) Int { return a - b }

// Div is the host truncated quotient.
func (a Int) Div(b Int) Int { return a / b }

// Mod is the host remainder; a.Div(b).Mul(b).Add(a.Mod(b)) == a holds for
// every nonzero b, including negative operands.
func (a Int) Mod(b Int) Int { return a % b }

// Add implements Semiring for Number.
func (a Number) Add(b Number) Number { return a + b }

// Mul implements Semiring for Number.
func (a Number) Mul(b Number) Number { return a * b }

// Zero implements Semiring for Number.
func (Number) Zero() Number { return 0 }

// One implements Semiring for Number.
func (Number) One() Number { return 1 }

// Sub implements Ring for Number.
func (a Number) Sub(b Number) Number { return a - b }

// Div is host floating-point division.
func (a Number) Div(b Number) Number { return a / b }

// Mod is identically zero: Number division is exact at the field level, so
// the remainder term of the modulo law vanishes. Callers wanting a
// floating-point remainder in the math.Mod sense are outside this
// capability.
func (Number) Mod(Number) Number { return 0 }
