// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Bitwise capability. Each operation is a pure function whose semantics are
// the host's; no law beyond that is stated.
type Bits[T any] interface {
	BitAnd(T) T
	BitOr(T) T
	BitXor(T) T
	Complement() T
	Shl(T) T
	Shr(T) T
	Zshr(T) T
}

// BitAnd implements Bits for Int.
func (a Int) BitAnd(b Int) Int { return a & b }

// BitOr implements Bits for Int.
func (a Int) BitOr(b Int) Int { return a | b }

// BitXor implements Bits for Int.
func (a Int) BitXor(b Int) Int { return a ^ b }

// Complement implements Bits for Int.
func (a Int) Complement() Int { return ^a }

// Shl is the host left shift. Counts at or beyond the word width yield 0.
func (a Int) Shl(b Int) Int { return a << uint(b) }

// Shr is the host arithmetic (sign-filling) right shift.
func (a Int) Shr(b Int) Int { return a >> uint(b) }

// Zshr is the zero-filling right shift: the operand is reinterpreted as
// unsigned before shifting.
func (a Int) Zshr(b Int) Int { return Int(uint(a) >> uint(b)) }
