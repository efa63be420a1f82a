// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// BoolLike is the boolean capability: conjunction, disjunction, negation
// with host semantics.
type BoolLike[T any] interface {
	And(T) T
	Or(T) T
	Not() T
}

// And implements BoolLike for Bool.
func (a Bool) And(b Bool) Bool { return a && b }

// Or implements BoolLike for Bool.
func (a Bool) Or(b Bool) Bool { return a || b }

// Not implements BoolLike for Bool.
func (a Bool) Not() Bool { return !a }
