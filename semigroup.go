// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Semigroup is the concatenative capability: Append must be associative.
// No identity element is required, which is what separates a semigroup
// from a monoid.
type Semigroup[T any] interface {
	Append(T) T
}

// Append implements Semigroup for Str by host string concatenation.
func (a Str) Append(b Str) Str { return a + b }

// Append implements Semigroup for Unit.
func (Unit) Append(Unit) Unit { return Unit{} }

// AppendSlices concatenates two slices into a fresh slice; neither operand
// is aliased by the result.
func AppendSlices[T any](xs, ys []T) []T {
	out := make([]T, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}
