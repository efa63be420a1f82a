// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Slices as the ambiguous computation: a slice of A is a computation that
// yields each of its elements, and Bind explores every combination in
// order. The functor and monad laws verified for Eff hold here too.

// MapSlice applies f to every element, preserving order.
func MapSlice[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// PureSlice embeds a single value as a one-element slice.
func PureSlice[A any](a A) []A {
	return []A{a}
}

// BindSlice sequences an ambiguous computation: f runs once per element,
// and the results concatenate in element order.
func BindSlice[A, B any](xs []A, f func(A) []B) []B {
	var out []B
	for _, x := range xs {
		out = append(out, f(x)...)
	}
	return out
}

// ApSlice applies every function to every argument, functions outermost.
// Derived from BindSlice and PureSlice.
func ApSlice[A, B any](fs []func(A) B, xs []A) []B {
	return BindSlice(fs, func(f func(A) B) []B {
		return MapSlice(xs, f)
	})
}

// Cons prepends a to xs in a fresh slice; xs is not aliased by the result.
func Cons[A any](a A, xs []A) []A {
	out := make([]A, 0, len(xs)+1)
	out = append(out, a)
	return append(out, xs...)
}

// Length reports the number of elements of xs.
func Length[A any](xs []A) int {
	return len(xs)
}

// IndexSlice returns the element at i, with ok reporting whether i is in
// range. Total: out-of-range lookups yield (zero, false), never a fault.
func IndexSlice[A any](xs []A, i int) (A, bool) {
	if i < 0 || i >= len(xs) {
		var zero A
		return zero, false
	}
	return xs[i], true
}
