// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "cmp"

// Equality and total ordering capabilities.
//
// Equals must be reflexive, symmetric, transitive, and decidable for every
// pair. Compare must produce exactly one of LT, EQ, GT for every pair, and
// every derived comparison (Less, Greater, LessEq, GreaterEq) is defined
// from that tri-state result alone.

// Ordering is the closed three-variant comparison result.
type Ordering int8

const (
	// LT orders the left operand strictly before the right.
	LT Ordering = iota - 1
	// EQ orders the operands as equal.
	EQ
	// GT orders the left operand strictly after the right.
	GT
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case LT:
		return "LT"
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	default:
		return "Ordering(invalid)"
	}
}

// Append combines two ordering results: the first non-EQ operand wins.
// Associative, which is what makes lexicographic comparison compositional.
func (o Ordering) Append(other Ordering) Ordering {
	if o != EQ {
		return o
	}
	return other
}

// Eq is the equality capability.
type Eq[T any] interface {
	Equals(T) bool
}

// Ord is the total ordering capability. Compare refines Equals:
// a.Compare(b) == EQ iff a.Equals(b).
type Ord[T any] interface {
	Eq[T]
	Compare(T) Ordering
}

// Less reports a < b, defined from Compare alone.
func Less[T Ord[T]](a, b T) bool { return a.Compare(b) == LT }

// Greater reports a > b, defined from Compare alone.
func Greater[T Ord[T]](a, b T) bool { return a.Compare(b) == GT }

// LessEq reports a <= b, defined from Compare alone.
func LessEq[T Ord[T]](a, b T) bool { return a.Compare(b) != GT }

// GreaterEq reports a >= b, defined from Compare alone.
func GreaterEq[T Ord[T]](a, b T) bool { return a.Compare(b) != LT }

// CompareOrdered compares two host-ordered primitives.
func CompareOrdered[T cmp.Ordered](a, b T) Ordering {
	switch {
	case a < b:
		return LT
	case a > b:
		return GT
	default:
		return EQ
	}
}

// CompareSlicesFunc compares two slices lexicographically with an explicit
// element comparator: pairwise from the front, first non-EQ result wins;
// equal prefixes fall back to comparing lengths, shorter before longer.
func CompareSlicesFunc[T any](xs, ys []T, compare func(T, T) Ordering) Ordering {
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if r := compare(xs[i], ys[i]); r != EQ {
			return r
		}
	}
	return CompareOrdered(len(xs), len(ys))
}

// CompareSlices compares two slices of Ord elements lexicographically.
func CompareSlices[T Ord[T]](xs, ys []T) Ordering {
	return CompareSlicesFunc(xs, ys, func(a, b T) Ordering { return a.Compare(b) })
}

// EqualSlicesFunc reports structural slice equality with an explicit
// element predicate: equal length and pointwise equal elements.
func EqualSlicesFunc[T any](xs, ys []T, equals func(T, T) bool) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !equals(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// EqualSlices reports structural equality of two slices of Eq elements.
func EqualSlices[T Eq[T]](xs, ys []T) bool {
	return EqualSlicesFunc(xs, ys, func(a, b T) bool { return a.Equals(b) })
}

// Equals implements Eq for Int.
func (a Int) Equals(b Int) bool { return a == b }

// Compare implements Ord for Int.
func (a Int) Compare(b Int) Ordering { return CompareOrdered(a, b) }

// Equals implements Eq for Number.
func (a Number) Equals(b Number) bool { return a == b }

// Compare implements Ord for Number. NaN operands are outside the Ord
// contract: the host orders NaN as neither less nor greater, so Compare
// yields EQ while Equals yields false. Callers must keep NaN away from
// ordering-dependent code.
func (a Number) Compare(b Number) Ordering { return CompareOrdered(a, b) }

// Equals implements Eq for Str.
func (a Str) Equals(b Str) bool { return a == b }

// Compare implements Ord for Str.
func (a Str) Compare(b Str) Ordering { return CompareOrdered(a, b) }

// Equals implements Eq for Bool.
func (a Bool) Equals(b Bool) bool { return a == b }

// Equals implements Eq for Ordering.
func (o Ordering) Equals(other Ordering) bool { return o == other }
