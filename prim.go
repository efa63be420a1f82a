// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Primitive backend wrappers. Each named type carries the host
// representation of one primitive domain; the capability instances
// (numeric tower, ordering, bits, boolean, semigroup) are defined as
// methods on these types in the corresponding files. Operator semantics
// are the host's: this layer only exposes them as instances.

// Int is the host signed integer.
type Int int

// Number is the host double-precision float.
type Number float64

// Str is the host string.
type Str string

// Bool is the host boolean.
type Bool bool

// Unit is the one-value type produced by computations run purely for
// their effects.
type Unit struct{}

// RefEq reports host equality for comparable values. For opaque values
// this is reference (identity) equality; for value types it is the host's
// structural comparison.
func RefEq[T comparable](a, b T) bool { return a == b }
