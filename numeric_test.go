// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

func TestNegateFromRing(t *testing.T) {
	if got := eff.Negate(eff.Int(5)); got != -5 {
		t.Fatalf("Negate(5) = %d, want -5", got)
	}
	if got := eff.Negate(eff.Int(0)); got != 0 {
		t.Fatalf("Negate(0) = %d, want 0", got)
	}
	if got := eff.Negate(eff.Number(2.5)); got != -2.5 {
		t.Fatalf("Negate(2.5) = %v, want -2.5", got)
	}
}

func TestIntTruncatedDivision(t *testing.T) {
	cases := []struct{ a, b, q, r eff.Int }{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
	}
	for _, c := range cases {
		if q := c.a.Div(c.b); q != c.q {
			t.Fatalf("%d / %d = %d, want %d", c.a, c.b, q, c.q)
		}
		if r := c.a.Mod(c.b); r != c.r {
			t.Fatalf("%d mod %d = %d, want %d", c.a, c.b, r, c.r)
		}
		if back := c.a.Div(c.b).Mul(c.b).Add(c.a.Mod(c.b)); back != c.a {
			t.Fatalf("modulo law broken for %d, %d: got %d", c.a, c.b, back)
		}
	}
}

func TestNumberModIsZero(t *testing.T) {
	if got := eff.Number(7.5).Mod(2); got != 0 {
		t.Fatalf("7.5 mod 2 = %v, want 0", got)
	}
}

func TestIntBits(t *testing.T) {
	a, b := eff.Int(0b1100), eff.Int(0b1010)
	if got := a.BitAnd(b); got != 0b1000 {
		t.Fatalf("BitAnd: %b", got)
	}
	if got := a.BitOr(b); got != 0b1110 {
		t.Fatalf("BitOr: %b", got)
	}
	if got := a.BitXor(b); got != 0b0110 {
		t.Fatalf("BitXor: %b", got)
	}
	if got := eff.Int(0).Complement(); got != -1 {
		t.Fatalf("Complement(0) = %d", got)
	}
	if got := eff.Int(1).Shl(4); got != 16 {
		t.Fatalf("Shl: %d", got)
	}
	if got := eff.Int(-8).Shr(1); got != -4 {
		t.Fatalf("Shr sign-fills: %d", got)
	}
	if got := eff.Int(-1).Zshr(1); got <= 0 {
		t.Fatalf("Zshr zero-fills: %d", got)
	}
}

func TestBoolOps(t *testing.T) {
	if !eff.Bool(true).And(true) || eff.Bool(true).And(false) {
		t.Fatal("And")
	}
	if !eff.Bool(false).Or(true) || eff.Bool(false).Or(false) {
		t.Fatal("Or")
	}
	if eff.Bool(true).Not() || !eff.Bool(false).Not() {
		t.Fatal("Not")
	}
}

func TestAppendSlicesFresh(t *testing.T) {
	xs := []eff.Int{1, 2}
	ys := []eff.Int{3}
	out := eff.AppendSlices(xs, ys)
	out[0] = 99
	if xs[0] != 1 {
		t.Fatalf("AppendSlices aliased its first operand: %v", xs)
	}
	if len(out) != 3 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("AppendSlices: %v", out)
	}
}
