// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
)

func TestPureRegionNewWriteRead(t *testing.T) {
	got := eff.PureRegion(func(r *eff.Region) eff.Eff[int] {
		return eff.Bind(eff.NewRef(r, 0), func(ref *eff.Ref[int]) eff.Eff[int] {
			return eff.Then(eff.WriteRef(ref, 5), eff.ReadRef(ref))
		})
	})
	require.Equal(t, 5, got)
}

func TestWriteRefYieldsWrittenValue(t *testing.T) {
	got := eff.PureRegion(func(r *eff.Region) eff.Eff[int] {
		return eff.Bind(eff.NewRef(r, 0), func(ref *eff.Ref[int]) eff.Eff[int] {
			return eff.WriteRef(ref, 7)
		})
	})
	require.Equal(t, 7, got)
}

func TestModifyRefStoresAndYieldsNewValue(t *testing.T) {
	type pair struct{ modified, stored int }
	got := eff.PureRegion(func(r *eff.Region) eff.Eff[pair] {
		return eff.Bind(eff.NewRef(r, 0), func(ref *eff.Ref[int]) eff.Eff[pair] {
			return eff.Then(eff.WriteRef(ref, 10),
				eff.Bind(eff.ModifyRef(ref, func(x int) int { return x + 1 }), func(m int) eff.Eff[pair] {
					return eff.Map(eff.ReadRef(ref), func(s int) pair {
						return pair{modified: m, stored: s}
					})
				}))
		})
	})
	require.Equal(t, 11, got.modified)
	require.Equal(t, 11, got.stored)
}

func TestReadRefBindAndWriteRefThen(t *testing.T) {
	got := eff.PureRegion(func(r *eff.Region) eff.Eff[int] {
		return eff.Bind(eff.NewRef(r, 3), func(ref *eff.Ref[int]) eff.Eff[int] {
			return eff.ReadRefBind(ref, func(v int) eff.Eff[int] {
				return eff.WriteRefThen(ref, v*2, eff.ReadRef(ref))
			})
		})
	})
	require.Equal(t, 6, got)
}

func TestRefsAreIndependent(t *testing.T) {
	got := eff.PureRegion(func(r *eff.Region) eff.Eff[[2]int] {
		return eff.Bind(eff.NewRef(r, 1), func(a *eff.Ref[int]) eff.Eff[[2]int] {
			return eff.Bind(eff.NewRef(r, 2), func(b *eff.Ref[int]) eff.Eff[[2]int] {
				return eff.Then(eff.WriteRef(a, 100),
					eff.Bind(eff.ReadRef(a), func(av int) eff.Eff[[2]int] {
						return eff.Map(eff.ReadRef(b), func(bv int) [2]int {
							return [2]int{av, bv}
						})
					}))
			})
		})
	})
	require.Equal(t, [2]int{100, 2}, got)
}

// A handle smuggled out of its region must not be usable afterwards.
func TestEscapedRefPanics(t *testing.T) {
	var leaked *eff.Ref[int]
	eff.PureRegion(func(r *eff.Region) eff.Eff[eff.Unit] {
		return eff.Map(eff.NewRef(r, 1), func(ref *eff.Ref[int]) eff.Unit {
			leaked = ref
			return eff.Unit{}
		})
	})
	require.PanicsWithValue(t, "eff: reference escaped its region", func() {
		eff.PureRegion(func(*eff.Region) eff.Eff[int] {
			return eff.ReadRef(leaked)
		})
	})
}

func TestEscapedRefPanicsUnderRunRegion(t *testing.T) {
	var leaked *eff.Ref[int]
	eff.RunTrace(func(string) {}, eff.RunRegion(func(r *eff.Region) eff.Eff[eff.Unit] {
		return eff.Map(eff.NewRef(r, 1), func(ref *eff.Ref[int]) eff.Unit {
			leaked = ref
			return eff.Unit{}
		})
	}))
	require.PanicsWithValue(t, "eff: reference escaped its region", func() {
		eff.RunTrace(func(string) {}, eff.RunRegion(func(*eff.Region) eff.Eff[int] {
			return eff.ReadRef(leaked)
		}))
	})
}

// An inner RunRegion forwards operations on outer-region refs to the
// enclosing run instead of dispatching them itself.
func TestNestedRegionsForwardOuterOps(t *testing.T) {
	got := eff.PureRegion(func(outer *eff.Region) eff.Eff[int] {
		return eff.Bind(eff.NewRef(outer, 10), func(ref *eff.Ref[int]) eff.Eff[int] {
			inner := eff.RunRegion(func(innerR *eff.Region) eff.Eff[int] {
				return eff.Bind(eff.NewRef(innerR, 1), func(local *eff.Ref[int]) eff.Eff[int] {
					return eff.Then(eff.ModifyRef(ref, func(x int) int { return x + 5 }),
						eff.Bind(eff.ReadRef(local), func(lv int) eff.Eff[int] {
							return eff.Map(eff.ReadRef(ref), func(ov int) int {
								return ov + lv
							})
						}))
				})
			})
			return inner
		})
	})
	require.Equal(t, 16, got)
}

// RunRegion discharges only its own region; trace effects pass through to
// the enclosing trace runner.
func TestRunRegionForwardsTrace(t *testing.T) {
	var out []string
	got := eff.RunTrace(eff.CollectSink(&out), eff.RunRegion(func(r *eff.Region) eff.Eff[int] {
		return eff.Bind(eff.NewRef(r, 2), func(ref *eff.Ref[int]) eff.Eff[int] {
			return eff.TraceMsg("before", eff.Then(
				eff.ModifyRef(ref, func(x int) int { return x * x }),
				eff.TraceMsg("after", eff.ReadRef(ref))))
		})
	}))
	require.Equal(t, 4, got)
	require.Equal(t, []string{"before", "after"}, out)
}

// Every run of the same Eff mints a fresh region with fresh cells.
func TestRerunMintsFreshRegion(t *testing.T) {
	m := eff.RunRegion(func(r *eff.Region) eff.Eff[int] {
		return eff.Bind(eff.NewRef(r, 0), func(ref *eff.Ref[int]) eff.Eff[int] {
			return eff.ModifyRef(ref, func(x int) int { return x + 1 })
		})
	})
	first, _ := eff.CollectTrace(m)
	second, _ := eff.CollectTrace(m)
	require.Equal(t, 1, first)
	require.Equal(t, 1, second)
}

func TestPureRegionRejectsForeignEffects(t *testing.T) {
	require.Panics(t, func() {
		eff.PureRegion(func(*eff.Region) eff.Eff[eff.Unit] {
			return eff.TraceLine("no sink here")
		})
	})
}

func TestPureRegionExprNewWriteRead(t *testing.T) {
	got := eff.PureRegionExpr(func(r *eff.Region) eff.Expr[int] {
		return eff.ExprBind(eff.ExprNewRef(r, 0), func(ref *eff.Ref[int]) eff.Expr[int] {
			return eff.ExprThen(eff.ExprWriteRef(ref, 5), eff.ExprReadRef(ref))
		})
	})
	require.Equal(t, 5, got)
}

func TestPureRegionExprModifyRef(t *testing.T) {
	got := eff.PureRegionExpr(func(r *eff.Region) eff.Expr[int] {
		return eff.ExprBind(eff.ExprNewRef(r, 10), func(ref *eff.Ref[int]) eff.Expr[int] {
			return eff.ExprBind(eff.ExprModifyRef(ref, func(x int) int { return x + 1 }),
				func(int) eff.Expr[int] { return eff.ExprReadRef(ref) })
		})
	})
	require.Equal(t, 11, got)
}
