// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
)

func TestRunRegionTraceInterleaving(t *testing.T) {
	var out []string
	got := eff.RunRegionTrace(eff.CollectSink(&out), func(r *eff.Region) eff.Eff[int] {
		return eff.Bind(eff.NewRef(r, 0), func(acc *eff.Ref[int]) eff.Eff[int] {
			loop := eff.ForE(0, 3, func(i int) eff.Eff[eff.Unit] {
				return eff.Bind(eff.ModifyRef(acc, func(n int) int { return n + i }), func(n int) eff.Eff[eff.Unit] {
					return eff.TraceLine(fmt.Sprintf("acc=%d", n))
				})
			})
			return eff.Then(loop, eff.ReadRef(acc))
		})
	})
	require.Equal(t, 3, got)
	require.Equal(t, []string{"acc=0", "acc=1", "acc=3"}, out)
}

func TestRunRegionTraceRejectsForeignRef(t *testing.T) {
	var leaked *eff.Ref[int]
	eff.RunRegionTrace(func(string) {}, func(r *eff.Region) eff.Eff[eff.Unit] {
		return eff.Map(eff.NewRef(r, 0), func(ref *eff.Ref[int]) eff.Unit {
			leaked = ref
			return eff.Unit{}
		})
	})
	require.PanicsWithValue(t, "eff: reference escaped its region", func() {
		eff.RunRegionTrace(func(string) {}, func(*eff.Region) eff.Eff[int] {
			return eff.ReadRef(leaked)
		})
	})
}

func TestRunRegionTraceExpr(t *testing.T) {
	var out []string
	got := eff.RunRegionTraceExpr(eff.CollectSink(&out), func(r *eff.Region) eff.Expr[int] {
		return eff.ExprBind(eff.ExprNewRef(r, 1), func(ref *eff.Ref[int]) eff.Expr[int] {
			return eff.ExprThen(eff.ExprTraceLine("start"),
				eff.ExprBind(eff.ExprModifyRef(ref, func(x int) int { return x * 2 }),
					func(v int) eff.Expr[int] {
						return eff.ExprThen(eff.ExprTraceLine(fmt.Sprintf("v=%d", v)),
							eff.ExprReadRef(ref))
					}))
		})
	})
	require.Equal(t, 2, got)
	require.Equal(t, []string{"start", "v=2"}, out)
}
