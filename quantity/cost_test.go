// SPDX-License-Identifier: MIT
package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/quantity"
)

func TestDefaultCost(t *testing.T) {
	cases := []struct {
		name   string
		target float64
		values []float64
		want   float64
	}{
		{"OnTarget", 1, []float64{1}, 0},
		{"Mantissa", 1, []float64{3}, 0.2},
		{"Exponent", 1, []float64{1000}, 3},
		{"Both", 1, []float64{0.042}, 2.32},
		{"Sign", 1, []float64{-1000}, 3},
		{"Zero", 1, []float64{0}, 0.1},
		{"ZeroTarget", 0, []float64{1}, 0.1},
		{"Max", 1, []float64{1, 2e3, 5}, 3.1},
		{"Target", 1e18, []float64{1e18, 2e18}, 0.1},
		{"Empty", 1, []float64{}, 0},
		{"AttoNoise", 1, []float64{1e-19 / 1e-18}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, quantity.DefaultCost(tc.target)(tc.values), 1e-9)
		})
	}
}

func TestDefaultCost_NonFinite(t *testing.T) {
	cost := quantity.DefaultCost(1)
	assert.True(t, math.IsInf(cost([]float64{1, math.NaN()}), 1))
	assert.True(t, math.IsInf(cost([]float64{math.Inf(-1)}), 1))
}

func TestTargetCosts(t *testing.T) {
	one, err := quantity.TargetCosts([]float64{1}, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, ok := one.For(i)
		assert.True(t, ok)
	}
	_, ok := one[coords.DefaultDimension]
	assert.True(t, ok)

	each, err := quantity.TargetCosts([]float64{1, 1e3, 1e-3}, 3)
	require.NoError(t, err)
	fn, ok := each.For(1)
	require.True(t, ok)
	assert.Zero(t, fn([]float64{1e3}))

	_, err = quantity.TargetCosts(nil, 1)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	_, err = quantity.TargetCosts([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestCostFuncs_For(t *testing.T) {
	def := quantity.DefaultCost(1)
	own := quantity.DefaultCost(1e3)
	costs := quantity.CostFuncs{coords.DefaultDimension: def, 1: own, 2: nil}

	fn, ok := costs.For(1)
	require.True(t, ok)
	assert.Zero(t, fn([]float64{1e3}))

	// a nil entry falls back to the default
	fn, ok = costs.For(2)
	require.True(t, ok)
	assert.Zero(t, fn([]float64{1}))

	_, ok = quantity.CostFuncs{}.For(0)
	assert.False(t, ok)
}

// TestApproachWith_CustomCost prefers the largest prefix that keeps
// every value at or above one.
func TestApproachWith_CustomCost(t *testing.T) {
	atLeastOne := func(values []float64) float64 {
		worst := 0.0
		for _, v := range values {
			if v < 1 {
				return math.Inf(1)
			}
			worst = math.Max(worst, v)
		}

		return worst
	}
	q, err := quantity.NewSequence("", []float64{1500, 2500}, u("m"))
	require.NoError(t, err)

	r, err := q.ApproachWith(quantity.CostFuncs{0: atLeastOne})
	require.NoError(t, err)
	assert.Equal(t, "km", unitSymbol(t, r, 0))
	requireValues(t, []float64{1.5, 2.5}, r.Value())
}
