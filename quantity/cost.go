// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/quanta/coords"
)

// CostFunc scores the values of one axis; lower is better.
type CostFunc func(values []float64) float64

// CostFuncs maps an axis index to its cost function. The key
// coords.DefaultDimension covers every axis without an entry of its own.
type CostFuncs map[int]CostFunc

// For returns the cost function of axis i, falling back to the default entry.
func (c CostFuncs) For(i int) (CostFunc, bool) {
	if fn, ok := c[i]; ok && fn != nil {
		return fn, true
	}
	fn, ok := c[coords.DefaultDimension]

	return fn, ok && fn != nil
}

// validate checks that every axis of a dimension-d system has a cost
// function and no key addresses a missing axis.
func (c CostFuncs) validate(d int) error {
	for k := range c {
		if k != coords.DefaultDimension && (k < 0 || k >= d) {
			return wrapf("ApproachWith", ErrInvalidArgument, fmt.Errorf("cost function for axis %d of %d: %w", k, d, coords.ErrAxisOutOfRange))
		}
	}
	for i := 0; i < d; i++ {
		if _, ok := c.For(i); !ok {
			return wrapf("ApproachWith", ErrInvalidArgument, fmt.Errorf("no cost function for axis %d", i))
		}
	}

	return nil
}

// DefaultCost returns the minimax magnitude distance to target:
//
//	cost(v)   = 0.1·|m_t − m_v| + |e_t − e_v|
//	cost(arr) = max over arr, 0 for an empty array
//
// where e is the base-10 exponent and m the mantissa in [1, 10) of the
// absolute value. Zero has exponent 0 and mantissa 0. A non-finite element
// makes the whole array cost +Inf.
func DefaultCost(target float64) CostFunc {
	mt, et := magnitude(target)

	return func(values []float64) float64 {
		if len(values) == 0 {
			return 0
		}
		costs := make([]float64, len(values))
		for i, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return math.Inf(1)
			}
			mv, ev := magnitude(v)
			costs[i] = 0.1*math.Abs(mt-mv) + math.Abs(float64(et-ev))
		}

		return floats.Max(costs)
	}
}

// TargetCosts turns Approach targets into cost functions: one target is the
// default for every axis, otherwise there must be exactly one per axis.
func TargetCosts(targets []float64, dimension int) (CostFuncs, error) {
	switch len(targets) {
	case 1:
		return CostFuncs{coords.DefaultDimension: DefaultCost(targets[0])}, nil
	case dimension:
		out := make(CostFuncs, dimension)
		for i, t := range targets {
			out[i] = DefaultCost(t)
		}

		return out, nil
	}

	return nil, wrapf(fmt.Sprintf("Approach: %d targets for %d axes", len(targets), dimension), ErrInvalidArgument, nil)
}

// log10Slack absorbs ulp-level noise from prefix conversion, so that
// 0.09999999999999999 counts as 1e-1 and Log10(1000) = 2.9999999999999996
// still lands on exponent 3.
const log10Slack = 1e-12

// magnitude splits |v| into mantissa in [1, 10) (up to rounding) and
// base-10 exponent.
func magnitude(v float64) (float64, int) {
	v = math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0
	}
	e := int(math.Floor(math.Log10(v) + log10Slack))

	return v / math.Pow10(e), e
}
