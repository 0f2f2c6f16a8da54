// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"

	"github.com/katalvlaran/quanta/units"
)

// Transform re-expresses a coordinate tuple given in origin as a tuple in
// target. The input slice is never modified.
//
// Compatible systems differ only by axis units and are converted axis by
// axis, which also covers affine units such as °C. Otherwise the tuple goes
// origin units → SI base → Cartesian → target base → target units.
//
// Errors:
//   - ErrDimensionMismatch if len(values) or the two dimensions disagree.
//   - ErrIncompatibleUnits if an axis pair cannot be converted, or a
//     Cartesian axis on the geometric path is not a length.
//
// Complexity: O(Dimension).
func Transform(values []float64, origin, target System) ([]float64, error) {
	switch {
	case origin.Dimension() != target.Dimension():
		return nil, fmt.Errorf("Transform %s -> %s: %w", origin, target, ErrDimensionMismatch)
	case len(values) != origin.Dimension():
		return nil, fmt.Errorf("Transform: %d values for %s: %w", len(values), origin, ErrDimensionMismatch)
	}

	from, to := origin.Axes(), target.Axes()
	if origin.Compatible(target) {
		out := make([]float64, len(values))
		for i, v := range values {
			c, err := units.Convert(v, from[i].Unit, to[i].Unit)
			if err != nil {
				return nil, fmt.Errorf("Transform axis %d: %w: %w", i, ErrIncompatibleUnits, err)
			}
			out[i] = c
		}

		return out, nil
	}

	base := make([]float64, len(values))
	for i, v := range values {
		base[i] = units.ConvertToBase(from[i].Unit, v)
	}
	cart, err := origin.ToCartesian(base)
	if err != nil {
		return nil, fmt.Errorf("Transform %s -> %s: %w", origin, target, err)
	}
	out, err := target.FromCartesian(cart)
	if err != nil {
		return nil, fmt.Errorf("Transform %s -> %s: %w", origin, target, err)
	}
	for i := range out {
		out[i] = units.ConvertFromBase(to[i].Unit, out[i])
	}

	return out, nil
}
