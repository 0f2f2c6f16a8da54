// SPDX-License-Identifier: MIT

package units

import (
	gounit "gonum.org/v1/gonum/unit"
)

// ConvertToBase maps value expressed in u to the SI base representation.
//
// Affine units (a single factor with an offset, exponent 1) apply
// value·scale + offset; everything else is a pure scaling.
// Complexity: O(len(factors)).
func ConvertToBase(u Unit, value float64) float64 {
	if u.affine() {
		f := u.factors[0]

		return value*f.scale() + f.Def.Offset
	}

	return value * u.scale()
}

// ConvertFromBase is the inverse of ConvertToBase.
func ConvertFromBase(u Unit, value float64) float64 {
	if u.affine() {
		f := u.factors[0]

		return (value - f.Def.Offset) / f.scale()
	}

	return value / u.scale()
}

// Convertible reports whether from and to describe the same physical
// dimensions. The comparison is delegated to gonum's DimensionsMatch.
func Convertible(from, to Unit) bool {
	if from.IsZero() || to.IsZero() {
		return false
	}

	return gounit.DimensionsMatch(gounit.New(1, from.Dimensions()), gounit.New(1, to.Dimensions()))
}

// Convert re-expresses value from one unit in another by a round trip
// through the shared base representation, which is exact in structure for
// both linear and affine units.
//
// Errors:
//   - ErrZeroUnit if either unit is absent.
//   - ErrIncompatible if the dimensions differ.
func Convert(value float64, from, to Unit) (float64, error) {
	if from.IsZero() || to.IsZero() {
		return 0, ErrZeroUnit
	}
	if !Convertible(from, to) {
		return 0, symbolErrorf(from.Symbol()+" -> "+to.Symbol(), ErrIncompatible)
	}
	if from.Equal(to) {
		return value, nil
	}

	return ConvertFromBase(to, ConvertToBase(from, value)), nil
}

// ScaleFactor returns f such that value_in_to = value_in_from·f.
// Returns ErrNonLinear when either side carries an offset.
func ScaleFactor(from, to Unit) (float64, error) {
	if from.IsZero() || to.IsZero() {
		return 0, ErrZeroUnit
	}
	if !Convertible(from, to) {
		return 0, symbolErrorf(from.Symbol()+" -> "+to.Symbol(), ErrIncompatible)
	}
	if from.affine() || to.affine() {
		return 0, symbolErrorf(from.Symbol()+" -> "+to.Symbol(), ErrNonLinear)
	}

	return from.scale() / to.scale(), nil
}
