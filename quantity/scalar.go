// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/units"
)

// Scalar is a single value in a one-dimensional coordinate system.
type Scalar struct {
	name   string
	value  float64
	coords coords.System
}

// NewScalar returns a Scalar on a one-axis Cartesian system carrying unit.
func NewScalar(name string, value float64, unit units.Unit) (*Scalar, error) {
	sys, err := coords.NewCartesian(1, coords.Axis{Dimension: 0, Unit: unit})
	if err != nil {
		return nil, wrapf("NewScalar", ErrInvalidConstruction, err)
	}

	return NewScalarIn(name, value, sys)
}

// NewScalarIn returns a Scalar in sys, which must have dimension 1.
func NewScalarIn(name string, value float64, sys coords.System) (*Scalar, error) {
	if sys == nil {
		return nil, wrapf("NewScalarIn: nil coordinate system", ErrInvalidConstruction, nil)
	}
	if d := sys.Dimension(); d != 1 {
		return nil, wrapf(fmt.Sprintf("NewScalarIn: dimension %d", d), ErrInvalidConstruction, coords.ErrDimensionMismatch)
	}

	return &Scalar{name: name, value: value, coords: sys}, nil
}

func (*Scalar) isQuantity() {}

// Name implements Quantity.
func (s *Scalar) Name() string { return s.name }

// Value returns the number.
func (s *Scalar) Value() float64 { return s.value }

// Coords implements Quantity.
func (s *Scalar) Coords() coords.System { return s.coords }

// Order implements Quantity; always OrderScalar.
func (s *Scalar) Order() Order { return OrderScalar }

// Axis implements Quantity.
func (s *Scalar) Axis(i int) (coords.Axis, error) { return axisOf(s.coords, i) }

// Unit returns the unit of the only axis.
func (s *Scalar) Unit() units.Unit { return s.coords.Axes()[0].Unit }

func (s *Scalar) String() string {
	return fmt.Sprintf("%s = %g %s", s.name, s.value, s.Unit())
}

// Apply returns fn(value) under the same name and coordinate system.
func (s *Scalar) Apply(fn func(float64) float64) *Scalar {
	return s.ApplyAs(s.name, fn)
}

// ApplyAs is Apply with a new name.
func (s *Scalar) ApplyAs(name string, fn func(float64) float64) *Scalar {
	return &Scalar{name: name, value: fn(s.value), coords: s.coords}
}
