// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/units"
)

// Sequence is a list of numbers whose meaning depends on the dimension of
// its coordinate system:
//
//	dimension 1            N independent samples on one axis   OrderScalar
//	dimension == len(vs)   one N-dimensional point             OrderVector
//
// Any other combination is rejected at construction.
type Sequence struct {
	name   string
	values []float64
	coords coords.System
	order  Order
}

// NewSequence returns a Sequence on a Cartesian system with one axis per
// given unit.
func NewSequence(name string, values []float64, us ...units.Unit) (*Sequence, error) {
	sys, err := cartesianOf(us)
	if err != nil {
		return nil, wrapf("NewSequence", ErrInvalidConstruction, err)
	}

	return NewSequenceIn(name, values, sys)
}

// NewSequenceIn returns a Sequence in sys. values is copied.
func NewSequenceIn(name string, values []float64, sys coords.System) (*Sequence, error) {
	switch {
	case values == nil:
		return nil, wrapf("NewSequenceIn: nil values", ErrInvalidConstruction, nil)
	case sys == nil:
		return nil, wrapf("NewSequenceIn: nil coordinate system", ErrInvalidConstruction, nil)
	}

	var order Order
	switch d := sys.Dimension(); d {
	case 1:
		order = OrderScalar
	case len(values):
		order = OrderVector
	default:
		return nil, wrapf(fmt.Sprintf("NewSequenceIn: %d values in %d dimensions", len(values), d),
			ErrInvalidConstruction, coords.ErrDimensionMismatch)
	}

	return &Sequence{name: name, values: slices.Clone(values), coords: sys, order: order}, nil
}

func (*Sequence) isQuantity() {}

// Name implements Quantity.
func (s *Sequence) Name() string { return s.name }

// Value returns a copy of the values.
func (s *Sequence) Value() []float64 { return slices.Clone(s.values) }

// Len returns the number of values.
func (s *Sequence) Len() int { return len(s.values) }

// Coords implements Quantity.
func (s *Sequence) Coords() coords.System { return s.coords }

// Order implements Quantity.
func (s *Sequence) Order() Order { return s.order }

// Axis implements Quantity.
func (s *Sequence) Axis(i int) (coords.Axis, error) { return axisOf(s.coords, i) }

func (s *Sequence) String() string {
	return fmt.Sprintf("%s = %v in %s", s.name, s.values, s.coords)
}

// Apply returns fn applied element-wise under the same name and system.
func (s *Sequence) Apply(fn func(float64) float64) *Sequence {
	return s.ApplyAs(s.name, fn)
}

// ApplyAs is Apply with a new name.
func (s *Sequence) ApplyAs(name string, fn func(float64) float64) *Sequence {
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = fn(v)
	}

	return &Sequence{name: name, values: out, coords: s.coords, order: s.order}
}

// cartesianOf builds a Cartesian system with one axis per unit.
func cartesianOf(us []units.Unit) (*coords.Cartesian, error) {
	return coords.NewCartesian(len(us), coords.WithUnits(us...)...)
}
