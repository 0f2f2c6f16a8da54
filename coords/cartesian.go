// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/quanta/units"
)

var cartesianSymbols = []string{"cart", "cartesian"}

// Cartesian is an N-dimensional Cartesian system, N >= 1. Axes default to
// meters; any unit is accepted, but the geometric path of Transform requires
// every axis to be a length.
type Cartesian struct {
	frame
}

// NewCartesian returns a Cartesian system of the given dimension. Axes in
// axes replace the default meter axes at their Dimension.
func NewCartesian(dimension int, axes ...Axis) (*Cartesian, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("NewCartesian(%d): %w", dimension, ErrBadAxes)
	}
	defaults := make(Axes, dimension)
	for i := range defaults {
		defaults[i] = Axis{Dimension: i, Unit: meter}
	}

	return buildCartesian(defaults, axes)
}

func buildCartesian(defaults Axes, axes []Axis) (*Cartesian, error) {
	f, err := newFrame(cartesianSymbols, defaults, axes)
	if err != nil {
		return nil, err
	}

	return &Cartesian{frame: f}, nil
}

// WithAxes implements System.
func (c *Cartesian) WithAxes(axes Axes) (System, error) {
	out, err := buildCartesian(c.axes, axes)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Compatible implements System.
func (c *Cartesian) Compatible(other System) bool {
	o, ok := other.(*Cartesian)

	return ok && c.convertibleTo(o.frame)
}

// ToCartesian is the identity once all axes are lengths.
func (c *Cartesian) ToCartesian(base []float64) ([]float64, error) {
	if err := c.requireLengths(base); err != nil {
		return nil, err
	}

	return slices.Clone(base), nil
}

// FromCartesian is the identity once all axes are lengths.
func (c *Cartesian) FromCartesian(cart []float64) ([]float64, error) {
	if err := c.requireLengths(cart); err != nil {
		return nil, err
	}

	return slices.Clone(cart), nil
}

func (c *Cartesian) requireLengths(values []float64) error {
	if err := c.checkLen(values); err != nil {
		return err
	}
	kinds := make([]units.Unit, c.Dimension())
	for i := range kinds {
		kinds[i] = meter
	}

	return c.requireKinds(kinds)
}
