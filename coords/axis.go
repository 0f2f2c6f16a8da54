// SPDX-License-Identifier: MIT

package coords

import (
	"strconv"

	"github.com/katalvlaran/quanta/units"
)

// DefaultDimension is the axis key meaning "every axis without an entry of
// its own", used by per-axis maps such as cost functions.
const DefaultDimension = -1

// Axis is one dimension of a coordinate system: position, unit and an
// optional name.
type Axis struct {
	Dimension int
	Unit      units.Unit
	Name      string
}

// WithUnit returns a copy of a carrying u, position and name unchanged.
func (a Axis) WithUnit(u units.Unit) Axis {
	a.Unit = u

	return a
}

// Equal reports whether a and o share position, name and unit.
func (a Axis) Equal(o Axis) bool {
	return a.Dimension == o.Dimension && a.Name == o.Name && a.Unit.Equal(o.Unit)
}

// String renders "name: unit", or "#i: unit" for an unnamed axis.
func (a Axis) String() string {
	label := a.Name
	if label == "" {
		label = "#" + strconv.Itoa(a.Dimension)
	}

	return label + ": " + a.Unit.Symbol()
}

// Axes is an axis list ordered by Dimension.
type Axes []Axis

// WithUnits builds axes 0..len(us)-1 carrying the given units.
func WithUnits(us ...units.Unit) Axes {
	out := make(Axes, len(us))
	for i, u := range us {
		out[i] = Axis{Dimension: i, Unit: u}
	}

	return out
}

// Units returns the unit of every axis in order.
func (as Axes) Units() []units.Unit {
	out := make([]units.Unit, len(as))
	for i, a := range as {
		out[i] = a.Unit
	}

	return out
}
