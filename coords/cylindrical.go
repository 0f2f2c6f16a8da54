// SPDX-License-Identifier: MIT

package coords

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/quanta/units"
)

var cylindricalSymbols = []string{"cyl", "cylindrical"}

// Cylindrical is the system (r, φ, z): polar in the xy plane plus height.
type Cylindrical struct {
	frame
}

// NewCylindrical returns a cylindrical system with axes r: m, φ: rad and
// z: m unless overridden.
func NewCylindrical(axes ...Axis) (*Cylindrical, error) {
	return buildCylindrical(WithUnits(meter, radian, meter), axes)
}

func buildCylindrical(defaults Axes, axes []Axis) (*Cylindrical, error) {
	f, err := newFrame(cylindricalSymbols, defaults, axes)
	if err != nil {
		return nil, err
	}
	if err = f.requireKinds([]units.Unit{meter, radian, meter}); err != nil {
		return nil, err
	}

	return &Cylindrical{frame: f}, nil
}

// WithAxes implements System.
func (c *Cylindrical) WithAxes(axes Axes) (System, error) {
	out, err := buildCylindrical(c.axes, axes)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Compatible implements System.
func (c *Cylindrical) Compatible(other System) bool {
	o, ok := other.(*Cylindrical)

	return ok && c.convertibleTo(o.frame)
}

// ToCartesian maps (r, φ, z) to (x, y, z).
func (c *Cylindrical) ToCartesian(base []float64) ([]float64, error) {
	if err := c.checkLen(base); err != nil {
		return nil, err
	}
	v := r2.Scale(base[0], r2.Vec{X: math.Cos(base[1]), Y: math.Sin(base[1])})

	return []float64{v.X, v.Y, base[2]}, nil
}

// FromCartesian maps (x, y, z) to (r, φ, z).
func (c *Cylindrical) FromCartesian(cart []float64) ([]float64, error) {
	if err := c.checkLen(cart); err != nil {
		return nil, err
	}
	v := r2.Vec{X: cart[0], Y: cart[1]}

	return []float64{r2.Norm(v), math.Atan2(v.Y, v.X), cart[2]}, nil
}
