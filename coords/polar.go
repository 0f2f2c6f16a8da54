// SPDX-License-Identifier: MIT

package coords

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/quanta/units"
)

var polarSymbols = []string{"polar", "pol"}

// Polar is the plane polar system (r, φ). r is a length, φ an angle
// measured from the x axis.
type Polar struct {
	frame
}

// NewPolar returns a polar system with axes r: m and φ: rad unless
// overridden.
func NewPolar(axes ...Axis) (*Polar, error) {
	return buildPolar(WithUnits(meter, radian), axes)
}

func buildPolar(defaults Axes, axes []Axis) (*Polar, error) {
	f, err := newFrame(polarSymbols, defaults, axes)
	if err != nil {
		return nil, err
	}
	if err = f.requireKinds([]units.Unit{meter, radian}); err != nil {
		return nil, err
	}

	return &Polar{frame: f}, nil
}

// WithAxes implements System.
func (p *Polar) WithAxes(axes Axes) (System, error) {
	out, err := buildPolar(p.axes, axes)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Compatible implements System.
func (p *Polar) Compatible(other System) bool {
	o, ok := other.(*Polar)

	return ok && p.convertibleTo(o.frame)
}

// ToCartesian maps (r, φ) to (x, y).
func (p *Polar) ToCartesian(base []float64) ([]float64, error) {
	if err := p.checkLen(base); err != nil {
		return nil, err
	}
	v := r2.Scale(base[0], r2.Vec{X: math.Cos(base[1]), Y: math.Sin(base[1])})

	return []float64{v.X, v.Y}, nil
}

// FromCartesian maps (x, y) to (r, φ) with φ in (-π, π].
func (p *Polar) FromCartesian(cart []float64) ([]float64, error) {
	if err := p.checkLen(cart); err != nil {
		return nil, err
	}
	v := r2.Vec{X: cart[0], Y: cart[1]}

	return []float64{r2.Norm(v), math.Atan2(v.Y, v.X)}, nil
}
