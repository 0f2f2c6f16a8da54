// SPDX-License-Identifier: MIT

package coords

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quanta/units"
)

var sphericalSymbols = []string{"sph", "spherical"}

// Spherical is the system (r, θ, φ) with θ the polar angle from +z and φ
// the azimuth in the xy plane.
type Spherical struct {
	frame
}

// NewSpherical returns a spherical system with axes r: m, θ: rad and
// φ: rad unless overridden.
func NewSpherical(axes ...Axis) (*Spherical, error) {
	return buildSpherical(WithUnits(meter, radian, radian), axes)
}

func buildSpherical(defaults Axes, axes []Axis) (*Spherical, error) {
	f, err := newFrame(sphericalSymbols, defaults, axes)
	if err != nil {
		return nil, err
	}
	if err = f.requireKinds([]units.Unit{meter, radian, radian}); err != nil {
		return nil, err
	}

	return &Spherical{frame: f}, nil
}

// WithAxes implements System.
func (s *Spherical) WithAxes(axes Axes) (System, error) {
	out, err := buildSpherical(s.axes, axes)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Compatible implements System.
func (s *Spherical) Compatible(other System) bool {
	o, ok := other.(*Spherical)

	return ok && s.convertibleTo(o.frame)
}

// ToCartesian maps (r, θ, φ) to (x, y, z).
func (s *Spherical) ToCartesian(base []float64) ([]float64, error) {
	if err := s.checkLen(base); err != nil {
		return nil, err
	}
	sinT, cosT := math.Sincos(base[1])
	sinP, cosP := math.Sincos(base[2])
	v := r3.Scale(base[0], r3.Vec{X: sinT * cosP, Y: sinT * sinP, Z: cosT})

	return []float64{v.X, v.Y, v.Z}, nil
}

// FromCartesian maps (x, y, z) to (r, θ, φ). The origin maps to (0, 0, 0).
func (s *Spherical) FromCartesian(cart []float64) ([]float64, error) {
	if err := s.checkLen(cart); err != nil {
		return nil, err
	}
	v := r3.Vec{X: cart[0], Y: cart[1], Z: cart[2]}
	r := r3.Norm(v)
	if r == 0 {
		return []float64{0, 0, 0}, nil
	}

	return []float64{r, math.Acos(v.Z / r), math.Atan2(v.Y, v.X)}, nil
}
