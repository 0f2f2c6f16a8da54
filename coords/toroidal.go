// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/quanta/units"
)

var toroidalSymbols = []string{"tor", "toroidal"}

// Toroidal is the simple toroidal system (r, θ, φ) around a circle of major
// radius R0 in the xy plane: r is the distance from that circle, θ the
// poloidal and φ the toroidal angle.
//
//	x = (R0 + r·cosθ)·cosφ
//	y = (R0 + r·cosθ)·sinφ
//	z = r·sinθ
type Toroidal struct {
	frame
	majorRadius float64 // meters
}

// NewToroidal returns a toroidal system with the given major radius in
// meters and axes r: m, θ: rad, φ: rad unless overridden.
func NewToroidal(majorRadius float64, axes ...Axis) (*Toroidal, error) {
	return buildToroidal(majorRadius, WithUnits(meter, radian, radian), axes)
}

func buildToroidal(majorRadius float64, defaults Axes, axes []Axis) (*Toroidal, error) {
	if !(majorRadius > 0) || math.IsInf(majorRadius, 0) {
		return nil, fmt.Errorf("NewToroidal(%g): %w", majorRadius, ErrBadParameter)
	}
	f, err := newFrame(toroidalSymbols, defaults, axes)
	if err != nil {
		return nil, err
	}
	if err = f.requireKinds([]units.Unit{meter, radian, radian}); err != nil {
		return nil, err
	}

	return &Toroidal{frame: f, majorRadius: majorRadius}, nil
}

// MajorRadius returns R0 in meters.
func (t *Toroidal) MajorRadius() float64 { return t.majorRadius }

// WithAxes implements System. The major radius is kept.
func (t *Toroidal) WithAxes(axes Axes) (System, error) {
	out, err := buildToroidal(t.majorRadius, t.axes, axes)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Compatible implements System. Different major radii are different
// geometries even with identical axes.
func (t *Toroidal) Compatible(other System) bool {
	o, ok := other.(*Toroidal)

	return ok && t.majorRadius == o.majorRadius && t.convertibleTo(o.frame)
}

// ToCartesian maps (r, θ, φ) to (x, y, z).
func (t *Toroidal) ToCartesian(base []float64) ([]float64, error) {
	if err := t.checkLen(base); err != nil {
		return nil, err
	}
	sinT, cosT := math.Sincos(base[1])
	sinP, cosP := math.Sincos(base[2])
	// point on the major circle plus the offset across the tube
	ring := r3.Vec{X: cosP, Y: sinP}
	tube := r3.Vec{X: cosT * cosP, Y: cosT * sinP, Z: sinT}
	v := r3.Add(r3.Scale(t.majorRadius, ring), r3.Scale(base[0], tube))

	return []float64{v.X, v.Y, v.Z}, nil
}

// FromCartesian maps (x, y, z) to (r, θ, φ).
func (t *Toroidal) FromCartesian(cart []float64) ([]float64, error) {
	if err := t.checkLen(cart); err != nil {
		return nil, err
	}
	rho := r2.Norm(r2.Vec{X: cart[0], Y: cart[1]})
	// position in the poloidal half plane, relative to the R0 circle
	w := r2.Vec{X: rho - t.majorRadius, Y: cart[2]}

	return []float64{r2.Norm(w), math.Atan2(w.Y, w.X), math.Atan2(cart[1], cart[0])}, nil
}

func (t *Toroidal) String() string {
	return fmt.Sprintf("%s(R0=%g m)", t.frame.String(), t.majorRadius)
}
