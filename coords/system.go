// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/quanta/units"
)

// System is a coordinate system: an ordered axis list plus the geometry
// that maps coordinate tuples to and from Cartesian space.
//
// Implementations are immutable. WithAxes is the reconstruction capability:
// it replaces the axes present in the argument (matched by Dimension) and
// keeps every other structural parameter of the receiver.
type System interface {
	// Dimension returns the number of axes.
	Dimension() int
	// Axis returns axis i, or ErrAxisOutOfRange.
	Axis(i int) (Axis, error)
	// Axes returns a copy of the axis list.
	Axes() Axes
	// Symbols returns the identifiers of the system kind; the first is canonical.
	Symbols() []string
	// WithAxes returns a system of the same kind and parameters with the
	// given axes substituted.
	WithAxes(axes Axes) (System, error)
	// Compatible reports whether other differs from the receiver only by
	// convertible axis units, so that per-axis unit conversion suffices.
	Compatible(other System) bool
	// ToCartesian maps a tuple in SI base units to Cartesian meters.
	ToCartesian(base []float64) ([]float64, error)
	// FromCartesian maps Cartesian meters to a tuple in SI base units.
	FromCartesian(cart []float64) ([]float64, error)

	fmt.Stringer
}

var (
	meter  = units.MustParse("m")
	radian = units.MustParse("rad")
)

// frame holds what every concrete system shares: identifiers and axes.
type frame struct {
	symbols []string
	axes    Axes
}

// newFrame overlays axes onto defaults by position. The length of defaults
// fixes the dimension.
func newFrame(symbols []string, defaults Axes, axes []Axis) (frame, error) {
	if len(defaults) == 0 {
		return frame{}, coordsErrorf(symbols[0], ErrBadAxes)
	}
	out := slices.Clone(defaults)
	seen := make(map[int]bool, len(axes))
	for _, a := range axes {
		switch {
		case a.Dimension < 0 || a.Dimension >= len(out):
			return frame{}, fmt.Errorf("%s: axis %d of %d: %w", symbols[0], a.Dimension, len(out), ErrAxisOutOfRange)
		case seen[a.Dimension]:
			return frame{}, fmt.Errorf("%s: axis %d given twice: %w", symbols[0], a.Dimension, ErrBadAxes)
		case a.Unit.IsZero():
			return frame{}, fmt.Errorf("%s: axis %d without unit: %w", symbols[0], a.Dimension, ErrBadAxes)
		}
		seen[a.Dimension] = true
		out[a.Dimension] = a
	}

	return frame{symbols: symbols, axes: out}, nil
}

// Dimension returns the number of axes.
func (f frame) Dimension() int { return len(f.axes) }

// Axis returns axis i.
func (f frame) Axis(i int) (Axis, error) {
	if i < 0 || i >= len(f.axes) {
		return Axis{}, fmt.Errorf("%s: axis %d of %d: %w", f.symbols[0], i, len(f.axes), ErrAxisOutOfRange)
	}

	return f.axes[i], nil
}

// Axes returns a copy of the axis list.
func (f frame) Axes() Axes { return slices.Clone(f.axes) }

// Symbols returns a copy of the identifiers.
func (f frame) Symbols() []string { return slices.Clone(f.symbols) }

func (f frame) String() string {
	parts := make([]string, len(f.axes))
	for i, a := range f.axes {
		parts[i] = a.String()
	}

	return f.symbols[0] + "[" + strings.Join(parts, ", ") + "]"
}

// convertibleTo reports equal dimension and pairwise convertible axis units.
func (f frame) convertibleTo(o frame) bool {
	if len(f.axes) != len(o.axes) {
		return false
	}
	for i := range f.axes {
		if !units.Convertible(f.axes[i].Unit, o.axes[i].Unit) {
			return false
		}
	}

	return true
}

// requireKinds checks that axis i is convertible to kinds[i]. A zero entry
// in kinds accepts any unit.
func (f frame) requireKinds(kinds []units.Unit) error {
	for i, k := range kinds {
		if k.IsZero() {
			continue
		}
		if !units.Convertible(f.axes[i].Unit, k) {
			return fmt.Errorf("%s: axis %d in %s, want %s-like: %w",
				f.symbols[0], i, f.axes[i].Unit.Symbol(), k.Symbol(), ErrIncompatibleUnits)
		}
	}

	return nil
}

// checkLen validates the length of a tuple against the dimension.
func (f frame) checkLen(values []float64) error {
	if len(values) != len(f.axes) {
		return fmt.Errorf("%s: %d values for %d axes: %w", f.symbols[0], len(values), len(f.axes), ErrDimensionMismatch)
	}

	return nil
}
