// SPDX-License-Identifier: MIT
// Package coords: sentinel error set.
// Every message is prefixed with "coords: ..." and callers match via errors.Is.
// Context is added at the boundary with fmt.Errorf("ctx: %w", ErrX).

package coords

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a coordinate tuple whose length differs
	// from the system dimension, or two systems of different dimension.
	ErrDimensionMismatch = errors.New("coords: dimension mismatch")

	// ErrAxisOutOfRange indicates an axis index outside [0, Dimension()).
	ErrAxisOutOfRange = errors.New("coords: axis out of range")

	// ErrBadAxes indicates an unusable axis list: duplicate positions,
	// an axis without unit, or a system without axes.
	ErrBadAxes = errors.New("coords: invalid axes")

	// ErrIncompatibleUnits indicates axis units that cannot serve the requested
	// operation, e.g. a non-length radius or non-convertible per-axis units.
	ErrIncompatibleUnits = errors.New("coords: incompatible axis units")

	// ErrUnknownSystem is returned by New for an unregistered symbol.
	ErrUnknownSystem = errors.New("coords: unknown coordinate system")

	// ErrBadParameter indicates an invalid structural parameter such as a
	// non-positive major radius.
	ErrBadParameter = errors.New("coords: invalid structural parameter")
)

func coordsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
