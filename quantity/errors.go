// SPDX-License-Identifier: MIT
// Package quantity: sentinel error set.
// Every message is prefixed with "quantity: ..." and callers match via errors.Is.
// Errors from units and coords are wrapped together with the matching
// sentinel, so both errors.Is(err, ErrInvalidArgument) and
// errors.Is(err, coords.ErrDimensionMismatch) hold.

package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConstruction indicates a missing payload or coordinate system,
	// ragged rows, or values whose shape fits neither tensor order.
	ErrInvalidConstruction = errors.New("quantity: invalid construction")

	// ErrInvalidArgument indicates a wrong target count for Approach, a cost
	// function keyed to a non-existent axis, or a dimension mismatch in To.
	ErrInvalidArgument = errors.New("quantity: invalid argument")

	// ErrUnsupported marks an operation deliberately not provided, such as
	// converting an order-2 Matrix into another coordinate system.
	ErrUnsupported = errors.New("quantity: operation not supported")

	// ErrNoQuantity is returned by the merge helpers when every input is nil.
	ErrNoQuantity = errors.New("quantity: no quantity to merge")
)

// Panic messages for programmer errors.
const (
	panicNilLogger      = "quantity: WithLogger: logger must be non-nil"
	panicUnknownVariant = "quantity: unknown Quantity variant %T"
)

// wrapf attaches a sentinel and a cause under one call-site tag.
func wrapf(tag string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", tag, sentinel)
	}

	return fmt.Errorf("%s: %w: %w", tag, sentinel, cause)
}
