// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"

	"github.com/katalvlaran/quanta/coords"
)

// Order is the tensor order of the data held by a Quantity.
type Order int

const (
	// OrderScalar is a single value, or independent samples on one axis.
	OrderScalar Order = iota
	// OrderVector is one point, or a list of points, in an N-D system.
	OrderVector
	// OrderMatrix is a matrix of values on one axis.
	OrderMatrix
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case OrderScalar:
		return "scalar"
	case OrderVector:
		return "vector"
	case OrderMatrix:
		return "matrix"
	}

	return fmt.Sprintf("Order(%d)", int(o))
}

// Quantity is the closed set {*Scalar, *Sequence, *Matrix}: numeric data tied
// to a coordinate system. Every implementation is immutable.
type Quantity interface {
	// Name returns the free-form description.
	Name() string
	// Coords returns the coordinate system the values are expressed in.
	Coords() coords.System
	// Order returns the tensor order resolved at construction.
	Order() Order
	// Axis returns axis i of the coordinate system.
	Axis(i int) (coords.Axis, error)

	fmt.Stringer

	isQuantity()
}

// To converts any Quantity into sys under a new name. See the variant
// methods for the per-order semantics.
func To(q Quantity, name string, sys coords.System) (Quantity, error) {
	switch v := q.(type) {
	case *Scalar:
		return nonNil(v.To(name, sys))
	case *Sequence:
		return nonNil(v.To(name, sys))
	case *Matrix:
		return nonNil(v.To(name, sys))
	}
	panic(fmt.Sprintf(panicUnknownVariant, q))
}

// Approach rewrites any Quantity towards the target magnitudes.
func Approach(q Quantity, targets ...float64) (Quantity, error) {
	switch v := q.(type) {
	case *Scalar:
		return nonNil(v.Approach(targets...))
	case *Sequence:
		return nonNil(v.Approach(targets...))
	case *Matrix:
		return nonNil(v.Approach(targets...))
	}
	panic(fmt.Sprintf(panicUnknownVariant, q))
}

// ApproachWith rewrites any Quantity under explicit per-axis cost functions.
func ApproachWith(q Quantity, costs CostFuncs, opts ...Option) (Quantity, error) {
	switch v := q.(type) {
	case *Scalar:
		return nonNil(v.ApproachWith(costs, opts...))
	case *Sequence:
		return nonNil(v.ApproachWith(costs, opts...))
	case *Matrix:
		return nonNil(v.ApproachWith(costs, opts...))
	}
	panic(fmt.Sprintf(panicUnknownVariant, q))
}

// nonNil keeps a failed variant call from leaking a typed nil pointer
// through the Quantity interface.
func nonNil[Q Quantity](q Q, err error) (Quantity, error) {
	if err != nil {
		return nil, err
	}

	return q, nil
}

// axisOf is the shared Axis implementation.
func axisOf(sys coords.System, i int) (coords.Axis, error) {
	a, err := sys.Axis(i)
	if err != nil {
		return coords.Axis{}, wrapf("Axis", ErrInvalidArgument, err)
	}

	return a, nil
}
