// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"

	"github.com/katalvlaran/quanta/coords"
)

// To re-expresses s in sys, which must have dimension 1.
func (s *Scalar) To(name string, sys coords.System) (*Scalar, error) {
	if err := checkTarget("Scalar.To", sys, 1); err != nil {
		return nil, err
	}
	out, err := coords.Transform([]float64{s.value}, s.coords, sys)
	if err != nil {
		return nil, wrapf("Scalar.To", ErrInvalidArgument, err)
	}

	return &Scalar{name: name, value: out[0], coords: sys}, nil
}

// To re-expresses s in sys, keeping its order.
//
// OrderScalar converts every sample on its own through the same
// one-dimensional transform, so sys must have dimension 1; this is only
// meaningful for unit rescaling. OrderVector converts the point in one call,
// so sys must have the dimension of s.
func (s *Sequence) To(name string, sys coords.System) (*Sequence, error) {
	switch s.order {
	case OrderScalar:
		if err := checkTarget("Sequence.To", sys, 1); err != nil {
			return nil, err
		}
		out := make([]float64, len(s.values))
		for i, v := range s.values {
			c, err := coords.Transform([]float64{v}, s.coords, sys)
			if err != nil {
				return nil, wrapf(fmt.Sprintf("Sequence.To: value %d", i), ErrInvalidArgument, err)
			}
			out[i] = c[0]
		}

		return &Sequence{name: name, values: out, coords: sys, order: OrderScalar}, nil
	case OrderVector:
		if err := checkTarget("Sequence.To", sys, s.coords.Dimension()); err != nil {
			return nil, err
		}
		out, err := coords.Transform(s.values, s.coords, sys)
		if err != nil {
			return nil, wrapf("Sequence.To", ErrInvalidArgument, err)
		}

		return &Sequence{name: name, values: out, coords: sys, order: OrderVector}, nil
	}
	panic(fmt.Sprintf("quantity: Sequence with order %s", s.order))
}

// To re-expresses m in sys, converting every row as one point.
//
// An OrderMatrix Matrix returns ErrUnsupported: there is no defined
// coordinate transform for a matrix on a single axis.
func (m *Matrix) To(name string, sys coords.System) (*Matrix, error) {
	if m.order == OrderMatrix {
		return nil, wrapf("Matrix.To: order-2 data", ErrUnsupported, nil)
	}
	if err := checkTarget("Matrix.To", sys, m.coords.Dimension()); err != nil {
		return nil, err
	}
	rows := make([][]float64, len(m.rows))
	for i, r := range m.rows {
		out, err := coords.Transform(r, m.coords, sys)
		if err != nil {
			return nil, wrapf(fmt.Sprintf("Matrix.To: row %d", i), ErrInvalidArgument, err)
		}
		rows[i] = out
	}

	return &Matrix{name: name, rows: rows, coords: sys, order: OrderVector}, nil
}

func checkTarget(tag string, sys coords.System, dim int) error {
	if sys == nil {
		return wrapf(tag+": nil coordinate system", ErrInvalidArgument, nil)
	}
	if d := sys.Dimension(); d != dim {
		return wrapf(fmt.Sprintf("%s: target dimension %d, want %d", tag, d, dim), ErrInvalidArgument, coords.ErrDimensionMismatch)
	}

	return nil
}
