// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/units"
)

// Matrix is a list of equally long rows:
//
//	dimension 1             one matrix on a single axis          OrderMatrix
//	dimension == row length one N-dimensional point per row      OrderVector
//
// Any other combination is rejected at construction.
type Matrix struct {
	name   string
	rows   [][]float64
	coords coords.System
	order  Order
}

// NewMatrix returns a Matrix on a Cartesian system with one axis per unit.
func NewMatrix(name string, rows [][]float64, us ...units.Unit) (*Matrix, error) {
	sys, err := cartesianOf(us)
	if err != nil {
		return nil, wrapf("NewMatrix", ErrInvalidConstruction, err)
	}

	return NewMatrixIn(name, rows, sys)
}

// NewMatrixIn returns a Matrix in sys. rows is deep-copied.
func NewMatrixIn(name string, rows [][]float64, sys coords.System) (*Matrix, error) {
	switch {
	case rows == nil:
		return nil, wrapf("NewMatrixIn: nil rows", ErrInvalidConstruction, nil)
	case sys == nil:
		return nil, wrapf("NewMatrixIn: nil coordinate system", ErrInvalidConstruction, nil)
	}
	width := -1
	for i, r := range rows {
		if r == nil {
			return nil, wrapf(fmt.Sprintf("NewMatrixIn: nil row %d", i), ErrInvalidConstruction, nil)
		}
		if width >= 0 && len(r) != width {
			return nil, wrapf(fmt.Sprintf("NewMatrixIn: row %d has %d values, want %d", i, len(r), width),
				ErrInvalidConstruction, nil)
		}
		width = len(r)
	}

	order := OrderVector
	if d := sys.Dimension(); d == 1 {
		order = OrderMatrix
	} else if width >= 0 && width != d {
		return nil, wrapf(fmt.Sprintf("NewMatrixIn: rows of %d values in %d dimensions", width, d),
			ErrInvalidConstruction, coords.ErrDimensionMismatch)
	}

	return &Matrix{name: name, rows: cloneRows(rows), coords: sys, order: order}, nil
}

func (*Matrix) isQuantity() {}

// Name implements Quantity.
func (m *Matrix) Name() string { return m.name }

// Value returns a deep copy of the rows.
func (m *Matrix) Value() [][]float64 { return cloneRows(m.rows) }

// Dims returns the number of rows and the row length.
func (m *Matrix) Dims() (rows, cols int) {
	if len(m.rows) == 0 {
		return 0, 0
	}

	return len(m.rows), len(m.rows[0])
}

// Coords implements Quantity.
func (m *Matrix) Coords() coords.System { return m.coords }

// Order implements Quantity.
func (m *Matrix) Order() Order { return m.order }

// Axis implements Quantity.
func (m *Matrix) Axis(i int) (coords.Axis, error) { return axisOf(m.coords, i) }

func (m *Matrix) String() string {
	return fmt.Sprintf("%s = %v in %s", m.name, m.rows, m.coords)
}

// Apply returns fn applied element-wise under the same name and system.
func (m *Matrix) Apply(fn func(float64) float64) *Matrix {
	return m.ApplyAs(m.name, fn)
}

// ApplyAs is Apply with a new name.
func (m *Matrix) ApplyAs(name string, fn func(float64) float64) *Matrix {
	out := make([][]float64, len(m.rows))
	for i, r := range m.rows {
		out[i] = make([]float64, len(r))
		for j, v := range r {
			out[i][j] = fn(v)
		}
	}

	return &Matrix{name: name, rows: out, coords: m.coords, order: m.order}
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append(make([]float64, 0, len(r)), r...)
	}

	return out
}
