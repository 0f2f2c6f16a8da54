// SPDX-License-Identifier: MIT

package quantity

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/quanta/units"
)

// Number is any built-in integer or floating-point type. Values are stored
// as float64; integers beyond 2^53 lose precision.
type Number interface {
	constraints.Integer | constraints.Float
}

// ScalarOf is NewScalar for any Number.
func ScalarOf[T Number](name string, value T, unit units.Unit) (*Scalar, error) {
	return NewScalar(name, float64(value), unit)
}

// SequenceOf is NewSequence for any Number slice.
func SequenceOf[T Number](name string, values []T, us ...units.Unit) (*Sequence, error) {
	if values == nil {
		return NewSequence(name, nil, us...)
	}

	return NewSequence(name, toFloats(values), us...)
}

// MatrixOf is NewMatrix for any Number rows.
func MatrixOf[T Number](name string, rows [][]T, us ...units.Unit) (*Matrix, error) {
	if rows == nil {
		return NewMatrix(name, nil, us...)
	}
	out := make([][]float64, len(rows))
	for i, r := range rows {
		if r != nil {
			out[i] = toFloats(r)
		}
	}

	return NewMatrix(name, out, us...)
}

func toFloats[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}
