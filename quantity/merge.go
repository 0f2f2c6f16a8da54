// SPDX-License-Identifier: MIT

package quantity

import "fmt"

// SequenceFrom merges scalars into one OrderScalar Sequence. The first
// non-nil scalar is the reference: its name and coordinate system are kept
// and every other scalar is converted into that system. nil entries are
// skipped; ErrNoQuantity is returned if nothing remains.
func SequenceFrom(scalars ...*Scalar) (*Sequence, error) {
	var ref *Scalar
	for _, s := range scalars {
		if s != nil {
			ref = s
			break
		}
	}
	if ref == nil {
		return nil, wrapf("SequenceFrom", ErrNoQuantity, nil)
	}

	values := make([]float64, 0, len(scalars))
	for i, s := range scalars {
		if s == nil {
			continue
		}
		c, err := s.To(s.name, ref.coords)
		if err != nil {
			return nil, fmt.Errorf("SequenceFrom: scalar %d: %w", i, err)
		}
		values = append(values, c.value)
	}

	return &Sequence{name: ref.name, values: values, coords: ref.coords, order: OrderScalar}, nil
}

// MatrixFrom merges sequences into a Matrix, one row per sequence. The first
// non-nil, non-empty sequence is the reference for name and coordinate
// system; every other one is converted into that system. nil and empty
// entries are skipped; ErrNoQuantity is returned if nothing remains.
// Sequences of unequal length yield ErrInvalidConstruction.
func MatrixFrom(sequences ...*Sequence) (*Matrix, error) {
	var ref *Sequence
	for _, s := range sequences {
		if s != nil && len(s.values) > 0 {
			ref = s
			break
		}
	}
	if ref == nil {
		return nil, wrapf("MatrixFrom", ErrNoQuantity, nil)
	}

	rows := make([][]float64, 0, len(sequences))
	for i, s := range sequences {
		if s == nil || len(s.values) == 0 {
			continue
		}
		c, err := s.To(s.name, ref.coords)
		if err != nil {
			return nil, fmt.Errorf("MatrixFrom: sequence %d: %w", i, err)
		}
		rows = append(rows, c.values)
	}

	return NewMatrixIn(ref.name, rows, ref.coords)
}
