// SPDX-License-Identifier: MIT
package quantity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/units"
)

func TestNewScalar(t *testing.T) {
	q, err := quantity.NewScalar("mass", 1024, u("kg"))
	require.NoError(t, err)
	assert.Equal(t, "mass", q.Name())
	assert.Equal(t, 1024.0, q.Value())
	assert.Equal(t, quantity.OrderScalar, q.Order())
	assert.Equal(t, "kg", q.Unit().Symbol())
	assert.Equal(t, 1, q.Coords().Dimension())
	assert.Equal(t, "mass = 1024 kg", q.String())

	_, err = q.Axis(1)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.ErrorIs(t, err, coords.ErrAxisOutOfRange)
}

func TestNewScalar_Invalid(t *testing.T) {
	_, err := quantity.NewScalar("x", 1, units.Unit{})
	assert.ErrorIs(t, err, quantity.ErrInvalidConstruction)

	_, err = quantity.NewScalarIn("x", 1, nil)
	assert.ErrorIs(t, err, quantity.ErrInvalidConstruction)

	_, err = quantity.NewScalarIn("x", 1, cart(t, "m", "m"))
	assert.ErrorIs(t, err, quantity.ErrInvalidConstruction)
	assert.ErrorIs(t, err, coords.ErrDimensionMismatch)
}

// TestScalar_ApproachMass: 1024 kg → 1.024 Mg and back.
func TestScalar_ApproachMass(t *testing.T) {
	q, err := quantity.NewScalar("", 1024, u("kg"))
	require.NoError(t, err)

	r, err := q.Approach(1)
	require.NoError(t, err)
	assert.InDelta(t, 1.024, r.Value(), tol)
	assert.Equal(t, "Mg", r.Unit().Symbol())

	back, err := r.Approach(1024)
	require.NoError(t, err)
	assert.InDelta(t, 1024, back.Value(), 1e-9)
	assert.Equal(t, "kg", back.Unit().Symbol())

	// the input is untouched
	assert.Equal(t, 1024.0, q.Value())
	assert.Equal(t, "kg", q.Unit().Symbol())
}

// TestScalar_ApproachExponentSign checks that the exponent reaches the symbol.
func TestScalar_ApproachExponentSign(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{3.0e-2, "m^2", "dm^2"},
		{3.0e2, "m^-2", "dm^-2"},
	}
	for _, tc := range cases {
		t.Run(tc.unit, func(t *testing.T) {
			q, err := quantity.NewScalar("", tc.value, u(tc.unit))
			require.NoError(t, err)
			r, err := q.Approach(1)
			require.NoError(t, err)
			assert.InDelta(t, 3, r.Value(), 1e-15)
			assert.Equal(t, tc.want, r.Unit().Symbol())
		})
	}
}

// TestScalar_ApproachAlreadyOptimal keeps value and unit.
func TestScalar_ApproachAlreadyOptimal(t *testing.T) {
	q, err := quantity.NewScalar("", 1.5, u("m"))
	require.NoError(t, err)
	r, err := q.ApproachWith(quantity.CostFuncs{coords.DefaultDimension: quantity.DefaultCost(1)})
	require.NoError(t, err)
	assert.Equal(t, 1.5, r.Value())
	assert.True(t, r.Unit().Equal(q.Unit()))
}

// TestScalar_ApproachNoPrefix: minutes take no prefix.
func TestScalar_ApproachNoPrefix(t *testing.T) {
	q, err := quantity.NewScalar("", 12345, u("min"))
	require.NoError(t, err)
	r, err := q.Approach(1)
	require.NoError(t, err)
	assert.Equal(t, 12345.0, r.Value())
	assert.Equal(t, "min", r.Unit().Symbol())
}

// TestScalar_ApproachExtremeValues never picks a prefix that rounds the
// value to zero or infinity.
func TestScalar_ApproachExtremeValues(t *testing.T) {
	cases := []struct {
		value float64
		want  string
		out   float64
	}{
		{1e-300, "qm", 1e-270},
		{1e-295, "qm", 1e-265},
		{1e300, "Qm", 1e270},
	}
	for _, tc := range cases {
		q, err := quantity.NewScalar("", tc.value, u("m"))
		require.NoError(t, err)
		r, err := q.Approach(1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, r.Unit().Symbol(), "%g", tc.value)
		assert.InEpsilon(t, tc.out, r.Value(), 1e-12, "%g", tc.value)
	}
}

func TestScalar_ApproachAffine(t *testing.T) {
	q, err := quantity.NewScalar("", 25, u("°C"))
	require.NoError(t, err)
	r, err := q.Approach(1)
	require.NoError(t, err)

	// whatever prefix wins, the physical temperature is unchanged
	back, err := units.Convert(r.Value(), r.Unit(), u("°C"))
	require.NoError(t, err)
	assert.InDelta(t, 25, back, 1e-9)
}

func TestScalar_ApproachTargetCount(t *testing.T) {
	q, err := quantity.NewScalar("", 1, u("m"))
	require.NoError(t, err)

	_, err = q.Approach()
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	_, err = q.Approach(1, 2)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestScalar_Apply(t *testing.T) {
	q, err := quantity.NewScalar("side", 3, u("cm"))
	require.NoError(t, err)

	sq := q.Apply(func(v float64) float64 { return v * v })
	assert.Equal(t, "side", sq.Name())
	assert.Equal(t, 9.0, sq.Value())
	assert.True(t, q.Coords() == sq.Coords())

	neg := q.ApplyAs("neg", math.Abs)
	assert.Equal(t, "neg", neg.Name())
	assert.Equal(t, 3.0, q.Value())
}

func TestScalar_To(t *testing.T) {
	q, err := quantity.NewScalar("T", 25, u("°C"))
	require.NoError(t, err)

	r, err := q.To("T in K", cart(t, "K"))
	require.NoError(t, err)
	assert.Equal(t, "T in K", r.Name())
	assert.InDelta(t, 298.15, r.Value(), 1e-9)

	_, err = q.To("", cart(t, "K", "K"))
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.ErrorIs(t, err, coords.ErrDimensionMismatch)

	_, err = q.To("", cart(t, "m"))
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.ErrorIs(t, err, coords.ErrIncompatibleUnits)

	_, err = q.To("", nil)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}
