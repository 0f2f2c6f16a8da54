// SPDX-License-Identifier: MIT
package quantity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/coords"
	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/units"
)

// tol is the comparison tolerance for values that went through a prefix
// or coordinate conversion.
const tol = 1e-12

var approx = cmpopts.EquateApprox(tol, tol)

func u(symbol string) units.Unit { return units.MustParse(symbol) }

func unitSymbol(t *testing.T, q quantity.Quantity, axis int) string {
	t.Helper()
	a, err := q.Axis(axis)
	require.NoError(t, err)

	return a.Unit.Symbol()
}

func requireValues[T any](t *testing.T, want, got T) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func cart(t *testing.T, us ...string) *coords.Cartesian {
	t.Helper()
	list := make([]units.Unit, len(us))
	for i, s := range us {
		list[i] = u(s)
	}
	c, err := coords.NewCartesian(len(list), coords.WithUnits(list...)...)
	require.NoError(t, err)

	return c
}
