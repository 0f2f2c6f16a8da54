// SPDX-License-Identifier: MIT
package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/quantity"
	"github.com/katalvlaran/quanta/units"
)

func symbols(cands []quantity.Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Unit.Symbol()
	}

	return out
}

func TestCandidates_Kilogram(t *testing.T) {
	cands, err := quantity.Candidates(u("kg"))
	require.NoError(t, err)

	syms := symbols(cands)
	require.Len(t, syms, 1+len(units.SIPrefixes))
	assert.Equal(t, "kg", syms[0])
	assert.Equal(t, "qg", syms[1])
	assert.Equal(t, "Qg", syms[len(syms)-1])
	assert.Contains(t, syms, "g")
	assert.Contains(t, syms, "Mg")
	assert.Contains(t, syms, "mg")
	assert.NotContains(t, syms, "kkg")
	assert.Equal(t, 1, countOf(syms, "kg"))

	for _, c := range cands {
		switch c.Unit.Symbol() {
		case "kg":
			assert.Equal(t, 3.5, c.Transform(3.5))
		case "g":
			assert.InDelta(t, 1000, c.Transform(1), 1e-9)
		case "Mg":
			assert.InDelta(t, 2, c.Transform(2000), 1e-12)
		}
	}
}

func TestCandidates_AscendingFactor(t *testing.T) {
	cands, err := quantity.Candidates(u("m"))
	require.NoError(t, err)

	// after the current unit, one meter shrinks as the prefix grows
	prev := cands[1].Transform(1)
	for _, c := range cands[2:] {
		v := c.Transform(1)
		assert.Less(t, v, prev, c.Unit.Symbol())
		prev = v
	}
}

func TestCandidates_NotPrefixable(t *testing.T) {
	cands, err := quantity.Candidates(u("min"))
	require.NoError(t, err)
	assert.Equal(t, []string{"min"}, symbols(cands))
}

func TestCandidates_Composite(t *testing.T) {
	cands, err := quantity.Candidates(u("min m"))
	require.NoError(t, err)

	syms := symbols(cands)
	assert.Equal(t, "min m", syms[0])
	assert.Contains(t, syms, "min km")
	assert.NotContains(t, syms, "kmin m")

	for _, c := range cands {
		if c.Unit.Symbol() == "min km" {
			assert.InDelta(t, 1, c.Transform(1000), 1e-12)
		}
	}
}

func TestCandidates_Alias(t *testing.T) {
	cands, err := quantity.Candidates(u("Ohm"))
	require.NoError(t, err)

	syms := symbols(cands)
	assert.Equal(t, "Ohm", syms[0])
	assert.Contains(t, syms, "Ω")
	assert.Contains(t, syms, "kΩ")
}

func TestCandidates_BinaryPrefixes(t *testing.T) {
	cands, err := quantity.Candidates(u("B"))
	require.NoError(t, err)

	syms := symbols(cands)
	assert.Contains(t, syms, "kB")
	assert.Contains(t, syms, "KiB")
	for _, c := range cands {
		if c.Unit.Symbol() == "KiB" {
			assert.InDelta(t, 2, c.Transform(2048), 1e-12)
		}
	}

	meters, err := quantity.Candidates(u("m"))
	require.NoError(t, err)
	assert.NotContains(t, symbols(meters), "Kim")
}

func TestCandidates_Errors(t *testing.T) {
	_, err := quantity.Candidates(units.Unit{})
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
	assert.ErrorIs(t, err, units.ErrZeroUnit)
}

// TestCandidates_CopyOnRead hands out independent slices.
func TestCandidates_CopyOnRead(t *testing.T) {
	a, err := quantity.Candidates(u("s"))
	require.NoError(t, err)
	a[0] = quantity.Candidate{}

	b, err := quantity.Candidates(u("s"))
	require.NoError(t, err)
	assert.Equal(t, "s", b[0].Unit.Symbol())
}

func countOf(list []string, s string) int {
	n := 0
	for _, v := range list {
		if v == s {
			n++
		}
	}

	return n
}
