// SPDX-License-Identifier: MIT
// Package units: sentinel error set.
// Every message is prefixed with "units: ..." and callers match via errors.Is.
// Context is added at the call site with fmt.Errorf("ctx: %w", ErrX).

package units

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSymbol is returned when a unit string cannot be split into
	// "symbol" or "symbol^exponent" factors (empty input, bad exponent, zero exponent).
	ErrMalformedSymbol = errors.New("units: malformed unit symbol")

	// ErrUnknownSymbol indicates a factor that matches no definition, neither
	// directly nor as prefix+symbol.
	ErrUnknownSymbol = errors.New("units: unknown unit symbol")

	// ErrIncompatible is returned when two units do not share the same physical
	// dimensions and therefore cannot be converted into each other.
	ErrIncompatible = errors.New("units: incompatible dimensions")

	// ErrNonLinear is returned by Factor when either side needs an offset
	// (e.g. °C), so that no pure multiplicative factor exists.
	ErrNonLinear = errors.New("units: conversion is not linear")

	// ErrDuplicateSymbol indicates two definitions claiming the same symbol
	// within one Registry.
	ErrDuplicateSymbol = errors.New("units: duplicate symbol")

	// ErrInvalidDefinition indicates a Definition violating its invariants
	// (no name, no symbols, non-positive factor, prefixable symbol not listed, ...).
	ErrInvalidDefinition = errors.New("units: invalid definition")

	// ErrZeroUnit is returned when an operation receives the zero Unit.
	ErrZeroUnit = errors.New("units: zero unit")
)

// symbolErrorf tags err with the offending symbol.
func symbolErrorf(symbol string, err error) error {
	return fmt.Errorf("%q: %w", symbol, err)
}
