// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"math"
	"slices"

	gounit "gonum.org/v1/gonum/unit"
)

// Definition describes one named unit of the algebra.
//
// A value expressed in the unit maps to the SI base representation via
// base = value·Factor + Offset. Offset is non-zero only for affine units
// such as degree Celsius.
//
// Symbols lists every spelling; the first one is canonical. Prefixable is the
// subset of Symbols that accepts a prefix from Prefixes. Mass is the usual
// trap here: the SI base is the kilogram, but the prefixable symbol is "g",
// so the definition is "gram" with Factor 1e-3 and "kg" parses as kilo+g.
//
// A Definition is read-only once handed to NewRegistry. Registries, units and
// memoized prefix candidates share the pointer and identify units by it.
// Every built-in and YAML-loaded definition owns its own Prefixes slice.
type Definition struct {
	Name       string
	Symbols    []string
	Prefixable []string
	Prefixes   []Prefix
	Factor     float64
	Offset     float64
	Dimensions gounit.Dimensions
}

// Symbol returns the canonical symbol.
func (d *Definition) Symbol() string {
	return d.Symbols[0]
}

// PrefixAllowed reports whether the specific symbol accepts a prefix.
// The check is per symbol, not per definition.
func (d *Definition) PrefixAllowed(symbol string) bool {
	return slices.Contains(d.Prefixable, symbol)
}

// MayChangePrefix reports whether any symbol of d accepts a prefix.
func (d *Definition) MayChangePrefix() bool {
	for _, s := range d.Symbols {
		if d.PrefixAllowed(s) {
			return true
		}
	}

	return false
}

// PrefixableSymbol returns the first symbol that accepts a prefix.
func (d *Definition) PrefixableSymbol() (string, bool) {
	for _, s := range d.Symbols {
		if d.PrefixAllowed(s) {
			return s, true
		}
	}

	return "", false
}

// IsLinear reports whether conversion to base needs no offset.
func (d *Definition) IsLinear() bool {
	return d.Offset == 0
}

// allowsPrefix reports whether p belongs to the legal prefix set.
func (d *Definition) allowsPrefix(p Prefix) bool {
	if p.IsIdentity() {
		return true
	}
	for _, q := range d.Prefixes {
		if q.Symbol == p.Symbol {
			return true
		}
	}

	return false
}

// LegalPrefixes returns the legal prefix set of d. The identity prefix is
// not part of the result; callers that enumerate rewrites add it themselves.
func LegalPrefixes(d *Definition) []Prefix {
	if d == nil || !d.MayChangePrefix() {
		return nil
	}

	return slices.Clone(d.Prefixes)
}

// validate checks the invariants of a definition.
func (d *Definition) validate() error {
	switch {
	case d == nil:
		return fmt.Errorf("nil definition: %w", ErrInvalidDefinition)
	case d.Name == "":
		return fmt.Errorf("empty name: %w", ErrInvalidDefinition)
	case len(d.Symbols) == 0:
		return fmt.Errorf("%s: no symbols: %w", d.Name, ErrInvalidDefinition)
	case math.IsNaN(d.Factor) || math.IsInf(d.Factor, 0) || d.Factor <= 0:
		return fmt.Errorf("%s: factor %g: %w", d.Name, d.Factor, ErrInvalidDefinition)
	case math.IsNaN(d.Offset) || math.IsInf(d.Offset, 0):
		return fmt.Errorf("%s: offset %g: %w", d.Name, d.Offset, ErrInvalidDefinition)
	}
	for _, s := range d.Symbols {
		if s == "" {
			return fmt.Errorf("%s: empty symbol: %w", d.Name, ErrInvalidDefinition)
		}
	}
	for _, s := range d.Prefixable {
		if !slices.Contains(d.Symbols, s) {
			return fmt.Errorf("%s: prefixable symbol %q not among symbols: %w", d.Name, s, ErrInvalidDefinition)
		}
	}
	if len(d.Prefixable) > 0 && len(d.Prefixes) == 0 {
		return fmt.Errorf("%s: prefixable without prefixes: %w", d.Name, ErrInvalidDefinition)
	}

	return nil
}
